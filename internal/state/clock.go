package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

var siteID = uuid.NewString()

// SiteID identifies this process in the ops it emits.
func SiteID() string { return siteID }

// Clock is a Lamport clock. The zero value is ready to use.
type Clock struct {
	counter uint64
}

func (c *Clock) Tick() uint64 {
	return atomic.AddUint64(&c.counter, 1)
}

func (c *Clock) Now() uint64 {
	return atomic.LoadUint64(&c.counter)
}

// Update moves the clock forward to ts if ts is ahead of it.
func (c *Clock) Update(ts uint64) {
	for {
		cur := atomic.LoadUint64(&c.counter)
		if ts <= cur || atomic.CompareAndSwapUint64(&c.counter, cur, ts) {
			return
		}
	}
}
