package net

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_localpaint._tcp"

// Advertise publishes the share server on the local network. Shut the
// returned server down when sharing stops.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(host, serviceType, "", "", port, nil, []string{"LocalPaint"})
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	log.Printf("[SHARE] Advertising %s on port %d", serviceType, port)
	return server, nil
}

var ErrNoBoard = errors.New("no shared board found")

// Discover browses for a shared board and returns the first address found.
func Discover(ctx context.Context, timeout time.Duration) (string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	var addr string
	go func() {
		defer close(done)
		for e := range entries {
			if addr != "" || e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			addr = fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port)
		}
	}()

	params := mdns.DefaultParams(serviceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.QueryContext(ctx, params)
	close(entries)
	<-done
	if err != nil {
		return "", fmt.Errorf("mDNS lookup failed: %w", err)
	}
	if addr == "" {
		return "", ErrNoBoard
	}
	log.Printf("[VIEWER] Found shared board at %s", addr)
	return addr, nil
}
