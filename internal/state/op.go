package state

import "log"

type OpType string

const (
	OpAddShape    OpType = "add_shape"
	OpSetPending  OpType = "set_pending"
	OpCommit      OpType = "commit"
	OpClear       OpType = "clear"
	OpRemoveLayer OpType = "remove_layer"
	OpNewLayer    OpType = "new_layer"
)

// Op records one canvas mutation so it can be replayed elsewhere.
type Op struct {
	Type    OpType `json:"type"`
	Shape   *Shape `json:"shape,omitempty"`
	Layer   string `json:"layer,omitempty"`
	Lamport uint64 `json:"lamport"`
	Site    string `json:"site"`
}

type LayerSnapshot struct {
	Name    string  `json:"name"`
	Shapes  []Shape `json:"shapes"`
	Pending *Shape  `json:"pending,omitempty"`
}

// Snapshot is the full canvas state as of Lamport.
type Snapshot struct {
	Layers  []LayerSnapshot `json:"layers"`
	Active  int             `json:"active"`
	Lamport uint64          `json:"lamport"`
}

// Replica mirrors a remote canvas: it restores a snapshot and then applies
// the op stream, skipping anything the snapshot already contains.
type Replica struct {
	canvas *Canvas
	last   uint64
}

func NewReplica(c *Canvas) *Replica {
	return &Replica{canvas: c}
}

func (r *Replica) Restore(s Snapshot) {
	r.canvas.Restore(s)
	r.last = s.Lamport
}

// Apply replays op and reports whether it was applied.
func (r *Replica) Apply(op Op) bool {
	if op.Lamport <= r.last {
		if op.Shape != nil {
			log.Printf("[REPLICA] Skipping stale op %s %s@%d (have %d)", op.Type, op.Shape, op.Lamport, r.last)
		} else {
			log.Printf("[REPLICA] Skipping stale op %s@%d (have %d)", op.Type, op.Lamport, r.last)
		}
		return false
	}
	r.last = op.Lamport

	c := r.canvas
	switch op.Type {
	case OpAddShape:
		if op.Shape != nil {
			c.AddShape(*op.Shape)
		}
	case OpSetPending:
		c.SetPendingShape(op.Shape)
	case OpCommit:
		c.CommitPending()
	case OpClear:
		c.Clear()
	case OpRemoveLayer:
		c.RemoveLayer(op.Layer)
	case OpNewLayer:
		c.NewLayer()
	default:
		log.Printf("[REPLICA] Unknown op type %q", op.Type)
		return false
	}
	return true
}
