package state

// Layer is a named, ordered list of committed shapes plus at most one pending
// shape previewed on top of them.
type Layer struct {
	name    string
	shapes  []Shape
	pending *Shape
}

func NewLayer(name string) *Layer {
	return &Layer{name: name}
}

func (l *Layer) Name() string { return l.name }

// Shapes returns a copy of the committed shapes in insertion order.
func (l *Layer) Shapes() []Shape {
	out := make([]Shape, len(l.shapes))
	copy(out, l.shapes)
	return out
}

func (l *Layer) Len() int { return len(l.shapes) }

// Pending returns the preview shape, if any.
func (l *Layer) Pending() (Shape, bool) {
	if l.pending == nil {
		return Shape{}, false
	}
	return *l.pending, true
}

func (l *Layer) Add(s Shape) {
	l.shapes = append(l.shapes, s)
}

// SetPending replaces the preview. A nil shape clears it.
func (l *Layer) SetPending(s *Shape) {
	if s == nil {
		l.pending = nil
		return
	}
	cp := *s
	l.pending = &cp
}

// Commit moves the pending shape into the committed list. It reports false
// and changes nothing when there is no pending shape.
func (l *Layer) Commit() bool {
	if l.pending == nil {
		return false
	}
	l.shapes = append(l.shapes, *l.pending)
	l.pending = nil
	return true
}

// Draw renders committed shapes in order, then the pending shape.
func (l *Layer) Draw(surface Surface) {
	for _, s := range l.shapes {
		s.Draw(surface)
	}
	if l.pending != nil {
		l.pending.Draw(surface)
	}
}

// Bounds covers every committed and pending shape.
func (l *Layer) Bounds() Rect {
	var r Rect
	for _, s := range l.shapes {
		r = r.Union(s.Bounds())
	}
	if l.pending != nil {
		r = r.Union(l.pending.Bounds())
	}
	return r
}

func (l *Layer) snapshot() LayerSnapshot {
	ls := LayerSnapshot{Name: l.name, Shapes: l.Shapes()}
	if p, ok := l.Pending(); ok {
		ls.Pending = &p
	}
	return ls
}
