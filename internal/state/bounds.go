package state

// Rect is an axis-aligned area on the canvas. Min is inclusive, Max exclusive.
type Rect struct {
	Min, Max Point
}

// Canon returns r with Min and Max swapped where needed so that the width and
// height are never negative.
func (r Rect) Canon() Rect {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

func (r Rect) Dx() int { return r.Max.X - r.Min.X }
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y }

func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Union returns the smallest rectangle covering both. An empty rectangle is
// the identity.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	if s.Min.X < r.Min.X {
		r.Min.X = s.Min.X
	}
	if s.Min.Y < r.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if s.Max.X > r.Max.X {
		r.Max.X = s.Max.X
	}
	if s.Max.Y > r.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// FilledBy reports whether a stroke of the given thickness drawn along r
// covers its whole interior. Surfaces fill such rectangles.
func (r Rect) FilledBy(thickness int) bool {
	r = r.Canon()
	return 2*thickness >= min(r.Dx(), r.Dy())
}

// Inset grows the rectangle by n on every side.
func (r Rect) Inset(n int) Rect {
	r.Min.X -= n
	r.Min.Y -= n
	r.Max.X += n
	r.Max.Y += n
	return r
}

// Bounds is the area touched when the shape is drawn, stroke included.
func (s Shape) Bounds() Rect {
	r := Rect{Min: Point{s.X1, s.Y1}, Max: Point{s.X2, s.Y2}}.Canon()
	pad := s.Thickness / 2
	if pad < 1 {
		pad = 1
	}
	return r.Inset(pad)
}
