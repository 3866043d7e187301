package tool

import (
	"image/color"

	"LocalPaint/internal/state"
)

const shapeThickness = 2

// ShapeTool previews one shape per stroke, from the press point to the
// current pointer. The canvas commits the preview on release.
type ShapeTool struct {
	kind  state.ShapeKind
	color color.NRGBA
	start state.Point
}

func NewShape(kind state.ShapeKind, c color.NRGBA) *ShapeTool {
	return &ShapeTool{kind: kind, color: c}
}

func (t *ShapeTool) Press(p state.Point) []state.Command {
	t.start = p
	return nil
}

func (t *ShapeTool) Drag(p state.Point) []state.Command {
	s, ok := t.shapeTo(p)
	if !ok {
		return nil
	}
	return []state.Command{state.SetPending(s)}
}

func (t *ShapeTool) shapeTo(p state.Point) (state.Shape, bool) {
	w := p.X - t.start.X
	h := p.Y - t.start.Y
	switch t.kind {
	case state.KindRectangle:
		return state.NewRectangle(t.start.X, t.start.Y, w, h, t.color, shapeThickness), true
	case state.KindCircle:
		return state.NewCircle(t.start.X, t.start.Y, minAbs(w, h), t.color, shapeThickness), true
	case state.KindTriangle:
		return state.NewTriangle(t.start.X, t.start.Y, p.X, p.Y, t.color, shapeThickness), true
	case state.KindSquare:
		return state.NewSquare(t.start.X, t.start.Y, minAbs(w, h), t.color, shapeThickness), true
	}
	return state.Shape{}, false
}

func (t *ShapeTool) SetColor(c color.NRGBA) { t.color = c }

func (t *ShapeTool) Staging() bool { return true }

func minAbs(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a < b {
		return a
	}
	return b
}
