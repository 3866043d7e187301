package tool

import (
	"image/color"
	"math/rand"

	"LocalPaint/internal/state"
)

// Stroke draws connected line segments from the previous point to the
// current one. Pencil, Brush, Pen and Calligraphy differ only in thickness.
type Stroke struct {
	color     color.NRGBA
	thickness int
	prev      state.Point
}

func NewStroke(c color.NRGBA, thickness int) *Stroke {
	return &Stroke{color: c, thickness: thickness}
}

func (s *Stroke) Press(p state.Point) []state.Command {
	s.prev = p
	return nil
}

func (s *Stroke) Drag(p state.Point) []state.Command {
	line := state.NewLine(s.prev.X, s.prev.Y, p.X, p.Y, s.color, s.thickness)
	s.prev = p
	return []state.Command{state.AddShape(line)}
}

func (s *Stroke) SetColor(c color.NRGBA) { s.color = c }

func (s *Stroke) Thickness() int { return s.thickness }

const (
	sprayDots   = 50
	sprayRadius = 10
)

// SprayBrush scatters single-pixel dots around the pointer on every event.
type SprayBrush struct {
	color color.NRGBA
	rnd   *rand.Rand
}

func NewSpray(c color.NRGBA, rnd *rand.Rand) *SprayBrush {
	return &SprayBrush{color: c, rnd: rnd}
}

func (s *SprayBrush) Press(p state.Point) []state.Command { return s.spray(p) }

func (s *SprayBrush) Drag(p state.Point) []state.Command { return s.spray(p) }

func (s *SprayBrush) spray(p state.Point) []state.Command {
	cmds := make([]state.Command, 0, sprayDots)
	for i := 0; i < sprayDots; i++ {
		x := p.X + s.rnd.Intn(2*sprayRadius) - sprayRadius
		y := p.Y + s.rnd.Intn(2*sprayRadius) - sprayRadius
		cmds = append(cmds, state.AddShape(state.NewLine(x, y, x, y, s.color, 1)))
	}
	return cmds
}

func (s *SprayBrush) SetColor(c color.NRGBA) { s.color = c }

const eraserSize = 20

var White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// EraserTool paints over the canvas with white squares. It does not remove
// shapes and ignores color changes.
type EraserTool struct{}

func NewEraser() *EraserTool { return &EraserTool{} }

func (e *EraserTool) Press(p state.Point) []state.Command { return e.erase(p) }

func (e *EraserTool) Drag(p state.Point) []state.Command { return e.erase(p) }

func (e *EraserTool) erase(p state.Point) []state.Command {
	return []state.Command{
		state.AddShape(state.NewRectangle(p.X, p.Y, eraserSize, eraserSize, White, eraserSize)),
	}
}
