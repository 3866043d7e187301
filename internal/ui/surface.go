package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"LocalPaint/internal/state"
)

// fyneSurface turns drawing commands into Fyne canvas objects, in order.
type fyneSurface struct {
	objects []fyne.CanvasObject
}

func pos(x, y int) fyne.Position { return fyne.NewPos(float32(x), float32(y)) }

func (s *fyneSurface) Line(x1, y1, x2, y2 int, c color.NRGBA, thickness int) {
	if x1 == x2 && y1 == y2 {
		// A zero-length line renders nothing in Fyne; draw the dot.
		dot := canvas.NewRectangle(c)
		dot.Move(fyne.NewPos(float32(x1)-float32(thickness)/2, float32(y1)-float32(thickness)/2))
		dot.Resize(fyne.NewSquareSize(float32(thickness)))
		s.objects = append(s.objects, dot)
		return
	}
	line := canvas.NewLine(c)
	line.StrokeWidth = float32(thickness)
	line.Position1 = pos(x1, y1)
	line.Position2 = pos(x2, y2)
	s.objects = append(s.objects, line)
}

func (s *fyneSurface) Rect(x, y, w, h int, c color.NRGBA, thickness int) {
	r := state.Rect{Min: state.Pt(x, y), Max: state.Pt(x+w, y+h)}.Canon()
	rect := canvas.NewRectangle(color.Transparent)
	rect.StrokeColor = c
	rect.StrokeWidth = float32(thickness)
	if r.FilledBy(thickness) {
		rect.FillColor = c
	}
	rect.Move(pos(r.Min.X, r.Min.Y))
	rect.Resize(fyne.NewSize(float32(r.Dx()), float32(r.Dy())))
	s.objects = append(s.objects, rect)
}

func (s *fyneSurface) Ellipse(x, y, w, h int, c color.NRGBA, thickness int) {
	r := state.Rect{Min: state.Pt(x, y), Max: state.Pt(x+w, y+h)}.Canon()
	circle := canvas.NewCircle(color.Transparent)
	circle.StrokeColor = c
	circle.StrokeWidth = float32(thickness)
	circle.Position1 = pos(r.Min.X, r.Min.Y)
	circle.Position2 = pos(r.Max.X, r.Max.Y)
	s.objects = append(s.objects, circle)
}

func (s *fyneSurface) Polygon(pts []state.Point, c color.NRGBA, thickness int) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		s.Line(a.X, a.Y, b.X, b.Y, c, thickness)
	}
}
