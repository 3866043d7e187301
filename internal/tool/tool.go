// Package tool implements the drawing tools. Each tool keeps only the state it
// needs for the next event and hands its output to the canvas as commands.
package tool

import (
	"image/color"
	"math/rand"
	"time"

	"LocalPaint/internal/state"
)

type Kind string

const (
	Pencil      Kind = "Pencil"
	Brush       Kind = "Brush"
	Pen         Kind = "Pen"
	Spray       Kind = "Spray Brush"
	Calligraphy Kind = "Calligraphy Brush"
	Eraser      Kind = "Eraser"
	Rectangle   Kind = "Rectangle"
	Circle      Kind = "Circle"
	Triangle    Kind = "Triangle"
	Square      Kind = "Square"
)

// BrushKinds and ShapeKinds are listed in menu order.
var (
	BrushKinds = []Kind{Pencil, Brush, Pen, Spray, Calligraphy}
	ShapeKinds = []Kind{Rectangle, Circle, Triangle, Square}
)

// New builds the tool for kind in color c. Unknown kinds return nil.
func New(kind Kind, c color.NRGBA) state.Tool {
	switch kind {
	case Pencil:
		return NewStroke(c, 1)
	case Brush:
		return NewStroke(c, 5)
	case Pen:
		return NewStroke(c, 3)
	case Calligraphy:
		return NewStroke(c, 8)
	case Spray:
		return NewSpray(c, rand.New(rand.NewSource(time.Now().UnixNano())))
	case Eraser:
		return NewEraser()
	case Rectangle:
		return NewShape(state.KindRectangle, c)
	case Circle:
		return NewShape(state.KindCircle, c)
	case Triangle:
		return NewShape(state.KindTriangle, c)
	case Square:
		return NewShape(state.KindSquare, c)
	}
	return nil
}
