package state

import (
	"fmt"
	"image/color"
)

// Point is a position in canvas-local pixel coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func Pt(x, y int) Point { return Point{X: x, Y: y} }

type ShapeKind string

const (
	KindLine      ShapeKind = "line"
	KindRectangle ShapeKind = "rectangle"
	KindSquare    ShapeKind = "square"
	KindCircle    ShapeKind = "circle"
	KindTriangle  ShapeKind = "triangle"
)

// Shape is a drawable primitive. (X1,Y1)-(X2,Y2) are endpoints for lines and
// triangles and opposite corners of the bounding box for everything else.
type Shape struct {
	Kind      ShapeKind   `json:"kind"`
	X1        int         `json:"x1"`
	Y1        int         `json:"y1"`
	X2        int         `json:"x2"`
	Y2        int         `json:"y2"`
	Color     color.NRGBA `json:"color"`
	Thickness int         `json:"thickness"`
}

// Surface receives the drawing commands issued by Shape.Draw. Widths and
// heights may be negative; implementations normalise them.
type Surface interface {
	Line(x1, y1, x2, y2 int, c color.NRGBA, thickness int)
	Rect(x, y, w, h int, c color.NRGBA, thickness int)
	Ellipse(x, y, w, h int, c color.NRGBA, thickness int)
	Polygon(pts []Point, c color.NRGBA, thickness int)
}

func NewLine(x1, y1, x2, y2 int, c color.NRGBA, thickness int) Shape {
	return Shape{Kind: KindLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c, Thickness: thickness}
}

func NewRectangle(x, y, w, h int, c color.NRGBA, thickness int) Shape {
	return Shape{Kind: KindRectangle, X1: x, Y1: y, X2: x + w, Y2: y + h, Color: c, Thickness: thickness}
}

func NewSquare(x, y, side int, c color.NRGBA, thickness int) Shape {
	return Shape{Kind: KindSquare, X1: x, Y1: y, X2: x + side, Y2: y + side, Color: c, Thickness: thickness}
}

// NewCircle builds the bounding box of a circle from its top-left corner.
func NewCircle(x, y, diameter int, c color.NRGBA, thickness int) Shape {
	return Shape{Kind: KindCircle, X1: x, Y1: y, X2: x + diameter, Y2: y + diameter, Color: c, Thickness: thickness}
}

func NewTriangle(x1, y1, x2, y2 int, c color.NRGBA, thickness int) Shape {
	return Shape{Kind: KindTriangle, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c, Thickness: thickness}
}

// Vertices returns the triangle's corners: the base at Y2 and the apex at the
// horizontal midpoint on Y1.
func (s Shape) Vertices() []Point {
	return []Point{
		{X: s.X1, Y: s.Y2},
		{X: (s.X1 + s.X2) / 2, Y: s.Y1},
		{X: s.X2, Y: s.Y2},
	}
}

// Draw issues the shape's drawing commands. It never mutates the shape.
func (s Shape) Draw(surface Surface) {
	switch s.Kind {
	case KindLine:
		surface.Line(s.X1, s.Y1, s.X2, s.Y2, s.Color, s.Thickness)
	case KindRectangle, KindSquare:
		surface.Rect(s.X1, s.Y1, s.X2-s.X1, s.Y2-s.Y1, s.Color, s.Thickness)
	case KindCircle:
		surface.Ellipse(s.X1, s.Y1, s.X2-s.X1, s.Y2-s.Y1, s.Color, s.Thickness)
	case KindTriangle:
		surface.Polygon(s.Vertices(), s.Color, s.Thickness)
	}
}

func (s Shape) String() string {
	return fmt.Sprintf("%s(%d,%d)-(%d,%d)", s.Kind, s.X1, s.Y1, s.X2, s.Y2)
}
