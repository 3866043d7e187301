package state

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{R: 0xff, A: 0xff}

// recorder is a Surface that logs every call.
type recorder struct {
	calls []string
}

func (r *recorder) Line(x1, y1, x2, y2 int, _ color.NRGBA, t int) {
	r.calls = append(r.calls, fmt.Sprintf("line %d,%d %d,%d t%d", x1, y1, x2, y2, t))
}

func (r *recorder) Rect(x, y, w, h int, _ color.NRGBA, t int) {
	r.calls = append(r.calls, fmt.Sprintf("rect %d,%d %dx%d t%d", x, y, w, h, t))
}

func (r *recorder) Ellipse(x, y, w, h int, _ color.NRGBA, t int) {
	r.calls = append(r.calls, fmt.Sprintf("ellipse %d,%d %dx%d t%d", x, y, w, h, t))
}

func (r *recorder) Polygon(pts []Point, _ color.NRGBA, t int) {
	r.calls = append(r.calls, fmt.Sprintf("polygon %v t%d", pts, t))
}

func TestShapeConstructors(t *testing.T) {
	r := NewRectangle(10, 20, 30, 40, red, 2)
	assert.Equal(t, Shape{Kind: KindRectangle, X1: 10, Y1: 20, X2: 40, Y2: 60, Color: red, Thickness: 2}, r)

	sq := NewSquare(5, 5, 10, red, 2)
	assert.Equal(t, 15, sq.X2)
	assert.Equal(t, 15, sq.Y2)

	c := NewCircle(10, 10, 20, red, 2)
	assert.Equal(t, Rect{Min: Pt(10, 10), Max: Pt(30, 30)}, Rect{Min: Pt(c.X1, c.Y1), Max: Pt(c.X2, c.Y2)})
}

func TestTriangleVertices(t *testing.T) {
	tri := NewTriangle(0, 0, 40, 20, red, 2)
	assert.Equal(t, []Point{{0, 20}, {20, 0}, {40, 20}}, tri.Vertices())
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "square(10,10)-(30,30)", NewSquare(10, 10, 20, red, 2).String())
	assert.Equal(t, "line(0,0)-(5,5)", NewLine(0, 0, 5, 5, red, 1).String())
}

func TestShapeDraw(t *testing.T) {
	rec := &recorder{}
	NewLine(1, 2, 3, 4, red, 1).Draw(rec)
	NewRectangle(10, 10, -5, -5, red, 2).Draw(rec)
	NewSquare(0, 0, 7, red, 2).Draw(rec)
	NewCircle(0, 0, 8, red, 2).Draw(rec)
	NewTriangle(0, 0, 40, 20, red, 2).Draw(rec)

	require.Equal(t, []string{
		"line 1,2 3,4 t1",
		"rect 10,10 -5x-5 t2",
		"rect 0,0 7x7 t2",
		"ellipse 0,0 8x8 t2",
		"polygon [{0 20} {20 0} {40 20}] t2",
	}, rec.calls)
}

func TestRectFilledBy(t *testing.T) {
	eraser := Rect{Min: Pt(0, 0), Max: Pt(20, 20)}
	assert.True(t, eraser.FilledBy(20))
	assert.True(t, eraser.FilledBy(10))
	assert.False(t, eraser.FilledBy(9))
	assert.True(t, Rect{Min: Pt(50, 10), Max: Pt(0, 14)}.FilledBy(2))
}

func TestShapeBounds(t *testing.T) {
	b := NewRectangle(10, 10, -10, -10, red, 4).Bounds()
	assert.Equal(t, Rect{Min: Pt(-2, -2), Max: Pt(12, 12)}, b)

	dot := NewLine(5, 5, 5, 5, red, 1).Bounds()
	assert.False(t, dot.Empty())
}

func TestRectUnion(t *testing.T) {
	var empty Rect
	a := Rect{Min: Pt(0, 0), Max: Pt(10, 10)}
	b := Rect{Min: Pt(5, -5), Max: Pt(20, 8)}

	assert.Equal(t, a, empty.Union(a))
	assert.Equal(t, a, a.Union(empty))
	assert.Equal(t, Rect{Min: Pt(0, -5), Max: Pt(20, 10)}, a.Union(b))
}
