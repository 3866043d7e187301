package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/state"
	"LocalPaint/internal/tool"
)

func press(b *BoardWidget, x, y float32) {
	b.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	})
}

func drag(b *BoardWidget, x, y float32) {
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}})
}

func release(b *BoardWidget, x, y float32) {
	b.MouseUp(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	})
}

func TestBoardPencilStroke(t *testing.T) {
	test.NewTempApp(t)
	b := NewBoardWidget(state.NewCanvas())
	b.SelectTool(tool.Pencil)

	press(b, 1, 1)
	drag(b, 5, 5)
	drag(b, 9, 2)
	release(b, 9, 2)

	assert.Equal(t, 2, b.Canvas().ActiveLayer().Len())
	assert.Equal(t, tool.Pencil, b.ToolKind())

	objects := test.WidgetRenderer(b).Objects()
	require.Len(t, objects, 3)
	_, ok := objects[1].(*canvas.Line)
	assert.True(t, ok)
}

func TestBoardShapeCommitsOnceOnRelease(t *testing.T) {
	test.NewTempApp(t)
	b := NewBoardWidget(state.NewCanvas())
	b.SelectTool(tool.Circle)

	press(b, 10, 10)
	drag(b, 50, 30)
	_, pending := b.Canvas().ActiveLayer().Pending()
	assert.True(t, pending)

	release(b, 50, 30)
	b.DragEnd()

	assert.Equal(t, 1, b.Canvas().ActiveLayer().Len())
	objects := test.WidgetRenderer(b).Objects()
	require.Len(t, objects, 2)
	circle, ok := objects[1].(*canvas.Circle)
	require.True(t, ok)
	assert.Equal(t, fyne.NewPos(10, 10), circle.Position1)
	assert.Equal(t, fyne.NewPos(30, 30), circle.Position2)
}

func TestBoardIgnoresSecondaryButtonAndReadOnly(t *testing.T) {
	test.NewTempApp(t)
	b := NewBoardWidget(state.NewCanvas())
	b.SelectTool(tool.Brush)

	b.MouseDown(&desktop.MouseEvent{Button: desktop.MouseButtonSecondary})
	drag(b, 5, 5)
	assert.Zero(t, b.Canvas().ActiveLayer().Len())

	b.ReadOnly = true
	press(b, 1, 1)
	drag(b, 5, 5)
	assert.Zero(t, b.Canvas().ActiveLayer().Len())
}

func TestBoardLayersAndClear(t *testing.T) {
	test.NewTempApp(t)
	b := NewBoardWidget(state.NewCanvas())

	b.NewLayer()
	assert.Equal(t, []string{"Layer 1", "Layer 2"}, b.Canvas().LayerNames())
	b.RemoveLayer("Layer 1")
	assert.Equal(t, []string{"Layer 2"}, b.Canvas().LayerNames())
	b.Clear()
	assert.Equal(t, []string{"Layer 1"}, b.Canvas().LayerNames())
}

func TestColorSwatchCyclesPalette(t *testing.T) {
	test.NewTempApp(t)
	red := color.NRGBA{R: 0xff, A: 0xff}
	green := color.NRGBA{G: 0xff, A: 0xff}

	var got []color.NRGBA
	s := newColorSwatch(blue, []color.NRGBA{red, green}, func(c color.NRGBA) { got = append(got, c) })

	s.Tapped(nil)
	s.DoubleTapped(nil)
	s.DoubleTapped(nil)
	s.DoubleTapped(nil)

	assert.Equal(t, []color.NRGBA{blue, green, red, green}, got)
}

func TestSurfaceFillsEraserSquare(t *testing.T) {
	s := &fyneSurface{}
	state.NewRectangle(0, 0, 20, 20, tool.White, 20).Draw(s)
	state.NewRectangle(0, 0, 100, 50, tool.White, 2).Draw(s)
	state.NewTriangle(0, 0, 40, 20, tool.White, 2).Draw(s)

	require.Len(t, s.objects, 5)
	assert.Equal(t, color.Color(tool.White), s.objects[0].(*canvas.Rectangle).FillColor)
	assert.Equal(t, color.Color(color.Transparent), s.objects[1].(*canvas.Rectangle).FillColor)
}
