package state

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// segmentTool commits a line from the press point on every drag and previews
// nothing. It stands in for the real freehand tools.
type segmentTool struct{ prev Point }

func (s *segmentTool) Press(p Point) []Command {
	s.prev = p
	return nil
}

func (s *segmentTool) Drag(p Point) []Command {
	l := NewLine(s.prev.X, s.prev.Y, p.X, p.Y, Black, 1)
	s.prev = p
	return []Command{AddShape(l)}
}

type previewTool struct{ start Point }

func (t *previewTool) Press(p Point) []Command {
	t.start = p
	return nil
}

func (t *previewTool) Drag(p Point) []Command {
	return []Command{SetPending(NewRectangle(t.start.X, t.start.Y, p.X-t.start.X, p.Y-t.start.Y, Black, 2))}
}

func (t *previewTool) Staging() bool { return true }

func TestNewCanvas(t *testing.T) {
	c := NewCanvas()
	require.Equal(t, []string{"Layer 1"}, c.LayerNames())
	assert.Equal(t, "Layer 1", c.ActiveLayer().Name())
	assert.Nil(t, c.Tool())
}

func TestEventsWithoutToolAreIgnored(t *testing.T) {
	c := NewCanvas()
	calls := 0
	c.OnChange = func() { calls++ }

	c.Press(Pt(1, 1))
	c.Drag(Pt(2, 2))
	c.Release(Pt(2, 2))

	assert.Zero(t, c.ActiveLayer().Len())
	assert.Zero(t, calls)
}

func TestFreehandCommitsEachDrag(t *testing.T) {
	c := NewCanvas()
	c.SetTool(&segmentTool{})

	c.Press(Pt(0, 0))
	c.Drag(Pt(5, 5))
	c.Drag(Pt(10, 3))
	c.Release(Pt(10, 3))

	shapes := c.ActiveLayer().Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, Pt(0, 0), Pt(shapes[0].X1, shapes[0].Y1))
	assert.Equal(t, Pt(shapes[0].X2, shapes[0].Y2), Pt(shapes[1].X1, shapes[1].Y1))
	_, pending := c.ActiveLayer().Pending()
	assert.False(t, pending)
}

func TestShapeToolCommitsOnRelease(t *testing.T) {
	c := NewCanvas()
	c.SetTool(&previewTool{})

	c.Press(Pt(10, 10))
	c.Drag(Pt(20, 20))
	c.Drag(Pt(30, 40))

	l := c.ActiveLayer()
	assert.Zero(t, l.Len())
	p, ok := l.Pending()
	require.True(t, ok)
	assert.Equal(t, NewRectangle(10, 10, 20, 30, Black, 2), p)

	c.Release(Pt(30, 40))
	assert.Equal(t, 1, l.Len())
	_, ok = l.Pending()
	assert.False(t, ok)

	// A second release with nothing pending changes nothing.
	c.Release(Pt(30, 40))
	assert.Equal(t, 1, l.Len())
}

func TestReleaseIgnoresPendingForFreehandTool(t *testing.T) {
	c := NewCanvas()
	pending := NewLine(0, 0, 1, 1, Black, 1)
	c.SetPendingShape(&pending)
	c.SetTool(&segmentTool{})

	c.Release(Pt(0, 0))

	assert.Zero(t, c.ActiveLayer().Len())
}

func TestRenderOrder(t *testing.T) {
	c := NewCanvas()
	c.AddShape(NewLine(0, 0, 1, 1, Black, 1))
	preview := NewSquare(0, 0, 3, Black, 2)
	c.SetPendingShape(&preview)
	c.NewLayer()
	c.AddShape(NewCircle(0, 0, 4, Black, 2))

	rec := &recorder{}
	c.Render(rec)

	assert.Equal(t, []string{
		"line 0,0 1,1 t1",
		"rect 0,0 3x3 t2",
		"ellipse 0,0 4x4 t2",
	}, rec.calls)
}

func TestClear(t *testing.T) {
	c := NewCanvas()
	c.AddShape(NewLine(0, 0, 1, 1, Black, 1))
	c.NewLayer()
	pending := NewLine(0, 0, 1, 1, Black, 1)
	c.SetPendingShape(&pending)

	c.Clear()

	require.Equal(t, []string{"Layer 1"}, c.LayerNames())
	assert.Zero(t, c.ActiveLayer().Len())
	_, ok := c.ActiveLayer().Pending()
	assert.False(t, ok)
}

func TestRemoveLayer(t *testing.T) {
	c := NewCanvas()
	c.NewLayer()
	require.Equal(t, []string{"Layer 1", "Layer 2"}, c.LayerNames())

	assert.False(t, c.RemoveLayer("Layer 3"))
	assert.Equal(t, []string{"Layer 1", "Layer 2"}, c.LayerNames())

	assert.True(t, c.RemoveLayer("Layer 1"))
	assert.Equal(t, []string{"Layer 2"}, c.LayerNames())
	assert.Equal(t, "Layer 2", c.ActiveLayer().Name())
}

func TestRemoveActiveLayerFallsBackToLast(t *testing.T) {
	c := NewCanvas()
	c.NewLayer()
	c.NewLayer()

	c.RemoveLayer("Layer 3")

	assert.Equal(t, "Layer 2", c.ActiveLayer().Name())
	c.AddShape(NewLine(0, 0, 1, 1, Black, 1))
	assert.Equal(t, 1, c.Layers()[1].Len())
}

func TestRemoveLastLayerKeepsCanvasNonEmpty(t *testing.T) {
	c := NewCanvas()
	c.RemoveLayer("Layer 1")

	require.Equal(t, []string{"Layer 1"}, c.LayerNames())
	assert.Same(t, c.Layers()[0], c.ActiveLayer())
}

func TestNewLayerNamesStayUnique(t *testing.T) {
	c := NewCanvas()
	c.NewLayer()
	c.RemoveLayer("Layer 1")

	l := c.NewLayer()

	assert.Equal(t, "Layer 3", l.Name())
	assert.Equal(t, []string{"Layer 2", "Layer 3"}, c.LayerNames())
}

type colorTool struct {
	segmentTool
	got []string
}

func (c *colorTool) SetColor(col color.NRGBA) {
	c.got = append(c.got, fmt.Sprintf("#%02x%02x%02x", col.R, col.G, col.B))
}

func TestSetColorReachesColorableTool(t *testing.T) {
	c := NewCanvas()
	ct := &colorTool{}
	c.SetTool(ct)
	c.SetColor(red)

	assert.Equal(t, []string{"#000000", "#ff0000"}, ct.got)
	assert.Equal(t, red, c.Color())
}

func TestSelectToolSetsColor(t *testing.T) {
	c := NewCanvas()
	ct := &colorTool{}
	c.SelectTool(ct, red)

	assert.Equal(t, []string{"#ff0000"}, ct.got)
	assert.Equal(t, red, c.Color())
	assert.Same(t, ct, c.Tool())
}

func TestOpsAreStamped(t *testing.T) {
	c := NewCanvas()
	var ops []Op
	c.OnOp = func(op Op) { ops = append(ops, op) }

	c.AddShape(NewLine(0, 0, 1, 1, Black, 1))
	c.Clear()

	require.Len(t, ops, 2)
	assert.Equal(t, OpAddShape, ops[0].Type)
	assert.Equal(t, OpClear, ops[1].Type)
	assert.Less(t, ops[0].Lamport, ops[1].Lamport)
	assert.Equal(t, SiteID(), ops[0].Site)
}
