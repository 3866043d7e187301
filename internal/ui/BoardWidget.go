package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/state"
	"LocalPaint/internal/tool"
)

// BoardWidget shows a state.Canvas and forwards mouse input to its tool.
type BoardWidget struct {
	widget.BaseWidget
	canvas    *state.Canvas
	toolKind  tool.Kind
	pressed   bool
	last      state.Point
	statusBar *widget.Label

	// ReadOnly boards ignore input; viewers mirror a remote board.
	ReadOnly bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(c *state.Canvas) *BoardWidget {
	b := &BoardWidget{
		canvas:    c,
		statusBar: widget.NewLabel("Ready"),
	}
	c.OnChange = b.Refresh
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Canvas() *state.Canvas { return b.canvas }

func (b *BoardWidget) ToolKind() tool.Kind { return b.toolKind }

// SelectTool replaces the active tool. Colorable tools take the current color.
func (b *BoardWidget) SelectTool(kind tool.Kind) {
	col := b.canvas.Color()
	t := tool.New(kind, col)
	if t == nil {
		log.Printf("[BOARD] Unknown tool %q", kind)
		return
	}
	b.canvas.SelectTool(t, col)
	b.toolKind = kind
	b.statusBar.SetText(string(kind))
}

func (b *BoardWidget) SetColor(c color.NRGBA) {
	b.canvas.SetColor(c)
}

func (b *BoardWidget) Clear() {
	b.canvas.Clear()
	b.statusBar.SetText("Cleared")
}

func (b *BoardWidget) RemoveLayer(name string) {
	if b.canvas.RemoveLayer(name) {
		b.statusBar.SetText("Removed " + name)
	}
}

func (b *BoardWidget) NewLayer() {
	l := b.canvas.NewLayer()
	b.statusBar.SetText("Drawing on " + l.Name())
}

// SetStatus is safe to call from any goroutine.
func (b *BoardWidget) SetStatus(text string) {
	fyne.Do(func() {
		b.statusBar.SetText(text)
	})
}

func toPoint(p fyne.Position) state.Point {
	return state.Pt(int(p.X), int(p.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if b.ReadOnly || e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.pressed = true
	b.last = toPoint(e.Position)
	b.canvas.Press(b.last)
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.pressed {
		return
	}
	b.last = toPoint(e.Position)
	b.canvas.Drag(b.last)
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if !b.pressed {
		return
	}
	b.release(toPoint(e.Position))
}

// DragEnd and MouseUp can both arrive for one stroke; the first one releases.
func (b *BoardWidget) DragEnd() {
	if b.pressed {
		b.release(b.last)
	}
}

func (b *BoardWidget) release(p state.Point) {
	b.pressed = false
	b.canvas.Release(p)
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) rebuild() {
	surface := &fyneSurface{objects: []fyne.CanvasObject{r.background}}
	r.board.canvas.Render(surface)
	r.objects = surface.objects
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}
