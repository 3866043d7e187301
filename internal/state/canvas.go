package state

import (
	"fmt"
	"image/color"
	"log"
)

// Canvas owns the layers, the active layer and the active tool. It is not
// safe for concurrent use; all calls are expected on the UI goroutine.
type Canvas struct {
	layers []*Layer
	active *Layer
	tool   Tool
	color  color.NRGBA
	clock  Clock

	// OnChange runs after every mutation.
	OnChange func()
	// OnOp receives every mutation as a stamped Op.
	OnOp func(Op)
}

var Black = color.NRGBA{A: 0xff}

func NewCanvas() *Canvas {
	c := &Canvas{color: Black}
	c.appendLayer()
	return c
}

func layerName(n int) string {
	return fmt.Sprintf("Layer %d", n)
}

// appendLayer adds a layer with the first unused name from "Layer count+1"
// upward and makes it active.
func (c *Canvas) appendLayer() *Layer {
	n := len(c.layers) + 1
	for c.layerIndex(layerName(n)) >= 0 {
		n++
	}
	l := NewLayer(layerName(n))
	c.layers = append(c.layers, l)
	c.active = l
	return l
}

func (c *Canvas) layerIndex(name string) int {
	for i, l := range c.layers {
		if l.name == name {
			return i
		}
	}
	return -1
}

func (c *Canvas) emit(op Op) {
	op.Lamport = c.clock.Tick()
	op.Site = siteID
	if c.OnOp != nil {
		c.OnOp(op)
	}
}

func (c *Canvas) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}

func (c *Canvas) Layers() []*Layer {
	out := make([]*Layer, len(c.layers))
	copy(out, c.layers)
	return out
}

func (c *Canvas) ActiveLayer() *Layer { return c.active }

func (c *Canvas) LayerNames() []string {
	names := make([]string, 0, len(c.layers))
	for _, l := range c.layers {
		names = append(names, l.name)
	}
	return names
}

func (c *Canvas) Tool() Tool { return c.tool }

// SetTool replaces the active tool. Colorable tools pick up the current color.
func (c *Canvas) SetTool(t Tool) {
	if ct, ok := t.(Colorable); ok {
		ct.SetColor(c.color)
	}
	c.tool = t
}

// SelectTool makes col the current color and t the active tool, so the tool
// draws in col.
func (c *Canvas) SelectTool(t Tool, col color.NRGBA) {
	c.color = col
	c.SetTool(t)
}

func (c *Canvas) Color() color.NRGBA { return c.color }

// SetColor changes the current color and applies it to the active tool when
// the tool is colorable. Strokes already drawn keep their color.
func (c *Canvas) SetColor(col color.NRGBA) {
	c.color = col
	if ct, ok := c.tool.(Colorable); ok {
		ct.SetColor(col)
	}
}

func (c *Canvas) addShape(s Shape) {
	c.active.Add(s)
	c.emit(Op{Type: OpAddShape, Shape: &s})
}

func (c *Canvas) setPending(s *Shape) {
	c.active.SetPending(s)
	c.emit(Op{Type: OpSetPending, Shape: s})
}

// AddShape appends s to the active layer.
func (c *Canvas) AddShape(s Shape) {
	c.addShape(s)
	c.changed()
}

// SetPendingShape replaces the active layer's preview; nil clears it.
func (c *Canvas) SetPendingShape(s *Shape) {
	c.setPending(s)
	c.changed()
}

// CommitPending moves the active layer's preview into its committed shapes.
func (c *Canvas) CommitPending() bool {
	if !c.active.Commit() {
		return false
	}
	c.emit(Op{Type: OpCommit})
	c.changed()
	return true
}

// Apply executes the commands returned by a tool, notifying once.
func (c *Canvas) Apply(cmds ...Command) {
	if len(cmds) == 0 {
		return
	}
	for _, cmd := range cmds {
		switch cmd.Kind {
		case CmdAddShape:
			if cmd.Shape != nil {
				c.addShape(*cmd.Shape)
			}
		case CmdSetPending:
			c.setPending(cmd.Shape)
		}
	}
	c.changed()
}

func (c *Canvas) Press(p Point) {
	if c.tool == nil {
		return
	}
	c.Apply(c.tool.Press(p)...)
}

func (c *Canvas) Drag(p Point) {
	if c.tool == nil {
		return
	}
	c.Apply(c.tool.Drag(p)...)
}

// Release commits the pending shape when the active tool stages previews.
// Freehand tools have already committed every segment.
func (c *Canvas) Release(Point) {
	st, ok := c.tool.(Stager)
	if !ok || !st.Staging() {
		return
	}
	c.CommitPending()
}

// Clear drops every layer and starts over with a single empty one.
func (c *Canvas) Clear() {
	c.layers = nil
	c.appendLayer()
	c.emit(Op{Type: OpClear})
	c.changed()
}

// NewLayer appends an empty layer and makes it active.
func (c *Canvas) NewLayer() *Layer {
	l := c.appendLayer()
	c.emit(Op{Type: OpNewLayer, Layer: l.name})
	c.changed()
	return l
}

// RemoveLayer removes the layer called name. Unknown names are ignored. When
// the active layer goes, the last remaining layer takes over; when none
// remain a fresh one is created.
func (c *Canvas) RemoveLayer(name string) bool {
	i := c.layerIndex(name)
	if i < 0 {
		log.Printf("[CANVAS] No layer named %q", name)
		return false
	}
	removed := c.layers[i]
	c.layers = append(c.layers[:i:i], c.layers[i+1:]...)
	if len(c.layers) == 0 {
		c.appendLayer()
	} else if removed == c.active {
		c.active = c.layers[len(c.layers)-1]
	}
	c.emit(Op{Type: OpRemoveLayer, Layer: name})
	c.changed()
	return true
}

// Render draws every layer in order.
func (c *Canvas) Render(surface Surface) {
	for _, l := range c.layers {
		l.Draw(surface)
	}
}

// Bounds covers everything drawn on the canvas.
func (c *Canvas) Bounds() Rect {
	var r Rect
	for _, l := range c.layers {
		r = r.Union(l.Bounds())
	}
	return r
}

func (c *Canvas) Snapshot() Snapshot {
	s := Snapshot{Lamport: c.clock.Now()}
	for i, l := range c.layers {
		s.Layers = append(s.Layers, l.snapshot())
		if l == c.active {
			s.Active = i
		}
	}
	return s
}

// Restore replaces the layers with the snapshot's. The tool and color are
// left alone.
func (c *Canvas) Restore(s Snapshot) {
	c.layers = nil
	c.active = nil
	for _, ls := range s.Layers {
		l := NewLayer(ls.Name)
		l.shapes = append(l.shapes, ls.Shapes...)
		l.SetPending(ls.Pending)
		c.layers = append(c.layers, l)
	}
	if len(c.layers) == 0 {
		c.appendLayer()
	}
	c.active = c.layers[len(c.layers)-1]
	if s.Active >= 0 && s.Active < len(c.layers) {
		c.active = c.layers[s.Active]
	}
	c.clock.Update(s.Lamport)
	c.changed()
}
