package state

import "image/color"

type CommandKind int

const (
	CmdAddShape CommandKind = iota
	CmdSetPending
)

// Command is what a tool asks the canvas to do with the shape it computed.
// A CmdSetPending with a nil Shape clears the preview.
type Command struct {
	Kind  CommandKind
	Shape *Shape
}

func AddShape(s Shape) Command { return Command{Kind: CmdAddShape, Shape: &s} }

func SetPending(s Shape) Command { return Command{Kind: CmdSetPending, Shape: &s} }

// Tool turns pointer input into commands. Tools never hold a reference to the
// canvas; the canvas applies what they return.
type Tool interface {
	Press(p Point) []Command
	Drag(p Point) []Command
}

// Colorable tools take a new stroke color without being replaced.
type Colorable interface {
	SetColor(c color.NRGBA)
}

// Stager is implemented by tools that preview a shape and rely on the release
// event to commit it.
type Stager interface {
	Staging() bool
}
