package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventKind is the kind of a mouse event
type EventKind int

const (
	MouseMove EventKind = iota
	MouseDown
	MouseUp
)

func (k EventKind) String() string {
	switch k {
	case MouseMove:
		return "Move"
	case MouseDown:
		return "Down"
	case MouseUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// Event is a left mouse button event in logical screen coordinates
type Event struct {
	Kind EventKind `json:"kind"`
	X    int       `json:"x"`
	Y    int       `json:"y"`
}

// InputSystem turns the per-tick mouse state into events
type InputSystem struct {
	cursor image.Point
	polled bool
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll reads the mouse and returns what happened since the last poll.
// ebiten already reports the cursor in Layout coordinates.
func (s *InputSystem) Poll() []Event {
	x, y := ebiten.CursorPosition()
	cur := image.Pt(x, y)
	moved := !s.polled || cur != s.cursor
	s.cursor, s.polled = cur, true

	return Events(cur, moved,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))
}

// Closing reports whether the user asked to close the window. It needs
// ebiten.SetWindowClosingHandled(true).
func (s *InputSystem) Closing() bool {
	return ebiten.IsWindowBeingClosed()
}

// Events orders one tick of mouse input: the move first, so that presses
// and releases happen at the new position, then the button edges. A press
// and release in the same tick yield Down before Up.
func Events(at image.Point, moved, pressed, released bool) []Event {
	var events []Event
	if moved {
		events = append(events, Event{Kind: MouseMove, X: at.X, Y: at.Y})
	}
	if pressed {
		events = append(events, Event{Kind: MouseDown, X: at.X, Y: at.Y})
	}
	if released {
		events = append(events, Event{Kind: MouseUp, X: at.X, Y: at.Y})
	}
	return events
}
