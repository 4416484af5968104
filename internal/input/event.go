package input

import (
	"fmt"

	"github.com/dshills/termfield/internal/input/key"
	"github.com/dshills/termfield/internal/input/mouse"
)

// EventType discriminates the variants of an Event.
type EventType uint8

const (
	// EventNone is an event carrying nothing.
	EventNone EventType = iota
	// EventKey is a key press.
	EventKey
	// EventMouse is a mouse press, release or move.
	EventMouse
	// EventResize is a change of the terminal size.
	EventResize
)

// String returns a string representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	default:
		return "none"
	}
}

// Event is a terminal input event. Only the payload matching Type is
// meaningful.
type Event struct {
	Type  EventType
	Key   key.Event
	Mouse mouse.Event

	// Width and Height are the new terminal size for EventResize.
	Width  int
	Height int
}

// NewKeyEvent wraps a key press.
func NewKeyEvent(k key.Event) Event {
	return Event{Type: EventKey, Key: k}
}

// NewMouseEvent wraps a mouse event.
func NewMouseEvent(m mouse.Event) Event {
	return Event{Type: EventMouse, Mouse: m}
}

// NewResizeEvent reports a new terminal size.
func NewResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// String returns a short description for logging.
func (e Event) String() string {
	switch e.Type {
	case EventKey:
		return "key " + e.Key.String()
	case EventMouse:
		return fmt.Sprintf("mouse %s %s at %d,%d", e.Mouse.Button, e.Mouse.Action, e.Mouse.Position.X, e.Mouse.Position.Y)
	case EventResize:
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	default:
		return "none"
	}
}
