package field

import (
	"slices"

	"github.com/dshills/termfield/internal/engine/textbuf"
	"github.com/dshills/termfield/internal/input"
	"github.com/dshills/termfield/internal/input/key"
)

// ApplyEvent applies a terminal event and reports whether it was used.
// Key presses go through ApplyKeyEvent and left-button presses through
// ApplyClickEvent. Other events are ignored.
func (f *Field) ApplyEvent(ev input.Event) bool {
	switch ev.Type {
	case input.EventKey:
		return f.ApplyKeyEvent(ev.Key)
	case input.EventMouse:
		if ev.Mouse.IsLeftPress() {
			return f.ApplyClickEvent(ev.Mouse.Position.X, ev.Mouse.Position.Y)
		}
	}
	return false
}

// ApplyKeyEvent applies a key press to a focused field.
//
// A registered newline key inserts a line break, whatever its modifiers.
// Otherwise only keys with no modifier or with Shift alone are handled, so
// shortcuts like Ctrl+S stay with the application.
func (f *Field) ApplyKeyEvent(ev key.Event) bool {
	if !f.focused {
		return false
	}
	if slices.ContainsFunc(f.newLineKeys, ev.Equals) {
		return f.InsertNewLine()
	}
	if !ev.Modifiers.IsPlain() {
		return false
	}
	return f.ApplyKeycodeEvent(ev.Code())
}

// ApplyKeycodeEvent applies a key, ignoring modifiers, to a focused field.
// It is useful to applications that filter modifiers themselves.
func (f *Field) ApplyKeycodeEvent(code key.Code) bool {
	if !f.focused {
		return false
	}
	switch code.Key {
	case key.KeyHome:
		return f.MoveToLineStart()
	case key.KeyEnd:
		return f.MoveToLineEnd()
	case key.KeyRune:
		if code.IsRune() {
			return f.PutChar(code.Rune)
		}
	case key.KeyUp:
		return f.MoveUp()
	case key.KeyDown:
		return f.MoveDown()
	case key.KeyLeft:
		return f.MoveLeft()
	case key.KeyRight:
		return f.MoveRight()
	case key.KeyPageUp:
		return f.PageUp()
	case key.KeyPageDown:
		return f.PageDown()
	case key.KeyBackspace:
		return f.DelCharLeft()
	case key.KeyDelete:
		return f.DelCharBelow()
	}
	return false
}

// ApplyClickEvent applies a click at screen cell (x, y). A click outside
// the area is not used. A click inside focuses an unfocused field without
// moving the cursor, and moves the cursor of a focused one to the clicked
// character. Wide characters take two cells.
func (f *Field) ApplyClickEvent(x, y int) bool {
	if !f.area.Contains(x, y) {
		return false
	}
	if !f.focused {
		f.SetFocus(true)
		return true
	}
	row := y - f.area.Top + f.scroll.Y
	f.SetCursorPos(textbuf.Pos{
		X: f.runeAt(f.buf.Line(row), x-f.area.Left),
		Y: row,
	})
	return true
}
