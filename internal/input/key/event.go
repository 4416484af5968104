package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Code is a key without its modifiers: a special key, or KeyRune with the
// character typed.
type Code struct {
	Key  Key
	Rune rune
}

// RuneCode returns the code for a character key.
func RuneCode(r rune) Code {
	return Code{Key: KeyRune, Rune: r}
}

// SpecialCode returns the code for a special key.
func SpecialCode(k Key) Code {
	return Code{Key: k}
}

// IsRune returns true if this code is a character.
func (c Code) IsRune() bool {
	return c.Key == KeyRune && c.Rune != 0
}

// Event represents a single key press event.
// Events are comparable; two presses of the same key with the same
// modifiers are equal.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewEvent creates a key event.
func NewEvent(key Key, r rune, mods Modifier) Event {
	return Event{Key: key, Rune: r, Modifiers: mods}
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// Code returns the event without its modifiers.
func (e Event) Code() Code {
	return Code{Key: e.Key, Rune: e.Rune}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// Equals returns true if two events represent the same key press:
// same key, same rune and exactly the same modifiers.
func (e Event) Equals(other Event) bool {
	return e == other
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(parsed)
}

// String returns a canonical string representation.
// Examples: "a", "Enter", "Alt+Enter", "Ctrl+s", "Shift+Tab"
func (e Event) String() string {
	var name string
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		name = "Space"
	case e.Key == KeyRune:
		name = string(e.Rune)
	default:
		name = e.Key.String()
	}

	mods := e.Modifiers
	// Shift is part of the character itself
	if e.IsRune() {
		mods = mods.Without(ModShift)
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}

// VimString returns a Vim-style string representation.
// Examples: "<Esc>", "<C-s>", "<A-CR>", "a"
func (e Event) VimString() string {
	mods := e.Modifiers
	if e.IsRune() {
		mods = mods.Without(ModShift)
		if mods == ModNone && e.Rune != ' ' {
			return string(e.Rune)
		}
	}

	parts := mods.letters()

	var name string
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		name = "Space"
	case e.Key == KeyRune:
		name = strings.ToLower(string(e.Rune))
	case e.Key == KeyEnter:
		name = "CR"
	case e.Key == KeyEscape:
		name = "Esc"
	case e.Key == KeyBackspace:
		name = "BS"
	case e.Key == KeyDelete:
		name = "Del"
	default:
		name = e.Key.String()
	}
	parts = append(parts, name)

	return "<" + strings.Join(parts, "-") + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
