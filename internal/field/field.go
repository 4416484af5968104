package field

import (
	"slices"

	"github.com/dshills/termfield/internal/engine/textbuf"
	"github.com/dshills/termfield/internal/input/key"
	"github.com/dshills/termfield/internal/renderer/core"
	"github.com/dshills/termfield/internal/renderer/viewport"
)

// Predefined newline keys.
var (
	Enter    = key.NewSpecialEvent(key.KeyEnter, key.ModNone)
	AltEnter = key.NewSpecialEvent(key.KeyEnter, key.ModAlt)
)

// Field is an editable text field bound to a screen area.
type Field struct {
	buf    *textbuf.Buffer
	area   core.Area
	scroll textbuf.Pos

	focused      bool
	passwordMode bool
	newLineKeys  []key.Event

	focusedStyle   core.Style
	unfocusedStyle core.Style
	cursorStyle    core.Style
	scrollbarStyle ScrollbarStyle
}

// New creates an empty, focused, single-line field. The area may be the
// zero Area and set later.
func New(area core.Area) *Field {
	f := &Field{
		buf:            textbuf.New(),
		area:           area,
		focused:        true,
		unfocusedStyle: core.DefaultStyle(),
		scrollbarStyle: DefaultScrollbarStyle(),
	}
	f.SetNormalStyle(core.DefaultStyle())
	return f
}

// fixScroll recomputes the scroll offset. It is the only writer of scroll.
func (f *Field) fixScroll() {
	f.scroll = viewport.FixScroll(f.area, f.focused, f.scroll, f.buf.Lines(), f.buf.CursorPos())
}

// resync runs op and, if it reports a change, recomputes the scroll offset.
// It returns op's result.
func (f *Field) resync(op func() bool) bool {
	if !op() {
		return false
	}
	f.fixScroll()
	return true
}

// Area returns the screen area of the field.
func (f *Field) Area() core.Area {
	return f.area
}

// SetArea moves and resizes the field.
func (f *Field) SetArea(area core.Area) {
	if f.area == area {
		return
	}
	f.area = area
	f.fixScroll()
}

// ChangeArea moves the field and changes its width, keeping its height.
func (f *Field) ChangeArea(x, y, width int) {
	f.area.Left = x
	f.area.Top = y
	f.area.Width = width
	f.fixScroll()
}

// Scroll returns the buffer position shown in the top-left cell.
func (f *Field) Scroll() textbuf.Pos {
	return f.scroll
}

// SetFocus focuses or unfocuses the field. Only a focused field handles
// events and shows its cursor. Unfocusing keeps the scroll offset.
func (f *Field) SetFocus(focused bool) {
	f.focused = focused
	if focused {
		f.fixScroll()
	}
}

// Focused reports whether the field has the focus.
func (f *Field) Focused() bool {
	return f.focused
}

// SetNormalStyle sets the style of a focused field. The cursor is drawn in
// the same style, reversed.
func (f *Field) SetNormalStyle(style core.Style) {
	f.focusedStyle = style
	f.cursorStyle = style.Reverse()
}

// SetUnfocusedStyle sets the style of an unfocused field.
func (f *Field) SetUnfocusedStyle(style core.Style) {
	f.unfocusedStyle = style
}

// SetScrollbarStyle sets the scrollbar glyphs. A focused field whose normal
// style has a background draws them on that background.
func (f *Field) SetScrollbarStyle(style ScrollbarStyle) {
	f.scrollbarStyle = style
}

// SetPasswordMode switches masking of the content on or off.
func (f *Field) SetPasswordMode(on bool) {
	f.passwordMode = on
}

// PasswordMode reports whether the content is masked.
func (f *Field) PasswordMode() bool {
	return f.passwordMode
}

// SetMonoLine removes every newline key. Line breaks can then only be
// inserted programmatically.
func (f *Field) SetMonoLine() {
	f.newLineKeys = nil
}

// NewLineOn registers a key press that inserts a line break. Several keys
// may be registered. Terminals often report Ctrl+Enter and Shift+Enter as
// plain Enter.
func (f *Field) NewLineOn(k key.Event) {
	if !slices.Contains(f.newLineKeys, k) {
		f.newLineKeys = append(f.newLineKeys, k)
	}
}

// NewLineKeys returns the registered newline keys.
func (f *Field) NewLineKeys() []key.Event {
	return slices.Clone(f.newLineKeys)
}
