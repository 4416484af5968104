package field

import "github.com/dshills/termfield/internal/engine/textbuf"

// Content returns the text of the field, lines joined by '\n'.
func (f *Field) Content() string {
	return f.buf.String()
}

// String implements fmt.Stringer.
func (f *Field) String() string {
	return f.buf.String()
}

// Lines returns the lines of the field. The result must not be modified.
func (f *Field) Lines() [][]rune {
	return f.buf.Lines()
}

// LineCount returns the number of lines, at least one.
func (f *Field) LineCount() int {
	return f.buf.LineCount()
}

// IsEmpty reports whether the field holds no text.
func (f *Field) IsEmpty() bool {
	return f.buf.IsEmpty()
}

// IsContent reports whether the field holds exactly s.
func (f *Field) IsContent(s string) bool {
	return f.buf.Equals(s)
}

// CursorPos returns the cursor position in the buffer.
func (f *Field) CursorPos() textbuf.Pos {
	return f.buf.CursorPos()
}

// SetCursorPos moves the cursor, clamped to the content.
func (f *Field) SetCursorPos(p textbuf.Pos) bool {
	return f.resync(func() bool { return f.buf.SetCursorPos(p) })
}

// SetStr replaces the content and puts the cursor at its end. Nothing
// changes when the content is already s.
func (f *Field) SetStr(s string) bool {
	return f.resync(func() bool { return f.buf.SetStr(s) })
}

// InsertStr inserts s at the cursor as if it was typed.
func (f *Field) InsertStr(s string) {
	f.buf.InsertStr(s)
	f.fixScroll()
}

// InsertNewLine breaks the line at the cursor.
func (f *Field) InsertNewLine() bool {
	f.buf.InsertNewLine()
	f.fixScroll()
	return true
}

// PutChar inserts r at the cursor and moves past it.
func (f *Field) PutChar(r rune) bool {
	f.buf.InsertChar(r)
	f.fixScroll()
	return true
}

// Clear removes all content.
func (f *Field) Clear() {
	f.buf.Clear()
	f.fixScroll()
}

// DelCharLeft removes the character before the cursor, joining lines at a
// line start.
func (f *Field) DelCharLeft() bool { return f.resync(f.buf.DelCharLeft) }

// DelCharBelow removes the character under the cursor, joining lines at a
// line end.
func (f *Field) DelCharBelow() bool { return f.resync(f.buf.DelCharBelow) }

// DelWordLeft removes the word before the cursor.
func (f *Field) DelWordLeft() bool { return f.resync(f.buf.DelWordLeft) }

// DelWordRight removes the word after the cursor.
func (f *Field) DelWordRight() bool { return f.resync(f.buf.DelWordRight) }

func (f *Field) MoveUp() bool          { return f.resync(f.buf.MoveUp) }
func (f *Field) MoveDown() bool        { return f.resync(f.buf.MoveDown) }
func (f *Field) MoveLeft() bool        { return f.resync(f.buf.MoveLeft) }
func (f *Field) MoveRight() bool       { return f.resync(f.buf.MoveRight) }
func (f *Field) MoveWordLeft() bool    { return f.resync(f.buf.MoveWordLeft) }
func (f *Field) MoveWordRight() bool   { return f.resync(f.buf.MoveWordRight) }
func (f *Field) MoveToLineStart() bool { return f.resync(f.buf.MoveToLineStart) }
func (f *Field) MoveToLineEnd() bool   { return f.resync(f.buf.MoveToLineEnd) }
func (f *Field) MoveToStart() bool     { return f.resync(f.buf.MoveToStart) }
func (f *Field) MoveToEnd() bool       { return f.resync(f.buf.MoveToEnd) }

// PageUp moves the cursor up by the height of the field.
func (f *Field) PageUp() bool {
	return f.resync(func() bool { return f.buf.MoveLinesUp(f.area.Height) })
}

// PageDown moves the cursor down by the height of the field.
func (f *Field) PageDown() bool {
	return f.resync(func() bool { return f.buf.MoveLinesDown(f.area.Height) })
}
