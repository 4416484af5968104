package textbuf

import (
	"strings"
)

// Buffer holds text as lines of runes and tracks a cursor.
type Buffer struct {
	lines  [][]rune
	cursor Pos
}

// New creates an empty buffer with the cursor at (0,0).
func New() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// NewFromString creates a buffer holding s with the cursor at its end.
func NewFromString(s string) *Buffer {
	b := New()
	b.InsertStr(s)
	return b
}

// Lines returns the buffer lines. The returned slices must not be modified.
func (b *Buffer) Lines() [][]rune {
	return b.lines
}

// LineCount returns the number of lines, always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns line y, or nil if y is out of range.
func (b *Buffer) Line(y int) []rune {
	if y < 0 || y >= len(b.lines) {
		return nil
	}
	return b.lines[y]
}

// CurrentLine returns the line holding the cursor.
func (b *Buffer) CurrentLine() []rune {
	return b.lines[b.cursor.Y]
}

// CursorPos returns the cursor position.
func (b *Buffer) CursorPos() Pos {
	return b.cursor
}

// SetCursorPos moves the cursor to p, clamped to the content:
// Y to the last line, X to the length of the target line.
// Returns true if the cursor moved.
func (b *Buffer) SetCursorPos(p Pos) bool {
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y >= len(b.lines) {
		p.Y = len(b.lines) - 1
	}
	if p.X < 0 {
		p.X = 0
	}
	if n := len(b.lines[p.Y]); p.X > n {
		p.X = n
	}
	if p == b.cursor {
		return false
	}
	b.cursor = p
	return true
}

// String returns the content with lines joined by '\n'.
func (b *Buffer) String() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// IsEmpty returns true if the buffer holds a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Equals returns true if the content is exactly s.
func (b *Buffer) Equals(s string) bool {
	parts := strings.Split(s, "\n")
	if len(parts) != len(b.lines) {
		return false
	}
	for i, part := range parts {
		if part != string(b.lines[i]) {
			return false
		}
	}
	return true
}

// Clear removes all content and puts the cursor at (0,0).
func (b *Buffer) Clear() {
	b.lines = [][]rune{{}}
	b.cursor = Pos{}
}

// SetStr replaces the content with s and puts the cursor at the end.
// Nothing happens, and false is returned, when the content already equals s.
func (b *Buffer) SetStr(s string) bool {
	if b.Equals(s) {
		return false
	}
	b.Clear()
	b.InsertStr(s)
	return true
}

// InsertChar inserts r at the cursor and advances the cursor.
// '\n' breaks the line; every other rune, '\r' included, is kept.
func (b *Buffer) InsertChar(r rune) {
	switch r {
	case '\n':
		b.InsertNewLine()
	default:
		line := b.lines[b.cursor.Y]
		line = append(line, 0)
		copy(line[b.cursor.X+1:], line[b.cursor.X:])
		line[b.cursor.X] = r
		b.lines[b.cursor.Y] = line
		b.cursor.X++
	}
}

// InsertStr inserts s at the cursor, as if typed.
func (b *Buffer) InsertStr(s string) {
	for _, r := range s {
		b.InsertChar(r)
	}
}

// InsertNewLine splits the current line at the cursor and moves the cursor
// to the start of the new line.
func (b *Buffer) InsertNewLine() {
	y := b.cursor.Y
	line := b.lines[y]
	head := append([]rune(nil), line[:b.cursor.X]...)
	tail := append([]rune(nil), line[b.cursor.X:]...)

	b.lines = append(b.lines, nil)
	copy(b.lines[y+2:], b.lines[y+1:])
	b.lines[y] = head
	b.lines[y+1] = tail
	b.cursor = Pos{X: 0, Y: y + 1}
}

// DelCharLeft deletes the character before the cursor, joining with the
// previous line when the cursor is at a line start.
func (b *Buffer) DelCharLeft() bool {
	if b.cursor.X > 0 {
		b.deleteRange(b.cursor.Y, b.cursor.X-1, b.cursor.X)
		b.cursor.X--
		return true
	}
	if b.cursor.Y > 0 {
		prevLen := len(b.lines[b.cursor.Y-1])
		b.joinWithNext(b.cursor.Y - 1)
		b.cursor = Pos{X: prevLen, Y: b.cursor.Y - 1}
		return true
	}
	return false
}

// DelCharBelow deletes the character under the cursor, joining the next
// line when the cursor is at a line end.
func (b *Buffer) DelCharBelow() bool {
	line := b.lines[b.cursor.Y]
	if b.cursor.X < len(line) {
		b.deleteRange(b.cursor.Y, b.cursor.X, b.cursor.X+1)
		return true
	}
	if b.cursor.Y+1 < len(b.lines) {
		b.joinWithNext(b.cursor.Y)
		return true
	}
	return false
}

// DelWordLeft deletes from the start of the word before the cursor up to
// the cursor. At a line start it behaves like DelCharLeft.
func (b *Buffer) DelWordLeft() bool {
	if b.cursor.X == 0 {
		return b.DelCharLeft()
	}
	start := wordStartBefore(b.lines[b.cursor.Y], b.cursor.X)
	b.deleteRange(b.cursor.Y, start, b.cursor.X)
	b.cursor.X = start
	return true
}

// DelWordRight deletes from the cursor to the end of the next word.
// At a line end it behaves like DelCharBelow.
func (b *Buffer) DelWordRight() bool {
	line := b.lines[b.cursor.Y]
	if b.cursor.X >= len(line) {
		return b.DelCharBelow()
	}
	end := wordEndAfter(line, b.cursor.X)
	b.deleteRange(b.cursor.Y, b.cursor.X, end)
	return true
}

// deleteRange removes runes [from, to) of line y.
func (b *Buffer) deleteRange(y, from, to int) {
	line := b.lines[y]
	b.lines[y] = append(line[:from], line[to:]...)
}

// joinWithNext appends line y+1 to line y and removes line y+1.
func (b *Buffer) joinWithNext(y int) {
	b.lines[y] = append(b.lines[y], b.lines[y+1]...)
	b.lines = append(b.lines[:y+1], b.lines[y+2:]...)
}
