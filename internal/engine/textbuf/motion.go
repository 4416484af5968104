package textbuf

import "unicode"

// MoveUp moves the cursor one line up, clamping the column.
func (b *Buffer) MoveUp() bool {
	return b.MoveLinesUp(1)
}

// MoveDown moves the cursor one line down, clamping the column.
func (b *Buffer) MoveDown() bool {
	return b.MoveLinesDown(1)
}

// MoveLinesUp moves the cursor up by n lines, stopping at the first line.
func (b *Buffer) MoveLinesUp(n int) bool {
	if b.cursor.Y == 0 || n <= 0 {
		return false
	}
	y := max(b.cursor.Y-n, 0)
	b.cursor = Pos{X: min(b.cursor.X, len(b.lines[y])), Y: y}
	return true
}

// MoveLinesDown moves the cursor down by n lines, stopping at the last line.
func (b *Buffer) MoveLinesDown(n int) bool {
	last := len(b.lines) - 1
	if b.cursor.Y == last || n <= 0 {
		return false
	}
	y := min(b.cursor.Y+n, last)
	b.cursor = Pos{X: min(b.cursor.X, len(b.lines[y])), Y: y}
	return true
}

// MoveLeft moves the cursor one character left, wrapping to the end of the
// previous line.
func (b *Buffer) MoveLeft() bool {
	if b.cursor.X > 0 {
		b.cursor.X--
		return true
	}
	if b.cursor.Y > 0 {
		b.cursor.Y--
		b.cursor.X = len(b.lines[b.cursor.Y])
		return true
	}
	return false
}

// MoveRight moves the cursor one character right, wrapping to the start of
// the next line.
func (b *Buffer) MoveRight() bool {
	if b.cursor.X < len(b.lines[b.cursor.Y]) {
		b.cursor.X++
		return true
	}
	if b.cursor.Y+1 < len(b.lines) {
		b.cursor = Pos{X: 0, Y: b.cursor.Y + 1}
		return true
	}
	return false
}

// MoveWordLeft moves the cursor to the start of the previous word, or to the
// end of the previous line when already at a line start.
func (b *Buffer) MoveWordLeft() bool {
	if b.cursor.X == 0 {
		return b.MoveLeft()
	}
	b.cursor.X = wordStartBefore(b.lines[b.cursor.Y], b.cursor.X)
	return true
}

// MoveWordRight moves the cursor to the end of the next word, or to the
// start of the next line when already at a line end.
func (b *Buffer) MoveWordRight() bool {
	line := b.lines[b.cursor.Y]
	if b.cursor.X >= len(line) {
		return b.MoveRight()
	}
	b.cursor.X = wordEndAfter(line, b.cursor.X)
	return true
}

// MoveToLineStart moves the cursor to column 0.
func (b *Buffer) MoveToLineStart() bool {
	if b.cursor.X == 0 {
		return false
	}
	b.cursor.X = 0
	return true
}

// MoveToLineEnd moves the cursor past the last character of its line.
func (b *Buffer) MoveToLineEnd() bool {
	n := len(b.lines[b.cursor.Y])
	if b.cursor.X == n {
		return false
	}
	b.cursor.X = n
	return true
}

// MoveToStart moves the cursor to the start of the buffer.
func (b *Buffer) MoveToStart() bool {
	return b.SetCursorPos(Pos{})
}

// MoveToEnd moves the cursor past the last character of the buffer.
func (b *Buffer) MoveToEnd() bool {
	last := len(b.lines) - 1
	return b.SetCursorPos(Pos{X: len(b.lines[last]), Y: last})
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// wordStartBefore returns the column of the start of the word ending at or
// before x: separators left of x are skipped, then word runes.
func wordStartBefore(line []rune, x int) int {
	for x > 0 && !isWordRune(line[x-1]) {
		x--
	}
	for x > 0 && isWordRune(line[x-1]) {
		x--
	}
	return x
}

// wordEndAfter returns the column just past the end of the word starting at
// or after x: separators are skipped, then word runes.
func wordEndAfter(line []rune, x int) int {
	for x < len(line) && !isWordRune(line[x]) {
		x++
	}
	for x < len(line) && isWordRune(line[x]) {
		x++
	}
	return x
}
