package textbuf

import "fmt"

// Pos is a position in the buffer.
// Y is a 0-indexed line, X a 0-indexed rune column within that line.
// X may equal the line length (the position after the last character).
type Pos struct {
	X int
	Y int
}

// String returns a human-readable representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d:%d)", p.Y, p.X)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other,
// in reading order.
func (p Pos) Compare(other Pos) int {
	switch {
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Pos) Before(other Pos) bool {
	return p.Compare(other) < 0
}
