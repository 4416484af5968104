// Package textbuf provides the line-oriented text content edited by an
// input field: an ordered list of rune lines plus a cursor.
//
// The buffer always holds at least one (possibly empty) line. Positions are
// expressed in runes, not bytes or display cells, so column X of line Y is
// Lines()[Y][X].
//
// Every mutation or movement reports whether it changed anything:
//
//	buf := textbuf.NewFromString("hello")
//	buf.MoveLeft()    // true, cursor (4,0)
//	buf.MoveToStart() // true, cursor (0,0)
//	buf.MoveLeft()    // false, already at the start
//
// Callers (the field widget) use that result to decide whether the view
// must be resynchronized.
//
// A Buffer is not safe for concurrent use.
package textbuf
