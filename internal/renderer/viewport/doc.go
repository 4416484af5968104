// Package viewport computes which part of a text buffer an input field
// shows.
//
// FixScroll recomputes the scroll offset from the field's area, focus, line
// contents and cursor. It is a pure function: the field calls it after every
// operation that changed the cursor or the content, and nothing else writes
// the scroll offset.
//
// Scrollbar computes the thumb rows of the vertical scrollbar shown when the
// buffer has more lines than the area has rows.
package viewport
