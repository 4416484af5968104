// Package backend provides the output sinks an input field renders to.
//
// A Sink receives positioned, styled cells. Three implementations exist:
//
//   - ANSI writes escape sequences to an io.Writer
//   - Terminal draws on a tcell screen and also delivers its input events
//   - Grid records cells in memory
//
// Sinks buffer output. Nothing reaches the display until Flush, so several
// fields can share one frame.
package backend

import "github.com/dshills/termfield/internal/renderer/core"

// Sink is a cell-addressed output stream.
//
// Put and PutBlanks write at the current position and advance it by the
// width of what was written, two columns for a wide rune. Any error is an
// I/O error from the underlying device; callers abandon the frame on the
// first one.
type Sink interface {
	// MoveTo sets the current position to column x of row y.
	MoveTo(x, y int) error

	// Put writes one character.
	Put(r rune, style core.Style) error

	// PutBlanks writes n blank cells.
	PutBlanks(n int, style core.Style) error

	// ResetStyle restores the default style for whatever is written next
	// outside the sink's control.
	ResetStyle() error

	// Flush makes everything written so far visible.
	Flush() error
}
