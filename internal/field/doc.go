// Package field implements an editable text field for terminal interfaces.
//
// A Field shows a text buffer inside a rectangular area of the screen. It
// works as a one-line input or, once newline keys are registered with
// NewLineOn, as a multi-line text area with a vertical scrollbar.
//
// The field keeps its scroll offset consistent with the cursor: every
// operation that moves the cursor or changes the content recomputes the
// offset before returning, so rendering never sees a stale view.
//
// Events are applied with ApplyEvent, ApplyKeyEvent, ApplyKeycodeEvent and
// ApplyClickEvent, each reporting whether the field consumed the event.
// Key events carrying modifiers other than Shift are left to the host
// application unless they are registered newline keys.
//
// Rendering is explicit. DisplayOn paints the field on a backend.Sink
// without flushing it, so several fields can share one frame:
//
//	name := field.New(core.NewArea(2, 1, 30, 1))
//	notes := field.New(core.NewArea(2, 3, 30, 6))
//	notes.NewLineOn(field.AltEnter)
//	notes.SetFocus(false)
//	_ = name.DisplayOn(sink)
//	_ = notes.DisplayOn(sink)
//	_ = sink.Flush()
//
// A Field is not safe for concurrent use.
package field
