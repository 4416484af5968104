// Package input defines the events an input field consumes.
//
// An Event is exactly one of a key press, a mouse event or a terminal
// resize. Backends translate their native events into this form; the key
// and mouse subpackages hold the payload types.
package input
