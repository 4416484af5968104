// Package core provides the shared drawing types for termfield: colors,
// text attributes, styles, cells and the screen area a widget occupies.
// It has no dependency on any output backend.
package core
