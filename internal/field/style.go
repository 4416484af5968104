package field

import "github.com/dshills/termfield/internal/renderer/core"

const (
	// PasswordMask replaces every character in password mode.
	PasswordMask = '*'

	// Ellipsis marks content cut at the left or right edge.
	Ellipsis = '…'
)

// ScrollbarStyle is the appearance of the vertical scrollbar.
type ScrollbarStyle struct {
	Track core.StyledRune
	Thumb core.StyledRune
}

// DefaultScrollbarStyle returns a half-block scrollbar with a light thumb
// on a dark track.
func DefaultScrollbarStyle() ScrollbarStyle {
	return ScrollbarStyle{
		Track: core.NewStyledRune('▐', core.NewStyle(core.ColorFromGray(5))),
		Thumb: core.NewStyledRune('▐', core.NewStyle(core.ColorFromGray(21))),
	}
}

// WithBackground returns the style with both glyphs drawn on bg.
func (s ScrollbarStyle) WithBackground(bg core.Color) ScrollbarStyle {
	return ScrollbarStyle{
		Track: s.Track.WithBackground(bg),
		Thumb: s.Thumb.WithBackground(bg),
	}
}
