package field

import (
	"fmt"
	"unicode"

	"github.com/dshills/termfield/internal/renderer/backend"
	"github.com/dshills/termfield/internal/renderer/core"
	"github.com/dshills/termfield/internal/renderer/viewport"
)

// DisplayOn paints the field on s. It does not flush s.
//
// Rendering stops at the first write error, which is returned; the rows
// written before it stay in the sink.
func (f *Field) DisplayOn(s backend.Sink) error {
	if err := f.displayOn(s); err != nil {
		return fmt.Errorf("display field %v: %w", f.area, err)
	}
	return nil
}

// Display paints the field on standard output and flushes it.
func (f *Field) Display() error {
	out := backend.NewStdout()
	if err := f.DisplayOn(out); err != nil {
		return err
	}
	return out.Flush()
}

func (f *Field) displayOn(s backend.Sink) error {
	if f.area.IsEmpty() {
		return nil
	}

	lines := f.buf.Lines()
	width := f.area.Width
	thumbTop, thumbBottom, hasScrollbar := viewport.Scrollbar(f.area.Height, f.scroll.Y, len(lines))
	if hasScrollbar {
		width--
	}

	if err := s.ResetStyle(); err != nil {
		return err
	}

	base := f.baseStyle()
	bar := f.activeScrollbarStyle()
	for j := 0; j < f.area.Height; j++ {
		if err := s.MoveTo(f.area.Left, f.area.Top+j); err != nil {
			return err
		}
		y := f.scroll.Y + j
		var err error
		if y < len(lines) {
			err = f.displayLine(s, lines[y], y, width, base)
		} else {
			err = s.PutBlanks(width, base)
		}
		if err != nil {
			return err
		}
		if !hasScrollbar {
			continue
		}
		glyph := bar.Track
		if j >= thumbTop && j <= thumbBottom {
			glyph = bar.Thumb
		}
		if err := s.Put(glyph.Rune, glyph.Style); err != nil {
			return err
		}
	}
	return nil
}

// displayLine paints the visible part of line y on width columns. Wide runes
// take two columns; one that would cross the right edge is drawn as blanks.
func (f *Field) displayLine(s backend.Sink, chars []rune, y, width int, base core.Style) error {
	pos := f.buf.CursorPos()
	cursorRow := f.focused && pos.Y == y
	cursorAtEnd := cursorRow && pos.X == len(chars)

	col, idx := 0, f.scroll.X
	if f.leadingEllipsis(chars, width) {
		if err := s.Put(Ellipsis, base); err != nil {
			return err
		}
		col, idx = 1, idx+1
	}
	trailing := ellipsisFits(width) && !cursorAtEnd && f.columns(chars, idx) > width-col
	end := width
	if trailing {
		end--
	}

	for ; col < end; idx++ {
		r, w := ' ', 1
		if idx < len(chars) {
			r, w = f.glyph(chars[idx]), f.cellWidth(chars[idx])
		}
		if col+w > end {
			if err := s.PutBlanks(end-col, base); err != nil {
				return err
			}
			break
		}
		style := base
		if cursorRow && pos.X == idx {
			style = f.cursorStyle
		}
		if err := s.Put(r, style); err != nil {
			return err
		}
		col += w
	}
	if trailing {
		return s.Put(Ellipsis, base)
	}
	return nil
}

// no ellipsis on narrow fields
func ellipsisFits(width int) bool {
	return width > viewport.EllipsisMinWidth
}

func (f *Field) leadingEllipsis(chars []rune, width int) bool {
	return ellipsisFits(width) && f.scroll.X > 0 && len(chars) > 0
}

// columns returns the width of chars[from:] once drawn.
func (f *Field) columns(chars []rune, from int) int {
	n := 0
	for i := from; i < len(chars); i++ {
		n += f.cellWidth(chars[i])
	}
	return n
}

// runeAt returns the index in chars of the rune drawn at column col of the
// text area. Columns past the end of the line continue one rune per column.
func (f *Field) runeAt(chars []rune, col int) int {
	idx, c := f.scroll.X, 0
	if f.leadingEllipsis(chars, f.textWidth()) {
		if col == 0 {
			return idx
		}
		idx, c = idx+1, 1
	}
	for ; idx < len(chars); idx++ {
		w := f.cellWidth(chars[idx])
		if col < c+w {
			return idx
		}
		c += w
	}
	return idx + col - c
}

// textWidth returns the columns left for text once the scrollbar is drawn.
func (f *Field) textWidth() int {
	if _, _, ok := viewport.Scrollbar(f.area.Height, f.scroll.Y, f.buf.LineCount()); ok {
		return f.area.Width - 1
	}
	return f.area.Width
}

// glyph returns the character drawn for r. Runes without width of their own
// are drawn as a space.
func (f *Field) glyph(r rune) rune {
	switch {
	case f.passwordMode:
		return PasswordMask
	case unicode.IsControl(r), core.RuneWidth(r) == 0:
		return ' '
	}
	return r
}

// cellWidth returns the columns r takes once drawn.
func (f *Field) cellWidth(r rune) int {
	if w := core.RuneWidth(f.glyph(r)); w > 1 {
		return w
	}
	return 1
}

func (f *Field) baseStyle() core.Style {
	if f.focused {
		return f.focusedStyle
	}
	return f.unfocusedStyle
}

// activeScrollbarStyle returns the scrollbar style, on the focused
// background when the field is focused and its style has one.
func (f *Field) activeScrollbarStyle() ScrollbarStyle {
	if f.focused && f.focusedStyle.HasBackground() {
		return f.scrollbarStyle.WithBackground(f.focusedStyle.Background)
	}
	return f.scrollbarStyle
}
