package viewport

import (
	"github.com/dshills/termfield/internal/engine/textbuf"
	"github.com/dshills/termfield/internal/renderer/core"
)

// EllipsisMinWidth is the usable width at or below which no ellipsis is
// drawn. Below it the horizontal scroll margin also shrinks from 2 to 1.
const EllipsisMinWidth = 4

// upwardContextMinHeight is the height above which scrolling up keeps one
// extra line above the cursor.
const upwardContextMinHeight = 4

// HasVerticalScroll reports whether lineCount lines overflow an area of the
// given height. The scrollbar is shown exactly in that case.
func HasVerticalScroll(height, lineCount int) bool {
	return height > 0 && lineCount > height
}

// EffectiveWidth returns the number of text columns of the area, one less
// than its width when the scrollbar takes the rightmost column.
func EffectiveWidth(area core.Area, lineCount int) int {
	if HasVerticalScroll(area.Height, lineCount) {
		return area.Width - 1
	}
	return area.Width
}

// HorizontalMargin returns the number of columns FixScroll keeps between the
// cursor and either edge of a view effWidth columns wide.
func HorizontalMargin(effWidth int) int {
	if effWidth < EllipsisMinWidth {
		return 1
	}
	return 2
}

// FixScroll returns the scroll offset to use for the given state.
//
// The result always satisfies:
//
//	0 <= scroll.Y <= max(0, len(lines)-area.Height)
//	scroll.X + EffectiveWidth(area, len(lines)) <= len(lines[cursor.Y])+1
//
// and, when focused, the cursor cell lies inside the area. A degenerate area
// yields the zero offset. FixScroll is idempotent.
func FixScroll(area core.Area, focused bool, scroll textbuf.Pos, lines [][]rune, cursor textbuf.Pos) textbuf.Pos {
	if area.IsEmpty() {
		return textbuf.Pos{}
	}
	return textbuf.Pos{
		X: fixScrollX(area, focused, scroll.X, lines, cursor),
		Y: fixScrollY(area.Height, focused, scroll.Y, len(lines), cursor.Y),
	}
}

func fixScrollY(height int, focused bool, y, lineCount, cursorY int) int {
	if !HasVerticalScroll(height, lineCount) {
		return 0
	}
	y = clamp(y, 0, lineCount-height)
	if !focused {
		return y
	}
	switch {
	case y > cursorY:
		y = max(cursorY, 0)
		if y > 0 && height > upwardContextMinHeight {
			y--
		}
	case cursorY >= y+height:
		y = cursorY - height + 1
		// show the line after the cursor unless the cursor is on the last one
		if cursorY+1 < lineCount && height > 1 {
			y++
		}
	}
	return y
}

func fixScrollX(area core.Area, focused bool, x int, lines [][]rune, cursor textbuf.Pos) int {
	effWidth := EffectiveWidth(area, len(lines))
	if effWidth <= 0 {
		return 0
	}
	lineLen := 0
	if cursor.Y >= 0 && cursor.Y < len(lines) {
		lineLen = len(lines[cursor.Y])
	}
	if lineLen < effWidth {
		return 0
	}

	if focused {
		if effWidth == 1 {
			x = cursor.X
		} else {
			m := HorizontalMargin(effWidth)
			switch {
			case cursor.X < x+m:
				x = max(cursor.X-m, 0)
			case cursor.X > x+effWidth-m:
				x = cursor.X + m - effWidth
			}
		}
	}
	return clamp(x, 0, lineLen+1-effWidth)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
