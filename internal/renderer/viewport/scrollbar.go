package viewport

// Scrollbar returns the rows, relative to the top of the area, covered by
// the thumb of the vertical scrollbar. Both bounds are inclusive. ok is
// false when no scrollbar is shown.
//
// The thumb height is proportional to the visible share of the lines and is
// at least one row. Its top maps scrollY onto the free part of the track.
func Scrollbar(height, scrollY, lineCount int) (top, bottom int, ok bool) {
	if !HasVerticalScroll(height, lineCount) {
		return 0, 0, false
	}
	thumb := clamp(height*height/lineCount, 1, height)
	free := height - thumb
	maxOffset := lineCount - height
	top = clamp(scrollY, 0, maxOffset) * free / maxOffset
	return top, top + thumb - 1, true
}
