package core

import "fmt"

// Area is a rectangle in cell coordinates. The zero value is the
// uninitialized area: it contains no cell and renders nothing.
type Area struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// NewArea creates an area.
func NewArea(left, top, width, height int) Area {
	return Area{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the first column past the area.
func (a Area) Right() int {
	return a.Left + a.Width
}

// Bottom returns the first row past the area.
func (a Area) Bottom() int {
	return a.Top + a.Height
}

// IsEmpty returns true if the area has no cell.
func (a Area) IsEmpty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Contains returns true if the cell (x, y) is inside the area.
func (a Area) Contains(x, y int) bool {
	return x >= a.Left && x < a.Right() &&
		y >= a.Top && y < a.Bottom()
}

// String returns a compact representation like "20x3+5+2".
func (a Area) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", a.Width, a.Height, a.Left, a.Top)
}
