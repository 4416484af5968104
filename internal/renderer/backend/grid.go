package backend

import (
	"strings"

	"github.com/dshills/termfield/internal/renderer/core"
)

// Grid is a Sink that records cells in memory.
// Writes outside the grid are dropped.
type Grid struct {
	width, height int
	cells         [][]core.Cell
	x, y          int
	flushes       int
	resets        int
}

// NewGrid creates a grid of empty cells.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.cells = make([][]core.Cell, height)
	for i := range g.cells {
		g.cells[i] = make([]core.Cell, width)
		for j := range g.cells[i] {
			g.cells[i][j] = core.EmptyCell()
		}
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() (int, int) {
	return g.width, g.height
}

func (g *Grid) MoveTo(x, y int) error {
	g.x, g.y = x, y
	return nil
}

// Put writes r and advances by its width. The cells covered by the right
// half of a wide rune are recorded with width 0.
func (g *Grid) Put(r rune, style core.Style) error {
	c := core.NewStyledCell(r, style)
	g.set(g.x, c)
	for i := 1; i < c.Width; i++ {
		g.set(g.x+i, core.Cell{Style: style})
	}
	g.x += max(c.Width, 1)
	return nil
}

func (g *Grid) set(x int, c core.Cell) {
	if x >= 0 && x < g.width && g.y >= 0 && g.y < g.height {
		g.cells[g.y][x] = c
	}
}

func (g *Grid) PutBlanks(n int, style core.Style) error {
	for i := 0; i < n; i++ {
		_ = g.Put(' ', style)
	}
	return nil
}

func (g *Grid) ResetStyle() error {
	g.resets++
	return nil
}

func (g *Grid) Flush() error {
	g.flushes++
	return nil
}

// Cell returns the cell at the given position.
// Returns an empty cell for positions outside the grid.
func (g *Grid) Cell(x, y int) core.Cell {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		return g.cells[y][x]
	}
	return core.EmptyCell()
}

// Row returns the characters of row y. Cells covered by a wide rune are
// skipped, so the row's display width is the grid width.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range g.cells[y] {
		if c.Width == 0 && c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Position returns the current write position.
func (g *Grid) Position() (x, y int) {
	return g.x, g.y
}

// Flushes returns how many times Flush was called.
func (g *Grid) Flushes() int {
	return g.flushes
}

// Resets returns how many times ResetStyle was called.
func (g *Grid) Resets() int {
	return g.resets
}
