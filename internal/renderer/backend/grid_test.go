package backend

import (
	"testing"

	"github.com/dshills/termfield/internal/renderer/core"
)

func TestGridPut(t *testing.T) {
	g := NewGrid(6, 2)
	style := core.NewStyle(core.ColorRed)

	_ = g.MoveTo(1, 1)
	_ = g.Put('h', style)
	_ = g.Put('i', style)
	_ = g.PutBlanks(2, core.DefaultStyle())

	if got := g.Row(1); got != " hi   " {
		t.Errorf("Row(1) = %q", got)
	}
	if got := g.Cell(1, 1); !got.Equals(core.NewStyledCell('h', style)) {
		t.Errorf("Cell(1, 1) = %+v", got)
	}
	if x, y := g.Position(); x != 5 || y != 1 {
		t.Errorf("Position() = %d,%d, want 5,1", x, y)
	}
}

func TestGridWideRune(t *testing.T) {
	g := NewGrid(5, 1)

	_ = g.Put('日', core.DefaultStyle())
	_ = g.Put('a', core.DefaultStyle())

	if got := g.Row(0); got != "日a  " {
		t.Errorf("Row(0) = %q", got)
	}
	if c := g.Cell(0, 0); c.Width != 2 {
		t.Errorf("Cell(0, 0).Width = %d, want 2", c.Width)
	}
	if c := g.Cell(1, 0); c.Width != 0 {
		t.Errorf("Cell(1, 0).Width = %d, want 0", c.Width)
	}
	if x, _ := g.Position(); x != 3 {
		t.Errorf("Position() x = %d, want 3", x)
	}
}

func TestGridClipsOutOfBounds(t *testing.T) {
	g := NewGrid(3, 1)
	_ = g.MoveTo(2, 0)
	_ = g.Put('a', core.DefaultStyle())
	_ = g.Put('b', core.DefaultStyle())
	_ = g.MoveTo(-1, 0)
	_ = g.Put('c', core.DefaultStyle())
	_ = g.MoveTo(0, 5)
	_ = g.Put('d', core.DefaultStyle())

	if got := g.Row(0); got != "  a" {
		t.Errorf("Row(0) = %q", got)
	}
	if !g.Cell(9, 9).Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
	if g.Row(7) != "" {
		t.Error("out of bounds row should be empty")
	}
}

func TestGridCounters(t *testing.T) {
	g := NewGrid(1, 1)
	_ = g.ResetStyle()
	_ = g.Flush()
	_ = g.Flush()
	if g.Resets() != 1 || g.Flushes() != 2 {
		t.Errorf("resets=%d flushes=%d", g.Resets(), g.Flushes())
	}
	if w, h := g.Size(); w != 1 || h != 1 {
		t.Errorf("Size() = %d,%d", w, h)
	}
}
