package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termfield/internal/input"
	"github.com/dshills/termfield/internal/input/key"
	"github.com/dshills/termfield/internal/input/mouse"
	"github.com/dshills/termfield/internal/renderer/core"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	term := NewTerminalWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(20, 5)
	t.Cleanup(term.Shutdown)
	return term, sim
}

// nextEvent polls until an event of the wanted type arrives, skipping the
// resize events a screen may post on startup.
func nextEvent(t *testing.T, term *Terminal, want input.EventType) input.Event {
	t.Helper()
	for i := 0; i < 4; i++ {
		ev, ok := term.PollEvent()
		if !ok {
			t.Fatal("screen closed")
		}
		if ev.Type == want {
			return ev
		}
	}
	t.Fatalf("no %s event", want)
	return input.Event{}
}

func TestTerminalDraw(t *testing.T) {
	term, _ := newSimTerminal(t)

	style := core.DefaultStyle().Reverse()
	_ = term.MoveTo(3, 2)
	_ = term.Put('o', style)
	_ = term.Put('k', core.DefaultStyle())
	_ = term.PutBlanks(1, style)
	if err := term.Flush(); err != nil {
		t.Fatal(err)
	}

	if c := term.GetCell(3, 2); c.Rune != 'o' || !c.Style.Attributes.Has(core.AttrReverse) {
		t.Errorf("cell (3,2) = %+v", c)
	}
	if c := term.GetCell(4, 2); c.Rune != 'k' || c.Style.Attributes.Has(core.AttrReverse) {
		t.Errorf("cell (4,2) = %+v", c)
	}
	if c := term.GetCell(5, 2); c.Rune != ' ' || !c.Style.Attributes.Has(core.AttrReverse) {
		t.Errorf("cell (5,2) = %+v", c)
	}
	if w, h := term.Size(); w != 20 || h != 5 {
		t.Errorf("Size() = %d,%d", w, h)
	}
}

func TestTerminalWideRuneAdvancesTwoColumns(t *testing.T) {
	term, _ := newSimTerminal(t)

	_ = term.MoveTo(0, 0)
	_ = term.Put('日', core.DefaultStyle())
	_ = term.Put('a', core.DefaultStyle())
	if err := term.Flush(); err != nil {
		t.Fatal(err)
	}

	if c := term.GetCell(0, 0); c.Rune != '日' || c.Width != 2 {
		t.Errorf("cell (0,0) = %+v", c)
	}
	if c := term.GetCell(2, 0); c.Rune != 'a' {
		t.Errorf("cell (2,0) = %+v, want 'a'", c)
	}
}

func TestTerminalKeyEvents(t *testing.T) {
	term, sim := newSimTerminal(t)

	tests := []struct {
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want key.Event
	}{
		{tcell.KeyEnter, 0, tcell.ModAlt, key.NewSpecialEvent(key.KeyEnter, key.ModAlt)},
		{tcell.KeyRune, 'A', tcell.ModShift, key.NewRuneEvent('A', key.ModNone)},
		{tcell.KeyCtrlS, 0, tcell.ModCtrl, key.NewRuneEvent('s', key.ModCtrl)},
		{tcell.KeyBacktab, 0, tcell.ModNone, key.NewSpecialEvent(key.KeyBacktab, key.ModNone)},
		{tcell.KeyBackspace2, 0, tcell.ModNone, key.NewSpecialEvent(key.KeyBackspace, key.ModNone)},
		{tcell.KeyF3, 0, tcell.ModNone, key.NewSpecialEvent(key.KeyF3, key.ModNone)},
	}
	for _, tt := range tests {
		sim.InjectKey(tt.key, tt.r, tt.mod)
		ev := nextEvent(t, term, input.EventKey)
		if ev.Key != tt.want {
			t.Errorf("key %v: got %v, want %v", tt.key, ev.Key, tt.want)
		}
	}
}

func TestTerminalMouseEvents(t *testing.T) {
	term, sim := newSimTerminal(t)

	sim.InjectMouse(4, 1, tcell.ButtonPrimary, tcell.ModNone)
	ev := nextEvent(t, term, input.EventMouse)
	if !ev.Mouse.IsLeftPress() || ev.Mouse.Position != (mouse.Position{X: 4, Y: 1}) {
		t.Errorf("press = %+v", ev.Mouse)
	}

	sim.InjectMouse(5, 1, tcell.ButtonPrimary, tcell.ModNone)
	ev = nextEvent(t, term, input.EventMouse)
	if ev.Mouse.Action != mouse.ActionMove {
		t.Errorf("drag action = %v, want move", ev.Mouse.Action)
	}

	sim.InjectMouse(5, 1, tcell.ButtonNone, tcell.ModNone)
	ev = nextEvent(t, term, input.EventMouse)
	if ev.Mouse.Action != mouse.ActionRelease || ev.Mouse.Button != mouse.ButtonLeft {
		t.Errorf("release = %+v", ev.Mouse)
	}

	sim.InjectMouse(5, 1, tcell.WheelDown, tcell.ModNone)
	ev = nextEvent(t, term, input.EventMouse)
	if ev.Mouse.Button != mouse.ButtonScrollDown || ev.Mouse.Action != mouse.ActionPress {
		t.Errorf("wheel = %+v", ev.Mouse)
	}
}

func TestConvertStyleRoundTrip(t *testing.T) {
	styles := []core.Style{
		core.DefaultStyle(),
		core.NewStyle(core.ColorFromIndex(42)).Bold(),
		core.NewStyle(core.ColorFromRGB(10, 20, 30)).WithBackground(core.ColorFromIndex(3)).Reverse(),
	}
	for _, s := range styles {
		if got := convertTcellStyle(convertStyle(s)); !got.Equals(s) {
			t.Errorf("round trip of %+v = %+v", s, got)
		}
	}
}
