package app

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/termfield/internal/config"
	"github.com/dshills/termfield/internal/field"
	"github.com/dshills/termfield/internal/input"
	"github.com/dshills/termfield/internal/input/key"
	"github.com/dshills/termfield/internal/input/mouse"
	"github.com/dshills/termfield/internal/renderer/backend"
	"github.com/dshills/termfield/internal/renderer/core"
)

// fakeScreen is a Screen backed by a Grid, fed from a channel.
type fakeScreen struct {
	*backend.Grid
	events   chan input.Event
	closed   chan struct{}
	shutdown atomic.Bool
}

func newFakeScreen(width, height int) *fakeScreen {
	return &fakeScreen{
		Grid:   backend.NewGrid(width, height),
		events: make(chan input.Event),
		closed: make(chan struct{}),
	}
}

func (s *fakeScreen) Init() error { return nil }
func (s *fakeScreen) Clear()      {}
func (s *fakeScreen) HideCursor() {}

func (s *fakeScreen) Shutdown() {
	if s.shutdown.CompareAndSwap(false, true) {
		close(s.closed)
	}
}

func (s *fakeScreen) PollEvent() (input.Event, bool) {
	select {
	case ev := <-s.events:
		return ev, true
	case <-s.closed:
		return input.Event{}, false
	}
}

// newTestApp returns an app on a 60x12 grid with the default form drawn.
func newTestApp(t *testing.T) (*App, *fakeScreen) {
	t.Helper()
	screen := newFakeScreen(60, 12)
	a, err := New(screen, Options{})
	require.NoError(t, err)
	a.width, a.height = screen.Size()
	a.layout()
	require.NoError(t, a.draw())
	return a, screen
}

func typeText(a *App, s string) {
	for _, r := range s {
		a.handleEvent(input.NewKeyEvent(key.NewRuneEvent(r, key.ModNone)))
	}
}

func press(a *App, spec string) action {
	return a.handleEvent(input.NewKeyEvent(key.MustParse(spec)))
}

func click(a *App, x, y int) {
	a.handleEvent(input.NewMouseEvent(mouse.NewPress(mouse.ButtonLeft, x, y)))
}

func focusedCount(a *App) int {
	n := 0
	for _, f := range a.fields {
		if f.Focused() {
			n++
		}
	}
	return n
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil, Options{})
	assert.ErrorIs(t, err, ErrNoScreen)

	cfg := config.Default()
	cfg.Fields[1].Name = "user"
	_, err = New(newFakeScreen(10, 10), Options{Config: cfg})
	var ierr *InitError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "config", ierr.Component)
	assert.ErrorIs(t, err, config.ErrInvalidField)
}

func TestLayout(t *testing.T) {
	a, _ := newTestApp(t)

	require.Len(t, a.fields, 3)
	assert.Equal(t, core.NewArea(10, 0, 40, 1), a.fields[0].Area())
	assert.Equal(t, core.NewArea(10, 2, 40, 1), a.fields[1].Area())
	assert.Equal(t, core.NewArea(10, 4, 50, 4), a.fields[2].Area())
	assert.True(t, a.fields[0].Focused())
	assert.Equal(t, 1, focusedCount(a))
}

func TestDraw(t *testing.T) {
	a, screen := newTestApp(t)
	a.moveFocus(1)
	typeText(a, "abc")
	require.NoError(t, a.draw())

	assert.True(t, strings.HasPrefix(screen.Row(0), "user      "))
	assert.True(t, strings.HasPrefix(screen.Row(2), "password  ***"))
	assert.True(t, strings.HasPrefix(screen.Row(4), "comment   "))
	assert.True(t, strings.HasPrefix(screen.Row(11), helpText))

	assert.True(t, screen.Cell(0, 2).Style.Attributes.Has(core.AttrBold))
	assert.False(t, screen.Cell(0, 0).Style.Attributes.Has(core.AttrBold))
	assert.True(t, screen.Cell(13, 2).Style.Attributes.Has(core.AttrReverse))
	assert.Equal(t, 2, screen.Flushes())
}

func TestTabCyclesFocus(t *testing.T) {
	a, _ := newTestApp(t)

	press(a, "Tab")
	assert.Equal(t, 1, a.focus)
	press(a, "<S-Tab>")
	press(a, "<S-Tab>")
	assert.Equal(t, 2, a.focus)
	press(a, "Tab")
	assert.Equal(t, 0, a.focus)
	assert.True(t, a.fields[0].Focused())
	assert.Equal(t, 1, focusedCount(a))
}

func TestTypingGoesToFocusedField(t *testing.T) {
	a, _ := newTestApp(t)

	typeText(a, "bob")
	press(a, "Tab")
	typeText(a, "pw")
	press(a, "Backspace")

	values := a.Values()
	require.Len(t, values, 3)
	assert.Equal(t, Value{Name: "user", Text: "bob"}, values[0])
	assert.Equal(t, Value{Name: "password", Text: "p", Password: true}, values[1])
	assert.Equal(t, Value{Name: "comment"}, values[2])
}

func TestNewLineOnlyInMultilineField(t *testing.T) {
	a, _ := newTestApp(t)

	typeText(a, "a")
	press(a, "Alt+Enter")
	press(a, "Enter")
	assert.Equal(t, "a", a.fields[0].Content())

	a.moveFocus(2)
	typeText(a, "x")
	press(a, "Alt+Enter")
	typeText(a, "y")
	press(a, "<C-j>")
	assert.Equal(t, "x\ny\n", a.fields[2].Content())
}

func TestClickFocusesThenMovesCursor(t *testing.T) {
	a, _ := newTestApp(t)
	a.moveFocus(2)
	typeText(a, "abc")
	press(a, "Alt+Enter")
	typeText(a, "de")
	a.moveFocus(1)

	click(a, 11, 4)
	assert.Equal(t, 2, a.focus)
	assert.Equal(t, 1, focusedCount(a))
	assert.Equal(t, 2, a.fields[2].CursorPos().X, "first click only focuses")

	click(a, 11, 4)
	assert.Equal(t, 1, a.fields[2].CursorPos().X)
	assert.Equal(t, 0, a.fields[2].CursorPos().Y)

	click(a, 5, 0) // on a label
	assert.Equal(t, 2, a.focus)
}

func TestQuitKeys(t *testing.T) {
	for _, spec := range []string{"Esc", "Ctrl+C"} {
		a, _ := newTestApp(t)
		assert.Equal(t, actionQuit, press(a, spec), spec)
		assert.False(t, a.Submitted(), spec)
	}

	a, _ := newTestApp(t)
	assert.Equal(t, actionNone, press(a, "Ctrl+X"))
	assert.Equal(t, actionQuit, press(a, "Ctrl+S"))
	assert.True(t, a.Submitted())
}

func TestResizeKeepsHeights(t *testing.T) {
	a, _ := newTestApp(t)

	a.handleEvent(input.NewResizeEvent(30, 10))
	assert.Equal(t, core.NewArea(10, 0, 20, 1), a.fields[0].Area())
	assert.Equal(t, core.NewArea(10, 4, 20, 4), a.fields[2].Area())

	a.handleEvent(input.NewResizeEvent(5, 10))
	assert.Equal(t, 0, a.fields[0].Area().Width)
	assert.NoError(t, a.draw())
}

func TestReloadKeepsContentAndFocus(t *testing.T) {
	a, _ := newTestApp(t)
	typeText(a, "bob")
	a.moveFocus(2)
	typeText(a, "note")
	user, comment := a.fields[0], a.fields[2]

	cfg := config.Default()
	cfg.Fields[0].Password = true
	cfg.Fields = []config.FieldConfig{cfg.Fields[0], cfg.Fields[2], {Name: "pin", Value: "1234"}}
	cfg.Style.Background = "#000080"
	require.NoError(t, a.applyConfig(cfg))
	a.layout()

	require.Len(t, a.fields, 3)
	assert.Same(t, user, a.fields[0])
	assert.Same(t, comment, a.fields[1])
	assert.True(t, user.PasswordMode())
	assert.Equal(t, "bob", user.Content())
	assert.Equal(t, "1234", a.fields[2].Content())
	assert.Equal(t, 1, a.focus)
	assert.True(t, comment.Focused())
	assert.Equal(t, 1, focusedCount(a))
	assert.Equal(t, core.NewArea(9, 2, 51, 4), comment.Area())
}

func TestReloadRejectsInvalidConfig(t *testing.T) {
	a, _ := newTestApp(t)
	before := a.fields

	cfg := config.Default()
	cfg.Style.Foreground = "nope"
	assert.ErrorIs(t, a.applyConfig(cfg), config.ErrInvalidStyle)
	assert.Equal(t, before, a.fields)
}

func TestRejectedReloadLeavesFieldsUntouched(t *testing.T) {
	a, screen := newTestApp(t)
	require.NoError(t, a.draw())
	userStyle := screen.Cell(10, 0).Style
	password := a.fields[1]

	cfg := config.Default()
	cfg.Style.UnfocusedBackground = "#000080"
	cfg.Fields[0].Multiline = true
	cfg.Fields[1].Password = false
	cfg.Fields[2].NewLineKeys = []string{"<Nope-x>"}
	require.ErrorIs(t, a.applyConfig(cfg), config.ErrInvalidField)

	assert.True(t, password.PasswordMode())
	assert.Empty(t, a.fields[0].NewLineKeys())
	require.NoError(t, a.draw())
	assert.Equal(t, userStyle, screen.Cell(10, 0).Style)
	assert.True(t, strings.HasPrefix(screen.Row(2), "password  "))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "user=bob", Value{Name: "user", Text: "bob"}.String())
	assert.Equal(t, "pw=*****", Value{Name: "pw", Text: "héllo", Password: true}.String())
	assert.Equal(t, `notes="a\nb"`, Value{Name: "notes", Text: "a\nb"}.String())
}

func TestWriteValues(t *testing.T) {
	a, _ := newTestApp(t)
	typeText(a, "bob")
	press(a, "Tab")
	typeText(a, "pw")

	var sb strings.Builder
	require.NoError(t, a.WriteValues(&sb))
	assert.Equal(t, "user=bob\npassword=**\ncomment=\n", sb.String())
}

func TestRunStopsWithContext(t *testing.T) {
	screen := newFakeScreen(40, 10)
	a, err := New(screen, Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	<-a.Ready()
	screen.events <- input.NewKeyEvent(key.NewRuneEvent('x', key.ModNone))
	// the second send returns once the loop has taken the first event
	screen.events <- input.NewResizeEvent(40, 10)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.True(t, screen.shutdown.Load())
	assert.False(t, a.Submitted())
	assert.Equal(t, "x", a.Values()[0].Text)
}

func TestRunOnSimulationScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	a, err := New(backend.NewTerminalWithScreen(sim), Options{})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()
	select {
	case <-a.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("app did not start")
	}

	sim.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'i', tcell.ModNone)
	sim.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.True(t, a.Submitted())
	values := a.Values()
	assert.Equal(t, "hi", values[0].Text)
	assert.Equal(t, "x", values[1].Text)
	assert.Equal(t, field.PasswordMask, []rune(values[1].String())[len("password=")])
}
