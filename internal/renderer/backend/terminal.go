package backend

import (
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termfield/internal/input"
	"github.com/dshills/termfield/internal/input/key"
	"github.com/dshills/termfield/internal/input/mouse"
	"github.com/dshills/termfield/internal/renderer/core"
)

// Terminal is a Sink drawing on a tcell screen. It also owns the screen's
// input and converts it to input events.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex

	// current write position
	x, y int

	// buttons held at the last mouse event
	buttons tcell.ButtonMask
}

// NewTerminal creates a terminal on the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing screen, such as a simulation
// screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init puts the terminal in raw mode and enables mouse reporting.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.EnableMouse()
	t.screen.Clear()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Size returns the terminal dimensions.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// Clear blanks the whole screen.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

// HideCursor hides the hardware cursor. Input fields draw their own.
func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) MoveTo(x, y int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.x, t.y = x, y
	return nil
}

func (t *Terminal) Put(r rune, style core.Style) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(t.x, t.y, r, nil, convertStyle(style))
	t.x += max(core.RuneWidth(r), 1)
	return nil
}

func (t *Terminal) PutBlanks(n int, style core.Style) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ts := convertStyle(style)
	for i := 0; i < n; i++ {
		t.screen.SetContent(t.x, t.y, ' ', nil, ts)
		t.x++
	}
	return nil
}

// ResetStyle is a no-op: every tcell cell carries its own style.
func (t *Terminal) ResetStyle() error {
	return nil
}

func (t *Terminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
	return nil
}

// GetCell returns the cell drawn at the given position.
func (t *Terminal) GetCell(x, y int) core.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return core.Cell{
		Rune:  mainc,
		Width: core.RuneWidth(mainc),
		Style: convertTcellStyle(style),
	}
}

// PollEvent waits for the next input event. It returns false once the
// screen has been shut down.
func (t *Terminal) PollEvent() (input.Event, bool) {
	ev := t.screen.PollEvent()
	if ev == nil {
		return input.Event{}, false
	}
	return t.convertEvent(ev), true
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(s.Foreground)).
		Background(convertColor(s.Background))

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrBlink) {
		style = style.Blink(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	if s.Attributes.Has(core.AttrStrikethrough) {
		style = style.StrikeThrough(true)
	}
	return style
}

func convertColor(c core.Color) tcell.Color {
	switch {
	case c.IsDefault():
		return tcell.ColorDefault
	case c.Indexed:
		return tcell.PaletteColor(int(c.R))
	default:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
}

// convertTcellStyle converts tcell.Style back to our Style.
func convertTcellStyle(ts tcell.Style) core.Style {
	fg, bg, attrs := ts.Decompose()

	s := core.Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
	}
	pairs := []struct {
		tc tcell.AttrMask
		a  core.Attribute
	}{
		{tcell.AttrBold, core.AttrBold},
		{tcell.AttrDim, core.AttrDim},
		{tcell.AttrItalic, core.AttrItalic},
		{tcell.AttrUnderline, core.AttrUnderline},
		{tcell.AttrBlink, core.AttrBlink},
		{tcell.AttrReverse, core.AttrReverse},
		{tcell.AttrStrikeThrough, core.AttrStrikethrough},
	}
	for _, p := range pairs {
		if attrs&p.tc != 0 {
			s.Attributes |= p.a
		}
	}
	return s
}

// convertTcellColor converts tcell.Color to our Color.
func convertTcellColor(tc tcell.Color) core.Color {
	if tc == tcell.ColorDefault {
		return core.ColorDefault
	}
	if tc >= tcell.ColorValid && tc < tcell.ColorIsRGB {
		return core.ColorFromIndex(uint8(tc - tcell.ColorValid))
	}
	r, g, b := tc.RGB()
	return core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
}

// convertEvent converts tcell events to input events.
func (t *Terminal) convertEvent(ev tcell.Event) input.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return input.NewKeyEvent(convertKeyEvent(e))

	case *tcell.EventMouse:
		return input.NewMouseEvent(t.convertMouse(e))

	case *tcell.EventResize:
		w, h := e.Size()
		return input.NewResizeEvent(w, h)

	default:
		return input.Event{}
	}
}

func convertKeyEvent(e *tcell.EventKey) key.Event {
	mods := convertMod(e.Modifiers())
	k := e.Key()
	if k == tcell.KeyRune {
		r := e.Rune()
		if mods.Has(key.ModCtrl) {
			r = unicode.ToLower(r)
		}
		// Shift is already applied to the character
		return key.NewRuneEvent(r, mods.Without(key.ModShift))
	}
	if named := convertKey(k); named != key.KeyNone {
		return key.NewSpecialEvent(named, mods)
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods.With(key.ModCtrl))
	}
	return key.NewSpecialEvent(key.KeyNone, mods)
}

// convertKey converts a named tcell key. Control keys without a name of
// their own map to KeyNone.
func convertKey(k tcell.Key) key.Key {
	switch k {
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyTab:
		return key.KeyTab
	case tcell.KeyBacktab:
		return key.KeyBacktab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyInsert:
		return key.KeyInsert
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyPgUp:
		return key.KeyPageUp
	case tcell.KeyPgDn:
		return key.KeyPageDown
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.KeyF1 + key.Key(k-tcell.KeyF1)
	}
	return key.KeyNone
}

// convertMod converts tcell modifier mask to our Modifier.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// convertMouse turns tcell's button state into press, release and move
// actions by comparing with the previous state.
func (t *Terminal) convertMouse(e *tcell.EventMouse) mouse.Event {
	x, y := e.Position()
	ev := mouse.Event{
		Position:  mouse.Position{X: x, Y: y},
		Modifiers: convertMod(e.Modifiers()),
	}

	buttons := e.Buttons()
	if buttons&wheelMask != 0 {
		ev.Button = convertMouseButton(buttons & wheelMask)
		ev.Action = mouse.ActionPress
		return ev
	}

	t.mu.Lock()
	prev := t.buttons
	t.buttons = buttons
	t.mu.Unlock()

	switch {
	case buttons == tcell.ButtonNone && prev != tcell.ButtonNone:
		ev.Button = convertMouseButton(prev)
		ev.Action = mouse.ActionRelease
	case buttons&^prev != 0:
		ev.Button = convertMouseButton(buttons &^ prev)
		ev.Action = mouse.ActionPress
	default:
		ev.Button = convertMouseButton(buttons)
		ev.Action = mouse.ActionMove
	}
	return ev
}

// convertMouseButton converts tcell button mask to our Button.
func convertMouseButton(b tcell.ButtonMask) mouse.Button {
	switch {
	case b&tcell.ButtonPrimary != 0:
		return mouse.ButtonLeft
	case b&tcell.ButtonMiddle != 0:
		return mouse.ButtonMiddle
	case b&tcell.ButtonSecondary != 0:
		return mouse.ButtonRight
	case b&tcell.WheelUp != 0:
		return mouse.ButtonScrollUp
	case b&tcell.WheelDown != 0:
		return mouse.ButtonScrollDown
	default:
		return mouse.ButtonNone
	}
}
