package app

import (
	"github.com/dshills/termfield/internal/input"
	"github.com/dshills/termfield/internal/input/key"
)

type action int

const (
	actionNone action = iota
	actionQuit
)

// Application keys, checked before the focused field sees the event.
var (
	keySubmit = key.NewRuneEvent('s', key.ModCtrl)
	keyCancel = key.NewRuneEvent('c', key.ModCtrl)
	keyEscape = key.NewSpecialEvent(key.KeyEscape, key.ModNone)
	keyNext   = key.NewSpecialEvent(key.KeyTab, key.ModNone)
	keyPrev   = key.NewSpecialEvent(key.KeyBacktab, key.ModNone)
)

// handleEvent processes one event and tells whether the form is done.
func (a *App) handleEvent(ev input.Event) action {
	switch ev.Type {
	case input.EventResize:
		a.width, a.height = ev.Width, ev.Height
		a.screen.Clear()
		a.relayout()
	case input.EventKey:
		return a.handleKey(ev)
	case input.EventMouse:
		a.handleMouse(ev)
	}
	return actionNone
}

func (a *App) handleKey(ev input.Event) action {
	switch ev.Key {
	case keySubmit:
		a.submitted = true
		return actionQuit
	case keyCancel, keyEscape:
		return actionQuit
	case keyNext:
		a.moveFocus(1)
		return actionNone
	case keyPrev:
		a.moveFocus(-1)
		return actionNone
	}

	if len(a.fields) > 0 && !a.fields[a.focus].ApplyEvent(ev) {
		a.log.Debug("unhandled %s", ev)
	}
	return actionNone
}

// handleMouse offers the event to every field. A field taking a click
// while unfocused has focused itself, so the others lose the focus.
func (a *App) handleMouse(ev input.Event) {
	for i, f := range a.fields {
		wasFocused := f.Focused()
		if !f.ApplyEvent(ev) {
			continue
		}
		if !wasFocused {
			a.setFocus(i)
		}
		return
	}
}

// moveFocus focuses the field delta positions away, wrapping around.
func (a *App) moveFocus(delta int) {
	n := len(a.fields)
	if n == 0 {
		return
	}
	a.setFocus(((a.focus+delta)%n + n) % n)
}

func (a *App) setFocus(i int) {
	for j, f := range a.fields {
		if j != i && f.Focused() {
			f.SetFocus(false)
		}
	}
	a.focus = i
	if !a.fields[i].Focused() {
		a.fields[i].SetFocus(true)
	}
}
