package app

import (
	"unicode/utf8"

	"github.com/dshills/termfield/internal/renderer/core"
)

const (
	// labelPad separates the longest label from the fields.
	labelPad = 2
	// rowGap is the number of blank rows between fields.
	rowGap = 1
)

const helpText = "Tab/Shift+Tab: move  Ctrl+S: submit  Esc: cancel"

func (a *App) labelWidth() int {
	w := 0
	for _, fc := range a.cfg.Fields {
		w = max(w, utf8.RuneCountInString(fc.Name))
	}
	return w + labelPad
}

// fieldWidth returns the width of field i: its configured width, limited
// to the room right of the labels.
func (a *App) fieldWidth(i, left int) int {
	room := max(a.width-left, 0)
	if w := a.cfg.Fields[i].Width; w > 0 && w < room {
		return w
	}
	return room
}

// layout places every field at its configured size.
func (a *App) layout() {
	left := a.labelWidth()
	top := 0
	for i, f := range a.fields {
		rows := a.cfg.Fields[i].Rows()
		f.SetArea(core.NewArea(left, top, a.fieldWidth(i, left), rows))
		top += rows + rowGap
	}
}

// relayout fits the fields to a new terminal width, keeping their heights.
func (a *App) relayout() {
	left := a.labelWidth()
	top := 0
	for i, f := range a.fields {
		f.ChangeArea(left, top, a.fieldWidth(i, left))
		top += f.Area().Height + rowGap
	}
}

// draw paints labels, fields and the help line, then shows the frame.
func (a *App) draw() error {
	left := a.labelWidth()
	labelStyle := a.styles.Unfocused
	for i, f := range a.fields {
		style := labelStyle
		if f.Focused() {
			style = a.styles.Focused.Bold()
		}
		if err := a.drawText(0, f.Area().Top, left, a.cfg.Fields[i].Name, style); err != nil {
			return err
		}
		if err := f.DisplayOn(a.screen); err != nil {
			return err
		}
	}
	if a.height > 0 {
		if err := a.drawText(0, a.height-1, a.width, helpText, labelStyle); err != nil {
			return err
		}
	}
	return a.screen.Flush()
}

// drawText writes text at (x, y), cut or padded to width cells.
func (a *App) drawText(x, y, width int, text string, style core.Style) error {
	if err := a.screen.MoveTo(x, y); err != nil {
		return err
	}
	n := 0
	for _, r := range text {
		if n == width {
			return nil
		}
		if err := a.screen.Put(r, style); err != nil {
			return err
		}
		n++
	}
	return a.screen.PutBlanks(width-n, style)
}
