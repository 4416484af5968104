package backend

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/dshills/termfield/internal/renderer/core"
)

// ANSI is a Sink that writes escape sequences to a writer.
// Runs of cells sharing a style are written as one styled string.
type ANSI struct {
	w       *bufio.Writer
	profile termenv.Profile

	run      strings.Builder
	runStyle core.Style
}

// NewANSI creates an ANSI sink. Colors are degraded to what profile supports;
// termenv.Ascii drops all styling.
func NewANSI(w io.Writer, profile termenv.Profile) *ANSI {
	return &ANSI{
		w:       bufio.NewWriter(w),
		profile: profile,
	}
}

// NewStdout creates an ANSI sink on standard output using the color profile
// detected from the environment.
func NewStdout() *ANSI {
	return NewANSI(os.Stdout, termenv.NewOutput(os.Stdout).EnvColorProfile())
}

func (a *ANSI) MoveTo(x, y int) error {
	if err := a.endRun(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.w, termenv.CSI+termenv.CursorPositionSeq, y+1, x+1)
	return err
}

func (a *ANSI) Put(r rune, style core.Style) error {
	if a.run.Len() > 0 && !style.Equals(a.runStyle) {
		if err := a.endRun(); err != nil {
			return err
		}
	}
	a.runStyle = style
	a.run.WriteRune(r)
	return nil
}

func (a *ANSI) PutBlanks(n int, style core.Style) error {
	for i := 0; i < n; i++ {
		if err := a.Put(' ', style); err != nil {
			return err
		}
	}
	return nil
}

func (a *ANSI) ResetStyle() error {
	if err := a.endRun(); err != nil {
		return err
	}
	if a.profile == termenv.Ascii {
		return nil
	}
	_, err := a.w.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	return err
}

func (a *ANSI) Flush() error {
	if err := a.endRun(); err != nil {
		return err
	}
	return a.w.Flush()
}

// endRun writes the pending run of same-styled cells.
func (a *ANSI) endRun() error {
	if a.run.Len() == 0 {
		return nil
	}
	text := a.run.String()
	a.run.Reset()
	_, err := a.w.WriteString(a.styled(text, a.runStyle))
	return err
}

func (a *ANSI) styled(text string, s core.Style) string {
	ts := a.profile.String()
	if c := a.color(s.Foreground); c != nil {
		ts = ts.Foreground(c)
	}
	if c := a.color(s.Background); c != nil {
		ts = ts.Background(c)
	}
	if s.Attributes.Has(core.AttrBold) {
		ts = ts.Bold()
	}
	if s.Attributes.Has(core.AttrDim) {
		ts = ts.Faint()
	}
	if s.Attributes.Has(core.AttrItalic) {
		ts = ts.Italic()
	}
	if s.Attributes.Has(core.AttrUnderline) {
		ts = ts.Underline()
	}
	if s.Attributes.Has(core.AttrBlink) {
		ts = ts.Blink()
	}
	if s.Attributes.Has(core.AttrReverse) {
		ts = ts.Reverse()
	}
	if s.Attributes.Has(core.AttrStrikethrough) {
		ts = ts.CrossOut()
	}
	return ts.Styled(text)
}

// color converts c for the sink's profile. It returns nil for the default
// color.
func (a *ANSI) color(c core.Color) termenv.Color {
	if c.IsDefault() {
		return nil
	}
	if c.Indexed {
		return a.profile.Color(strconv.Itoa(int(c.R)))
	}
	return a.profile.Color(c.ToHex())
}
