package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dshills/termfield/internal/field"
)

// Value is the content of one field.
type Value struct {
	Name     string
	Text     string
	Password bool
}

// String formats the value as name=text. Password text is masked and text
// with line breaks or tabs is quoted.
func (v Value) String() string {
	text := v.Text
	switch {
	case v.Password:
		text = strings.Repeat(string(field.PasswordMask), utf8.RuneCountInString(text))
	case strings.ContainsAny(text, "\n\t"):
		text = strconv.Quote(text)
	}
	return v.Name + "=" + text
}

// Values returns the content of every field, in form order.
func (a *App) Values() []Value {
	values := make([]Value, len(a.fields))
	for i, f := range a.fields {
		values[i] = Value{
			Name:     a.cfg.Fields[i].Name,
			Text:     f.Content(),
			Password: f.PasswordMode(),
		}
	}
	return values
}

// WriteValues writes one name=text line per field.
func (a *App) WriteValues(w io.Writer) error {
	for _, v := range a.Values() {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
