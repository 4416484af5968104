package config

import (
	"fmt"
	"strings"

	"github.com/dshills/termfield/internal/field"
	"github.com/dshills/termfield/internal/input/key"
	"github.com/dshills/termfield/internal/logging"
	"github.com/dshills/termfield/internal/renderer/core"
)

// Config describes a form.
type Config struct {
	// LogLevel is a level name understood by logging.ParseLevel.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// Style is the color scheme shared by all fields.
	Style StyleConfig `toml:"style" yaml:"style"`

	// Fields are laid out top to bottom in this order.
	Fields []FieldConfig `toml:"fields" yaml:"fields"`
}

// FieldConfig describes one input field.
type FieldConfig struct {
	// Name identifies the field in the submitted output.
	Name string `toml:"name" yaml:"name"`

	// Width in cells. Zero uses the full terminal width.
	Width int `toml:"width" yaml:"width"`

	// Height in rows. Zero means 1, or 3 for a multiline field.
	Height int `toml:"height" yaml:"height"`

	// Value is the initial content.
	Value string `toml:"value" yaml:"value"`

	// Password masks the content on screen.
	Password bool `toml:"password" yaml:"password"`

	// Multiline allows line breaks to be typed.
	Multiline bool `toml:"multiline" yaml:"multiline"`

	// NewLineKeys are the keys inserting a line break in a multiline
	// field, like "Alt+Enter". Defaults to Alt+Enter.
	NewLineKeys []string `toml:"newline_keys" yaml:"newline_keys"`
}

// StyleConfig holds the colors of a form as strings accepted by
// core.ParseColor.
type StyleConfig struct {
	Foreground          string   `toml:"foreground" yaml:"foreground"`
	Background          string   `toml:"background" yaml:"background"`
	Attributes          []string `toml:"attributes" yaml:"attributes"`
	UnfocusedForeground string   `toml:"unfocused_foreground" yaml:"unfocused_foreground"`
	UnfocusedBackground string   `toml:"unfocused_background" yaml:"unfocused_background"`
	ScrollbarTrack      string   `toml:"scrollbar_track" yaml:"scrollbar_track"`
	ScrollbarThumb      string   `toml:"scrollbar_thumb" yaml:"scrollbar_thumb"`
}

// Styles are the resolved styles of a form.
type Styles struct {
	Focused   core.Style
	Unfocused core.Style
	Scrollbar field.ScrollbarStyle
}

// Default returns the built-in form: a user name, a password and a
// multiline comment.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Style: StyleConfig{
			UnfocusedForeground: "245",
		},
		Fields: []FieldConfig{
			{Name: "user", Width: 40},
			{Name: "password", Width: 40, Password: true},
			{Name: "comment", Height: 4, Multiline: true, NewLineKeys: []string{"Alt+Enter", "<C-j>"}},
		},
	}
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fieldError("log_level", err.Error(), c.LogLevel)
	}
	if _, err := c.Style.Resolve(); err != nil {
		return err
	}
	if len(c.Fields) == 0 {
		return fieldError("fields", "no field defined", nil)
	}

	seen := make(map[string]bool, len(c.Fields))
	for i, fc := range c.Fields {
		path := fmt.Sprintf("fields[%d]", i)
		name := strings.TrimSpace(fc.Name)
		switch {
		case name == "":
			return fieldError(path+".name", "empty name", fc.Name)
		case seen[name]:
			return fieldError(path+".name", "duplicate name", fc.Name)
		case fc.Width < 0:
			return fieldError(path+".width", "negative width", fc.Width)
		case fc.Height < 0:
			return fieldError(path+".height", "negative height", fc.Height)
		case !fc.Multiline && len(fc.NewLineKeys) > 0:
			return fieldError(path+".newline_keys", "newline keys on a single-line field", fc.NewLineKeys)
		}
		seen[name] = true
		if _, err := fc.parseKeys(path); err != nil {
			return err
		}
	}
	return nil
}

// Level returns the parsed log level, LevelInfo if it is not valid.
func (c *Config) Level() logging.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

// Field returns the configuration of the named field.
func (c *Config) Field(name string) (FieldConfig, bool) {
	for _, fc := range c.Fields {
		if fc.Name == name {
			return fc, true
		}
	}
	return FieldConfig{}, false
}

// Rows returns the height of the field in rows.
func (fc FieldConfig) Rows() int {
	switch {
	case fc.Height > 0:
		return fc.Height
	case fc.Multiline:
		return 3
	}
	return 1
}

// Keys returns the parsed newline keys. A single-line field has none.
func (fc FieldConfig) Keys() ([]key.Event, error) {
	return fc.parseKeys("newline_keys")
}

func (fc FieldConfig) parseKeys(path string) ([]key.Event, error) {
	if !fc.Multiline {
		return nil, nil
	}
	specs := fc.NewLineKeys
	if len(specs) == 0 {
		return []key.Event{field.AltEnter}, nil
	}
	keys := make([]key.Event, 0, len(specs))
	for j, spec := range specs {
		ev, err := key.Parse(spec)
		if err != nil {
			return nil, fieldError(fmt.Sprintf("%s.newline_keys[%d]", path, j), err.Error(), spec)
		}
		keys = append(keys, ev)
	}
	return keys, nil
}

// Apply configures f as described: password mode and newline keys. The
// content and area are left alone.
func (fc FieldConfig) Apply(f *field.Field) error {
	keys, err := fc.Keys()
	if err != nil {
		return err
	}
	fc.ApplyKeys(f, keys)
	return nil
}

// ApplyKeys is Apply with newline keys already returned by Keys.
func (fc FieldConfig) ApplyKeys(f *field.Field, keys []key.Event) {
	f.SetPasswordMode(fc.Password)
	f.SetMonoLine()
	for _, k := range keys {
		f.NewLineOn(k)
	}
}

// Resolve parses the colors and attributes.
func (s StyleConfig) Resolve() (Styles, error) {
	colors := []struct {
		path string
		spec string
	}{
		{"style.foreground", s.Foreground},
		{"style.background", s.Background},
		{"style.unfocused_foreground", s.UnfocusedForeground},
		{"style.unfocused_background", s.UnfocusedBackground},
		{"style.scrollbar_track", s.ScrollbarTrack},
		{"style.scrollbar_thumb", s.ScrollbarThumb},
	}
	parsed := make([]core.Color, len(colors))
	for i, c := range colors {
		color, err := core.ParseColor(c.spec)
		if err != nil {
			return Styles{}, styleError(c.path, err.Error(), c.spec)
		}
		parsed[i] = color
	}

	attrs := core.AttrNone
	for i, name := range s.Attributes {
		a, ok := core.AttributeFromName(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return Styles{}, styleError(fmt.Sprintf("style.attributes[%d]", i), "unknown attribute", name)
		}
		attrs = attrs.With(a)
	}

	styles := Styles{
		Focused: core.DefaultStyle().
			WithForeground(parsed[0]).
			WithBackground(parsed[1]).
			WithAttributes(attrs),
		Unfocused: core.DefaultStyle().
			WithForeground(parsed[2]).
			WithBackground(parsed[3]),
		Scrollbar: field.DefaultScrollbarStyle(),
	}
	if s.ScrollbarTrack != "" {
		styles.Scrollbar.Track.Style = styles.Scrollbar.Track.Style.WithForeground(parsed[4])
	}
	if s.ScrollbarThumb != "" {
		styles.Scrollbar.Thumb.Style = styles.Scrollbar.Thumb.Style.WithForeground(parsed[5])
	}
	return styles, nil
}
