package key

import "strings"

// Modifier is a set of modifier keys held during a key press.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	// ModMeta is Cmd on macOS and the Windows key elsewhere.
	ModMeta
)

// modifierNotation lists the modifiers in the order they are written, with
// their long name and their letter in <C-x> notation.
var modifierNotation = []struct {
	mod    Modifier
	name   string
	letter string
}{
	{ModCtrl, "Ctrl", "C"},
	{ModAlt, "Alt", "A"},
	{ModMeta, "Meta", "D"},
	{ModShift, "Shift", "S"},
}

// Has reports whether every modifier in mod is held.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod && mod != ModNone
}

func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsPlain reports whether at most Shift is held. A text input consumes
// plain presses and leaves the rest to the application.
func (m Modifier) IsPlain() bool {
	return m.Without(ModShift) == ModNone
}

// String joins the long names with '+', as in "Ctrl+Alt".
func (m Modifier) String() string {
	return strings.Join(m.names(false), "+")
}

// letters returns the <C-x> letters of m, in notation order.
func (m Modifier) letters() []string {
	return m.names(true)
}

func (m Modifier) names(letters bool) []string {
	var out []string
	for _, n := range modifierNotation {
		if !m.Has(n.mod) {
			continue
		}
		if letters {
			out = append(out, n.letter)
		} else {
			out = append(out, n.name)
		}
	}
	return out
}

var modifierAliases = map[string]Modifier{
	"c": ModCtrl, "ctrl": ModCtrl, "control": ModCtrl,
	"a": ModAlt, "alt": ModAlt, "option": ModAlt,
	"s": ModShift, "shift": ModShift,
	"d": ModMeta, "m": ModMeta, "meta": ModMeta, "cmd": ModMeta,
}

// ModifierFromName looks up a modifier by name or letter, ignoring case.
// It returns ModNone for anything else.
func ModifierFromName(name string) Modifier {
	return modifierAliases[strings.ToLower(strings.TrimSpace(name))]
}
