package app

import (
	"github.com/dshills/termfield/internal/config"
	"github.com/dshills/termfield/internal/field"
	"github.com/dshills/termfield/internal/input/key"
	"github.com/dshills/termfield/internal/renderer/core"
)

// applyConfig rebuilds the form from cfg. Fields whose name is still
// present keep their content and cursor; the focus stays on the same field
// when it survives.
func (a *App) applyConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	styles, err := cfg.Style.Resolve()
	if err != nil {
		return err
	}

	old := make(map[string]*field.Field, len(a.fields))
	focusedName := ""
	for i, f := range a.fields {
		old[a.cfg.Fields[i].Name] = f
		if i == a.focus {
			focusedName = a.cfg.Fields[i].Name
		}
	}

	// nothing on screen changes until every field has been resolved
	type resolved struct {
		f    *field.Field
		fc   config.FieldConfig
		keys []key.Event
	}
	plan := make([]resolved, 0, len(cfg.Fields))
	focus := 0
	for i, fc := range cfg.Fields {
		keys, err := fc.Keys()
		if err != nil {
			return err
		}
		f, ok := old[fc.Name]
		if !ok {
			f = field.New(core.Area{})
			f.SetFocus(false)
			f.SetStr(fc.Value)
		}
		if fc.Name == focusedName {
			focus = i
		}
		plan = append(plan, resolved{f: f, fc: fc, keys: keys})
	}

	fields := make([]*field.Field, 0, len(plan))
	for _, r := range plan {
		r.f.SetNormalStyle(styles.Focused)
		r.f.SetUnfocusedStyle(styles.Unfocused)
		r.f.SetScrollbarStyle(styles.Scrollbar)
		r.fc.ApplyKeys(r.f, r.keys)
		fields = append(fields, r.f)
	}

	a.cfg = cfg
	a.styles = styles
	a.fields = fields
	a.setFocus(focus)
	a.log.Debug("config applied: %d fields, focus on %s", len(fields), cfg.Fields[focus].Name)
	return nil
}
