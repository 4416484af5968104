// Package config loads the description of a termfield form.
//
// A form is a list of fields stacked vertically, a color scheme and a log
// level. It is read from a TOML or YAML file:
//
//	log_level = "debug"
//
//	[style]
//	background = "#1c1c1c"
//	unfocused_foreground = "244"
//
//	[[fields]]
//	name = "user"
//	width = 30
//
//	[[fields]]
//	name = "notes"
//	height = 4
//	multiline = true
//	newline_keys = ["Alt+Enter", "<C-j>"]
//
// Colors are hex values, palette indexes or "default". Newline keys use the
// key syntax of package key.
//
// A Watcher reloads the file when it changes on disk.
package config
