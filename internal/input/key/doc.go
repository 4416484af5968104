// Package key provides key event types and parsing for termfield input.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Code: A key without modifiers, as seen by an input field's dispatch table
//   - Event: A single key press with modifiers
//
// # Key Specifications
//
// Key specifications are used in configuration files to name keys such as
// the ones that insert a line break in a text area:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Alt+Enter", "Ctrl+J", "Ctrl+Shift+P"
//   - Vim-style: "<A-CR>", "<C-j>", "<S-Tab>", "<Esc>"
package key
