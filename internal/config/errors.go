package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrUnsupportedFormat indicates a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalidField indicates a field description that cannot be built.
	ErrInvalidField = errors.New("invalid field")

	// ErrInvalidStyle indicates a color or attribute that cannot be parsed.
	ErrInvalidStyle = errors.New("invalid style")
)

// ParseError represents an error while decoding a configuration file.
type ParseError struct {
	// Path is the file that failed to parse, or "<input>" for Parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying decoder error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes a setting that decoded but is not usable.
// It matches ErrInvalidField or ErrInvalidStyle with errors.Is.
type ValidationError struct {
	// Path locates the setting, like "fields[2].newline_keys".
	Path string
	// Message describes the problem.
	Message string
	// Value is the offending value.
	Value any

	kind error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s: %s (value: %v)", e.kind, e.Path, e.Message, e.Value)
}

// Unwrap returns ErrInvalidField or ErrInvalidStyle.
func (e *ValidationError) Unwrap() error {
	return e.kind
}

func fieldError(path, msg string, value any) error {
	return &ValidationError{Path: path, Message: msg, Value: value, kind: ErrInvalidField}
}

func styleError(path, msg string, value any) error {
	return &ValidationError{Path: path, Message: msg, Value: value, kind: ErrInvalidStyle}
}
