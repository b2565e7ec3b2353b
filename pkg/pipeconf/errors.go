package pipeconf

import (
	"fmt"
)

// OpenError indicates the configuration file could not be opened or read.
// No parsing is attempted when an OpenError is returned.
type OpenError struct {
	// Path is the file path that failed to open.
	Path string
	// Err is the underlying filesystem error.
	Err error
}

// Error implements the error interface.
func (e *OpenError) Error() string {
	return fmt.Sprintf("open config %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *OpenError) Unwrap() error {
	return e.Err
}

// ParseError indicates the input text is not a well-formed document.
type ParseError struct {
	// Format is the input format that failed to parse ("json" or "yaml").
	Format string
	// Offset is the byte offset of the syntax error, when the decoder
	// reports one; zero otherwise.
	Offset int64
	// Err is the decoder's diagnostic.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("parse %s config at offset %d: %v", e.Format, e.Offset, e.Err)
	}
	return fmt.Sprintf("parse %s config: %v", e.Format, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError indicates a recognized key held a value of the wrong shape
// (for example a string where an object was expected). The whole build fails
// atomically; no partially populated Config is returned.
type SchemaError struct {
	// Section is the top-level key whose construction failed.
	Section string
	// Err is the originating type mismatch, typically a *jsonmap.TypeError.
	Err error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("config section %q: %v", e.Section, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *SchemaError) Unwrap() error {
	return e.Err
}
