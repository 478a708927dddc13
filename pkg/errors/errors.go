package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures panel definition validation issues. Field holds a
// dotted path into the definition document, e.g.
// "panels[0].transitions.items[2].to".
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PoolError indicates a panel could not be materialized from the pool.
type PoolError struct {
	PanelID string
	Message string
	Err     error
}

// NewPoolError constructs a PoolError for the given panel id.
func NewPoolError(panelID string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &PoolError{PanelID: panelID, Message: message, Err: err}
}

func (e *PoolError) Error() string {
	if e == nil {
		return ""
	}
	if e.PanelID != "" {
		return fmt.Sprintf("pool error [%s]: %s", e.PanelID, e.Message)
	}
	return fmt.Sprintf("pool error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *PoolError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
