package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a well-known table error category.
type ErrorCode string

const (
	ErrCodeInvalidHeaders ErrorCode = "INVALID_HEADERS"
	ErrCodeInvalidState   ErrorCode = "INVALID_STATE"
)

var (
	// ErrInvalidHeaders matches any TableError carrying ErrCodeInvalidHeaders.
	ErrInvalidHeaders = &TableError{Code: ErrCodeInvalidHeaders}
	// ErrInvalidState matches any TableError carrying ErrCodeInvalidState.
	ErrInvalidState = &TableError{Code: ErrCodeInvalidState}
)

// TableError is returned by table operations that reject their input or are
// called out of order.
type TableError struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// NewInvalidHeadersError constructs a TableError for rejected headers.
func NewInvalidHeadersError(message string, context map[string]any) error {
	return &TableError{Code: ErrCodeInvalidHeaders, Message: message, Context: context}
}

// NewInvalidStateError constructs a TableError for an out-of-order call.
func NewInvalidStateError(message string) error {
	return &TableError{Code: ErrCodeInvalidState, Message: message}
}

func (e *TableError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches other TableErrors by code so the package sentinels can be used
// with errors.Is.
func (e *TableError) Is(target error) bool {
	if e == nil {
		return false
	}
	var tableErr *TableError
	if !errors.As(target, &tableErr) || tableErr == nil {
		return false
	}
	return e.Code == tableErr.Code
}

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

// ValidationError captures document validation issues.
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
