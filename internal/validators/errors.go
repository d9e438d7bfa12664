package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrUnknownField     = errors.New("unknown field for validation")
	ErrValidationFailed = errors.New("validation failed")
)

// FieldError describes one violated constraint. Field is the JSON name of
// the offending field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violated constraint of a validated value.
// It matches ErrValidationFailed with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
