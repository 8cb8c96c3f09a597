package academic

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrDecode indicates that a response could not be decoded into entities.
	ErrDecode = errors.New("decode failed")

	// ErrSchema indicates a programming error in a static schema table.
	ErrSchema = errors.New("invalid schema")
)

// DecodeError reports that a parser required a structural field and it was
// absent or of the wrong shape. It carries the entity type being decoded and
// the offending field name.
type DecodeError struct {
	Entity string
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("decoding %s: field %q: %s", e.Entity, e.Field, e.Reason)
	}
	return fmt.Sprintf("decoding %s: missing required field %q", e.Entity, e.Field)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

// NewDecodeError creates a DecodeError for a missing required field.
func NewDecodeError(entity, field string) *DecodeError {
	return &DecodeError{Entity: entity, Field: field}
}

// newDecodeErrorf creates a DecodeError for a field of the wrong shape.
func newDecodeErrorf(entity, field, format string, args ...any) *DecodeError {
	return &DecodeError{Entity: entity, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// SchemaError reports an invalid static schema table, such as a duplicate
// wire code or order index. It is not expected during normal operation.
type SchemaError struct {
	Entity  string
	Message string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema %s: %s", e.Entity, e.Message)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *SchemaError) Unwrap() error {
	return ErrSchema
}
