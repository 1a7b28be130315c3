package field

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidAccessor is returned when a name does not denote a direct, single
// scalar field read.
var ErrInvalidAccessor = errors.New("invalid field accessor")

// ConfigError describes a rejected field registration.
type ConfigError struct {
	// Type is the record type being configured.
	Type reflect.Type
	// Field is the offending field name as supplied by the caller.
	Field string
	// Reason explains why the name was rejected.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("field %q of %v: %s", e.Field, e.Type, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidAccessor.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidAccessor
}

func configErr(t reflect.Type, name, format string, args ...any) error {
	return &ConfigError{Type: t, Field: name, Reason: fmt.Sprintf(format, args...)}
}
