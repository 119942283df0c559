package loader

import (
	"errors"
	"fmt"
)

// ErrNotStruct is returned when a schema is requested for a non-struct type.
var ErrNotStruct = errors.New("not a struct type")

// ErrUnexportedField is returned when a config tag is placed on an unexported field.
var ErrUnexportedField = errors.New("unexported field")

// ErrUnsupportedType is returned for a tagged field that is neither a typed.Value nor a struct.
var ErrUnsupportedType = errors.New("unsupported field type")

// ErrTargetType is returned when Load is given a target that is not a pointer to the schema type.
var ErrTargetType = errors.New("invalid load target")

// FieldError reports the field whose load failed.
type FieldError struct {
	Struct string
	Field  string
	Key    string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("loading %s.%s (%s): %v", e.Struct, e.Field, e.Key, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
