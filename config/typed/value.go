package typed

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/0xalexb/mirrorconf/config/value"
)

// ErrTypeMismatch is wrapped by a LoadError when a node is of the wrong kind.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrValueRange is wrapped by a LoadError when a node has the right kind but an unusable value.
var ErrValueRange = errors.New("value out of range")

// ErrNotLoadable is wrapped by a LoadError when a generic wrapper holds a type that does not
// implement Value.
var ErrNotLoadable = errors.New("type does not implement typed.Value")

// Value is implemented by every type a configuration field can hold.
type Value interface {
	// Load replaces the receiver with the value of node. typeName and key identify the field
	// in error messages.
	Load(node *value.Node, typeName, key string) error
	// Describe renders the value for diagnostics. It reports false when the type opts out.
	Describe() (string, bool)
}

// Optional is implemented by values whose field may be absent from a document.
type Optional interface {
	IsPresent() bool
}

// CompileFunc compiles a struct type reached through a wrapper during a schema compile.
type CompileFunc func(reflect.Type) error

// Checker is implemented by wrappers whose element type is only known through a type
// parameter. Check reports element types that cannot be loaded, so a schema can reject them
// before the first load. compile is handed down to nested checkers unchanged.
type Checker interface {
	Check(compile CompileFunc) error
}

// LoadError reports a node that could not be converted into a configuration value.
type LoadError struct {
	TypeName string
	Key      string
	Reason   string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("config %q of type %s: %s", e.Key, e.TypeName, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func mismatch(typeName, key, reason string) error {
	return &LoadError{TypeName: typeName, Key: key, Reason: reason, Err: ErrTypeMismatch}
}

func outOfRange(typeName, key, reason string) error {
	return &LoadError{TypeName: typeName, Key: key, Reason: reason, Err: ErrValueRange}
}

// As returns v as a Value if its pointer implements the contract.
func As[T any](v *T) (Value, bool) {
	loadable, ok := any(v).(Value)

	return loadable, ok
}

func check[T any](compile CompileFunc) error {
	var v T

	loadable, ok := As(&v)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotLoadable, v)
	}

	if checker, ok := loadable.(Checker); ok {
		return checker.Check(compile)
	}

	return nil
}
