package typed

import (
	"fmt"

	"github.com/0xalexb/mirrorconf/config/value"
)

// Option is a field that may be absent. The zero Option is absent.
//
// Loading always materialises a present value: an explicit null in the document is handed to
// T and fails there. Absence only comes from the field's key being missing.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// GetOr returns the held value, or fallback when absent.
func (o Option[T]) GetOr(fallback T) T {
	if !o.present {
		return fallback
	}

	return o.value
}

// IsPresent implements Optional.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// Load implements Value by loading a fresh T and storing it as present.
func (o *Option[T]) Load(node *value.Node, typeName, key string) error {
	var v T

	loadable, ok := As(&v)
	if !ok {
		return &LoadError{
			TypeName: typeName,
			Key:      key,
			Reason:   fmt.Sprintf("%T does not implement typed.Value", v),
			Err:      ErrNotLoadable,
		}
	}

	err := loadable.Load(node, typeName, key)
	if err != nil {
		return err
	}

	o.value, o.present = v, true

	return nil
}

// Describe implements Value. An absent Option renders as None.
func (o *Option[T]) Describe() (string, bool) {
	if !o.present {
		return "None", true
	}

	loadable, ok := As(&o.value)
	if !ok {
		return "", false
	}

	return loadable.Describe()
}

// Check implements Checker.
func (*Option[T]) Check(compile CompileFunc) error {
	return check[T](compile)
}
