package loader

import (
	"reflect"

	"github.com/0xalexb/mirrorconf/config/typed"
	"github.com/0xalexb/mirrorconf/config/value"
)

// Struct adapts a configuration struct to typed.Value, so it can sit inside typed.Option or
// typed.List. The struct is loaded against the node found at the field's key.
type Struct[T any] struct {
	Value T
}

// Load implements typed.Value.
func (s *Struct[T]) Load(node *value.Node, _, key string) error {
	schema, err := SchemaOf[T]()
	if err != nil {
		return err
	}

	var loaded T

	err = schema.LoadAt(node, &loaded, key)
	if err != nil {
		return err
	}

	s.Value = loaded

	return nil
}

// Describe implements typed.Value.
func (s *Struct[T]) Describe() (string, bool) {
	schema, err := SchemaOf[T]()
	if err != nil {
		return "", false
	}

	return schema.Render(&s.Value), true
}

// Check implements typed.Checker by compiling the schema of T within compile. A nil compile
// compiles T on its own.
func (*Struct[T]) Check(compile typed.CompileFunc) error {
	t := reflect.TypeFor[T]()
	if compile == nil {
		_, err := Compile(t)

		return err
	}

	return compile(t)
}
