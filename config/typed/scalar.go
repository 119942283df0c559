package typed

import (
	"strconv"

	"github.com/0xalexb/mirrorconf/config/value"
)

// Bool is a boolean field.
type Bool bool

// Load implements Value.
func (b *Bool) Load(node *value.Node, typeName, key string) error {
	v, ok := node.Bool()
	if !ok {
		return mismatch(typeName, key, "not boolean")
	}

	*b = Bool(v)

	return nil
}

// Describe implements Value.
func (b *Bool) Describe() (string, bool) {
	return strconv.FormatBool(bool(*b)), true
}

// String is a text field.
type String string

// Load implements Value.
func (s *String) Load(node *value.Node, typeName, key string) error {
	v, ok := node.Str()
	if !ok {
		return mismatch(typeName, key, "not a string")
	}

	*s = String(v)

	return nil
}

// Describe implements Value.
func (s *String) Describe() (string, bool) {
	return strconv.Quote(string(*s)), true
}

// Float64 is a floating point field. Any number node is accepted.
type Float64 float64

// Load implements Value.
func (f *Float64) Load(node *value.Node, typeName, key string) error {
	v, ok := node.Number()
	if !ok {
		return mismatch(typeName, key, "not a number")
	}

	*f = Float64(v.Float64())

	return nil
}

// Describe implements Value.
func (f *Float64) Describe() (string, bool) {
	return strconv.FormatFloat(float64(*f), 'g', -1, 64), true
}
