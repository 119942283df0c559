package typed

import (
	"strconv"

	"github.com/0xalexb/mirrorconf/config/value"
)

type signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func loadSigned[T signed](dst *T, node *value.Node, typeName, key string) error {
	number, ok := node.Number()
	if !ok {
		return mismatch(typeName, key, "not a number")
	}

	v, ok := number.FixedPointInt64(0)
	if !ok {
		return outOfRange(typeName, key, "not an integer: "+number.String())
	}

	*dst = T(v)

	return nil
}

func loadUnsigned[T unsigned](dst *T, node *value.Node, typeName, key string) error {
	number, ok := node.Number()
	if !ok {
		return mismatch(typeName, key, "not a number")
	}

	v, ok := number.FixedPointUint64(0)
	if !ok {
		return outOfRange(typeName, key, "not unsigned: "+number.String())
	}

	*dst = T(v)

	return nil
}

// Int8 is a signed 8-bit field.
type Int8 int8

// Int16 is a signed 16-bit field.
type Int16 int16

// Int32 is a signed 32-bit field.
type Int32 int32

// Int64 is a signed 64-bit field.
type Int64 int64

// Uint8 is an unsigned 8-bit field.
type Uint8 uint8

// Uint16 is an unsigned 16-bit field.
type Uint16 uint16

// Uint32 is an unsigned 32-bit field.
type Uint32 uint32

// Uint64 is an unsigned 64-bit field.
type Uint64 uint64

func (v *Int8) Load(node *value.Node, typeName, key string) error {
	return loadSigned(v, node, typeName, key)
}

func (v *Int8) Describe() (string, bool) { return strconv.FormatInt(int64(*v), 10), true }

func (v *Int16) Load(node *value.Node, typeName, key string) error {
	return loadSigned(v, node, typeName, key)
}

func (v *Int16) Describe() (string, bool) { return strconv.FormatInt(int64(*v), 10), true }

func (v *Int32) Load(node *value.Node, typeName, key string) error {
	return loadSigned(v, node, typeName, key)
}

func (v *Int32) Describe() (string, bool) { return strconv.FormatInt(int64(*v), 10), true }

func (v *Int64) Load(node *value.Node, typeName, key string) error {
	return loadSigned(v, node, typeName, key)
}

func (v *Int64) Describe() (string, bool) { return strconv.FormatInt(int64(*v), 10), true }

func (v *Uint8) Load(node *value.Node, typeName, key string) error {
	return loadUnsigned(v, node, typeName, key)
}

func (v *Uint8) Describe() (string, bool) { return strconv.FormatUint(uint64(*v), 10), true }

func (v *Uint16) Load(node *value.Node, typeName, key string) error {
	return loadUnsigned(v, node, typeName, key)
}

func (v *Uint16) Describe() (string, bool) { return strconv.FormatUint(uint64(*v), 10), true }

func (v *Uint32) Load(node *value.Node, typeName, key string) error {
	return loadUnsigned(v, node, typeName, key)
}

func (v *Uint32) Describe() (string, bool) { return strconv.FormatUint(uint64(*v), 10), true }

func (v *Uint64) Load(node *value.Node, typeName, key string) error {
	return loadUnsigned(v, node, typeName, key)
}

func (v *Uint64) Describe() (string, bool) { return strconv.FormatUint(uint64(*v), 10), true }
