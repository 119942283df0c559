package loader

import (
	"errors"
	"reflect"
	"regexp"
	"sync"

	"github.com/0xalexb/mirrorconf/config/binding"
	"github.com/0xalexb/mirrorconf/config/typed"
)

// TagName is the struct tag holding a field binding.
const TagName = "config"

var (
	valueType    = reflect.TypeFor[typed.Value]()
	optionalType = reflect.TypeFor[typed.Optional]()
	packagePath  = regexp.MustCompile(`[\w.-]+/`)

	//nolint:gochecknoglobals // schema cache keyed by struct type
	schemas sync.Map
)

type field struct {
	binding  binding.FieldBinding
	index    int
	name     string
	typeName string
	nested   *Schema
}

// Schema is the compiled list of field bindings of a struct type.
type Schema struct {
	typ    reflect.Type
	fields []field
}

// compilation holds the struct types reached by one Compile call. A type reached again while
// it is still being compiled resolves to its partial schema, so self-referencing types
// terminate. Results are cached only when the whole compile succeeds.
type compilation struct {
	visiting map[reflect.Type]*Schema
	done     []*Schema
}

// Compile returns the schema of struct type t, compiling and caching it on first use.
// Malformed bindings are reported as *binding.DefinitionError.
func Compile(t reflect.Type) (*Schema, error) {
	if cached, ok := schemas.Load(t); ok {
		return cached.(*Schema), nil //nolint:forcetypeassert // only *Schema is stored
	}

	c := &compilation{visiting: make(map[reflect.Type]*Schema)}

	_, err := c.compile(t)
	if err != nil {
		return nil, err
	}

	for _, schema := range c.done {
		schemas.LoadOrStore(schema.typ, schema)
	}

	actual, _ := schemas.Load(t)

	return actual.(*Schema), nil //nolint:forcetypeassert // only *Schema is stored
}

// SchemaOf returns the schema of T.
func SchemaOf[T any]() (*Schema, error) {
	return Compile(reflect.TypeFor[T]())
}

// MustCompile returns the schema of T and panics on a malformed binding.
func MustCompile[T any]() *Schema {
	schema, err := SchemaOf[T]()
	if err != nil {
		panic(err)
	}

	return schema
}

func (c *compilation) compile(t reflect.Type) (*Schema, error) {
	if cached, ok := schemas.Load(t); ok {
		return cached.(*Schema), nil //nolint:forcetypeassert // only *Schema is stored
	}

	if partial, ok := c.visiting[t]; ok {
		return partial, nil
	}

	if t.Kind() != reflect.Struct {
		return nil, &binding.DefinitionError{Input: t.String(), Detail: t.String(), Err: ErrNotStruct}
	}

	schema := &Schema{typ: t}
	c.visiting[t] = schema

	for i := range t.NumField() {
		structField := t.Field(i)

		tag, tagged := structField.Tag.Lookup(TagName)
		if !tagged {
			continue
		}

		compiled, err := c.compileField(t, structField, i, tag)
		if err != nil {
			return nil, err
		}

		schema.fields = append(schema.fields, compiled)
	}

	c.done = append(c.done, schema)

	return schema, nil
}

func (c *compilation) check(t reflect.Type) error {
	_, err := c.compile(t)

	return err
}

func (c *compilation) compileField(owner reflect.Type, structField reflect.StructField, index int, tag string) (field, error) {
	qualified := owner.Name() + "." + structField.Name

	if !structField.IsExported() {
		return field{}, &binding.DefinitionError{Field: qualified, Err: ErrUnexportedField}
	}

	raw := ""
	if tag != "" {
		raw = "(" + tag + ")"
	}

	ptrType := reflect.PointerTo(structField.Type)
	optional := ptrType.Implements(optionalType)

	fieldBinding, err := binding.Compile(qualified, raw, optional)
	if err != nil {
		return field{}, err
	}

	compiled := field{
		binding:  fieldBinding,
		index:    index,
		name:     structField.Name,
		typeName: TypeName(structField.Type),
	}

	switch {
	case ptrType.Implements(valueType):
		err = c.checkValue(ptrType)
	case structField.Type.Kind() == reflect.Struct:
		compiled.nested, err = c.compile(structField.Type)
	default:
		err = ErrUnsupportedType
	}

	var defErr *binding.DefinitionError
	if errors.As(err, &defErr) {
		return field{}, err
	}

	if err != nil {
		return field{}, &binding.DefinitionError{Field: qualified, Detail: compiled.typeName, Err: err}
	}

	return compiled, nil
}

func (c *compilation) checkValue(ptrType reflect.Type) error {
	checker, ok := reflect.New(ptrType.Elem()).Interface().(typed.Checker)
	if !ok {
		return nil
	}

	return checker.Check(c.check)
}

// TypeName renders t without package import paths, e.g. typed.Option[typed.Int32].
func TypeName(t reflect.Type) string {
	return packagePath.ReplaceAllString(t.String(), "")
}

// Type returns the struct type described by s.
func (s *Schema) Type() reflect.Type {
	return s.typ
}

// Bindings returns the field bindings of s in declaration order.
func (s *Schema) Bindings() []binding.FieldBinding {
	bindings := make([]binding.FieldBinding, len(s.fields))
	for i, f := range s.fields {
		bindings[i] = f.binding
	}

	return bindings
}
