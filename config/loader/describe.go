package loader

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/0xalexb/mirrorconf/config/typed"
	"github.com/0xalexb/mirrorconf/config/value"
)

// Entry is the rendered value of one leaf field.
type Entry struct {
	Key   string
	Field string
	Value string
}

// Describe lists the leaf values of the struct target points to, in declaration order, with
// full keys. Values whose type opts out of description are skipped.
func (s *Schema) Describe(target any) []Entry {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() || ptr.Elem().Type() != s.typ {
		return nil
	}

	return s.describe(ptr.Elem(), "", nil)
}

func (s *Schema) describe(target reflect.Value, prefix string, entries []Entry) []Entry {
	for _, f := range s.fields {
		fullKey := value.JoinKey(prefix, f.binding.Key)
		fieldValue := target.Field(f.index)

		if f.nested != nil {
			entries = f.nested.describe(fieldValue, fullKey, entries)

			continue
		}

		out, ok := fieldValue.Addr().Interface().(typed.Value)
		if !ok {
			continue
		}

		text, ok := out.Describe()
		if !ok {
			continue
		}

		entries = append(entries, Entry{Key: fullKey, Field: s.typ.Name() + "." + f.name, Value: text})
	}

	return entries
}

// Render formats the top-level fields of target as {key: value, ...}. Nested structs render
// recursively unless bound with an empty key.
func (s *Schema) Render(target any) string {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() || ptr.Elem().Type() != s.typ {
		return ""
	}

	return "{" + strings.Join(s.render(ptr.Elem(), nil), ", ") + "}"
}

// render appends the "key: value" parts of target. Structs bound with an empty key are
// flattened into the parts of their parent.
func (s *Schema) render(target reflect.Value, parts []string) []string {
	for _, f := range s.fields {
		fieldValue := target.Field(f.index)

		if f.nested != nil {
			if f.binding.Key == "" {
				parts = f.nested.render(fieldValue, parts)
			} else {
				parts = append(parts, f.binding.Key+": {"+strings.Join(f.nested.render(fieldValue, nil), ", ")+"}")
			}

			continue
		}

		out, ok := fieldValue.Addr().Interface().(typed.Value)
		if !ok {
			continue
		}

		if text, ok := out.Describe(); ok {
			parts = append(parts, f.binding.Key+": "+text)
		}
	}

	return parts
}

// Dump writes one "key = value" line per described entry of target.
func (s *Schema) Dump(w io.Writer, target any) error {
	for _, entry := range s.Describe(target) {
		_, err := fmt.Fprintf(w, "%s = %s\n", entry.Key, entry.Value)
		if err != nil {
			return fmt.Errorf("dumping %s: %w", entry.Key, err)
		}
	}

	return nil
}
