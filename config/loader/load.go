package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/0xalexb/mirrorconf/config/typed"
	"github.com/0xalexb/mirrorconf/config/value"
	"github.com/0xalexb/mirrorconf/logging"
)

// LoadField resolves key against root and loads the node into out. fullKey names the field
// in error messages. A missing key is not an error when optional is set, and out is left as is.
func LoadField(out typed.Value, root *value.Node, key string, optional bool, typeName, fullKey string) error {
	node, err := value.Resolve(root, key)
	if err != nil {
		if optional {
			return nil
		}

		return err
	}

	return out.Load(node, typeName, fullKey)
}

// Load populates the struct target points to from root.
func (s *Schema) Load(root *value.Node, target any) error {
	return s.LoadAt(root, target, "")
}

// LoadAt is Load for a root found at prefix, which is prepended to keys in error messages.
// After a successful load every key of root that no field consumed is logged as a warning.
func (s *Schema) LoadAt(root *value.Node, target any, prefix string) error {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() || ptr.Elem().Type() != s.typ {
		return fmt.Errorf("%w: want *%s, got %T", ErrTargetType, TypeName(s.typ), target)
	}

	seen := newUsage()

	err := s.load(root, ptr.Elem(), prefix, "", seen)
	if err != nil {
		return err
	}

	seen.unknown(root, "", func(key string) {
		slog.Warn("unknown configuration key", slog.String("key", value.JoinKey(prefix, key)))
	})

	return nil
}

// load reads the fields of s from root. prefix is the full key of root for messages and
// base its key relative to the node the load started at.
func (s *Schema) load(root *value.Node, target reflect.Value, prefix, base string, seen *usage) error {
	for _, f := range s.fields {
		err := s.loadField(root, target.Field(f.index), f, prefix, base, seen)
		if err == nil {
			continue
		}

		var fieldErr *FieldError
		if errors.As(err, &fieldErr) {
			return err
		}

		return &FieldError{Struct: s.typ.Name(), Field: f.name, Key: value.JoinKey(prefix, f.binding.Key), Err: err}
	}

	return nil
}

func (s *Schema) loadField(root *value.Node, target reflect.Value, f field, prefix, base string, seen *usage) error {
	fullKey := value.JoinKey(prefix, f.binding.Key)
	relKey := value.JoinKey(base, f.binding.Key)

	if f.nested != nil {
		node, err := value.Resolve(root, f.binding.Key)
		if err != nil {
			return err
		}

		seen.enter(relKey)

		return f.nested.load(node, target, fullKey, relKey, seen)
	}

	out, ok := target.Addr().Interface().(typed.Value)
	if !ok {
		return fmt.Errorf("%w: %s", typed.ErrNotLoadable, f.typeName)
	}

	seen.consume(relKey)

	err := LoadField(out, root, f.binding.Key, f.binding.Optional, f.typeName, fullKey)
	if err != nil {
		return err
	}

	slog.Log(context.Background(), logging.LevelTrace, "field loaded",
		slog.String("key", fullKey),
		slog.String("field", s.typ.Name()+"."+f.name),
		slog.String("type", f.typeName),
	)

	return nil
}

// usage records which keys of a document a struct load reads. consumed keys are read whole.
// visited keys lead to consumed ones.
type usage struct {
	consumed map[string]bool
	visited  map[string]bool
}

func newUsage() *usage {
	return &usage{consumed: make(map[string]bool), visited: make(map[string]bool)}
}

func (u *usage) consume(key string) {
	u.consumed[key] = true
	u.enter(key)
}

// enter marks key and every key above it as visited.
func (u *usage) enter(key string) {
	for key != "" {
		u.visited[key] = true

		i := strings.LastIndex(key, value.Separator)
		if i < 0 {
			return
		}

		key = key[:i]
	}
}

// unknown reports, in sorted order, the keys below node that were neither consumed nor lead
// to a consumed key. rel is the key of node.
func (u *usage) unknown(node *value.Node, rel string, report func(key string)) {
	if u.consumed[rel] {
		return
	}

	for _, name := range node.Keys() {
		key := value.JoinKey(rel, name)

		switch {
		case u.consumed[key]:
		case u.visited[key]:
			child, _ := node.Field(name)
			u.unknown(child, key, report)
		default:
			report(key)
		}
	}
}

// Load compiles the schema of T and populates out from root.
func Load[T any](root *value.Node, out *T) error {
	schema, err := SchemaOf[T]()
	if err != nil {
		return err
	}

	return schema.Load(root, out)
}
