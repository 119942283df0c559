package value

import (
	"errors"
	"strings"
)

// Separator delimits the segments of a key.
const Separator = "/"

// ErrNotFound is wrapped by a PathError when a key segment does not exist.
var ErrNotFound = errors.New("not found")

// ErrNotAnObject is wrapped by a PathError when a key walks through a non-object node.
var ErrNotAnObject = errors.New("is not an object")

// PathError reports where a key diverged from a document.
type PathError struct {
	// Prefix is the slash-joined part of the key consumed when the walk failed.
	Prefix string
	Err    error
}

func (e *PathError) Error() string {
	if e.Prefix == "" {
		return "document root " + e.Err.Error()
	}

	return e.Prefix + " " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Resolve returns the node at key below root. An empty key returns root itself.
func Resolve(root *Node, key string) (*Node, error) {
	if key == "" {
		return root, nil
	}

	segments := strings.Split(key, Separator)
	current := root

	for i, segment := range segments {
		if current.Kind() != KindObject {
			return nil, &PathError{Prefix: strings.Join(segments[:i], Separator), Err: ErrNotAnObject}
		}

		child, ok := current.fields[segment]
		if !ok {
			return nil, &PathError{Prefix: strings.Join(segments[:i+1], Separator), Err: ErrNotFound}
		}

		current = child
	}

	return current, nil
}

// JoinKey joins key segments with Separator, skipping empty ones.
func JoinKey(parts ...string) string {
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, Separator)
}
