package value

import (
	"slices"
	"strconv"
)

// Kind identifies the variant held by a Node.
type Kind int

// Node kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Node is a single value of a parsed document. The zero Node is Null.
type Node struct {
	kind    Kind
	boolean bool
	str     string
	number  Number
	items   []*Node
	fields  map[string]*Node
}

// NewNull returns a Null node.
func NewNull() *Node {
	return &Node{kind: KindNull}
}

// NewBool returns a Bool node.
func NewBool(v bool) *Node {
	return &Node{kind: KindBool, boolean: v}
}

// NewString returns a String node.
func NewString(v string) *Node {
	return &Node{kind: KindString, str: v}
}

// NewNumber returns a Number node.
func NewNumber(v Number) *Node {
	return &Node{kind: KindNumber, number: v}
}

// NewInt returns a Number node holding v.
func NewInt(v int64) *Node {
	return NewNumber(NumberFromInt64(v))
}

// NewUint returns a Number node holding v.
func NewUint(v uint64) *Node {
	return NewNumber(NumberFromUint64(v))
}

// NewArray returns an Array node holding items in order. Nil items are stored as Null.
func NewArray(items ...*Node) *Node {
	stored := make([]*Node, len(items))
	for i, item := range items {
		stored[i] = orNull(item)
	}

	return &Node{kind: KindArray, items: stored}
}

// NewObject returns an Object node holding a copy of fields. Nil values are stored as Null.
func NewObject(fields map[string]*Node) *Node {
	stored := make(map[string]*Node, len(fields))
	for name, field := range fields {
		stored[name] = orNull(field)
	}

	return &Node{kind: KindObject, fields: stored}
}

func orNull(n *Node) *Node {
	if n == nil {
		return NewNull()
	}

	return n
}

// Kind returns the variant of n. A nil node is Null.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}

	return n.kind
}

// IsNull reports whether n is Null.
func (n *Node) IsNull() bool {
	return n.Kind() == KindNull
}

// Bool returns the boolean held by a Bool node.
func (n *Node) Bool() (bool, bool) {
	if n.Kind() != KindBool {
		return false, false
	}

	return n.boolean, true
}

// Str returns the text held by a String node.
func (n *Node) Str() (string, bool) {
	if n.Kind() != KindString {
		return "", false
	}

	return n.str, true
}

// Number returns the number held by a Number node.
func (n *Node) Number() (Number, bool) {
	if n.Kind() != KindNumber {
		return Number{}, false
	}

	return n.number, true
}

// Items returns the elements of an Array node, or nil for any other kind.
// The returned slice must not be modified.
func (n *Node) Items() []*Node {
	if n.Kind() != KindArray {
		return nil
	}

	return n.items
}

// Field returns the named child of an Object node.
func (n *Node) Field(name string) (*Node, bool) {
	if n.Kind() != KindObject {
		return nil, false
	}

	child, ok := n.fields[name]

	return child, ok
}

// Keys returns the field names of an Object node in sorted order.
func (n *Node) Keys() []string {
	if n.Kind() != KindObject {
		return nil
	}

	keys := make([]string, 0, len(n.fields))
	for name := range n.fields {
		keys = append(keys, name)
	}

	slices.Sort(keys)

	return keys
}

// Len returns the number of elements of an Array or fields of an Object, and 0 otherwise.
func (n *Node) Len() int {
	switch n.Kind() {
	case KindArray:
		return len(n.items)
	case KindObject:
		return len(n.fields)
	default:
		return 0
	}
}
