package typed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/0xalexb/mirrorconf/config/value"
)

// List is an array field whose elements are loaded as T. Element keys are <key>/<index>.
type List[T any] []T

// Load implements Value.
func (l *List[T]) Load(node *value.Node, typeName, key string) error {
	if node.Kind() != value.KindArray {
		return mismatch(typeName, key, "not an array")
	}

	items := node.Items()
	loaded := make(List[T], len(items))

	for i, item := range items {
		loadable, ok := As(&loaded[i])
		if !ok {
			return &LoadError{
				TypeName: typeName,
				Key:      key,
				Reason:   fmt.Sprintf("%T does not implement typed.Value", loaded[i]),
				Err:      ErrNotLoadable,
			}
		}

		err := loadable.Load(item, typeName, key+value.Separator+strconv.Itoa(i))
		if err != nil {
			return err
		}
	}

	*l = loaded

	return nil
}

// Describe implements Value.
func (l *List[T]) Describe() (string, bool) {
	parts := make([]string, 0, len(*l))

	for i := range *l {
		loadable, ok := As(&(*l)[i])
		if !ok {
			return "", false
		}

		text, ok := loadable.Describe()
		if !ok {
			return "", false
		}

		parts = append(parts, text)
	}

	return "[" + strings.Join(parts, ", ") + "]", true
}

// Check implements Checker.
func (*List[T]) Check(compile CompileFunc) error {
	return check[T](compile)
}
