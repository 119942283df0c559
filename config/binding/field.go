package binding

import "errors"

// KeyKeyword is the keyword naming the document path of a field.
const KeyKeyword = "key"

// FieldBinding associates a struct field with the slash-delimited key of its value.
// An empty Key binds the field to the enclosing node itself.
type FieldBinding struct {
	Field    string
	Key      string
	Optional bool
}

// NewFieldBinding assembles the binding of field from its parsed arguments.
func NewFieldBinding(field string, args []Argument, optional bool) (FieldBinding, error) {
	var (
		key   string
		found bool
	)

	for _, arg := range args {
		if arg.Positional() {
			return FieldBinding{}, &DefinitionError{Field: field, Detail: arg.Value.String(), Err: ErrIllegalPosition}
		}

		if arg.Key != KeyKeyword {
			return FieldBinding{}, &DefinitionError{Field: field, Detail: arg.Key, Err: ErrIllegalKeyword}
		}

		if found {
			return FieldBinding{}, &DefinitionError{Field: field, Detail: KeyKeyword + " given twice", Err: ErrIllegalKeyword}
		}

		text, ok := arg.Value.Text()
		if !ok {
			return FieldBinding{}, &DefinitionError{
				Field:  field,
				Detail: KeyKeyword + " must be a string, got " + arg.Value.Kind().String(),
				Err:    ErrIllegalKeyword,
			}
		}

		key, found = text, true
	}

	if !found {
		return FieldBinding{}, &DefinitionError{Field: field, Detail: KeyKeyword, Err: ErrMissingKeyword}
	}

	return FieldBinding{Field: field, Key: key, Optional: optional}, nil
}

// Compile parses raw and assembles the binding of field in one step.
func Compile(field, raw string, optional bool) (FieldBinding, error) {
	args, err := Parse(raw)
	if err != nil {
		var defErr *DefinitionError
		if errors.As(err, &defErr) && defErr.Field == "" {
			defErr.Field = field
		}

		return FieldBinding{}, err
	}

	return NewFieldBinding(field, args, optional)
}

// String renders b as the argument list it was compiled from.
func (b FieldBinding) String() string {
	return "(" + KeyKeyword + ` = "` + b.Key + `")`
}
