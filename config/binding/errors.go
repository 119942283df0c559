package binding

import "errors"

// ErrIllegalArgument is returned for an argument list that is not parenthesised or whose
// brackets do not balance.
var ErrIllegalArgument = errors.New("illegal argument")

// ErrUnsupportedFormat is returned for a literal that is neither an integer nor a quoted string.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrIllegalKeyword is returned for a keyword argument other than key, or a key of the wrong type.
var ErrIllegalKeyword = errors.New("illegal keyword argument")

// ErrIllegalPosition is returned for any positional argument.
var ErrIllegalPosition = errors.New("illegal position argument")

// ErrMissingKeyword is returned when a binding has no key argument.
var ErrMissingKeyword = errors.New("missing keyword argument")

// DefinitionError reports a malformed binding declaration. These are programming errors in a
// configuration type and are detected once, when its bindings are compiled.
type DefinitionError struct {
	// Field names the struct field carrying the binding; empty while parsing a bare list.
	Field  string
	Input  string
	Detail string
	Err    error
}

func (e *DefinitionError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += " " + e.Detail
	}

	if e.Field != "" {
		return "field " + e.Field + ": " + msg
	}

	return msg
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}
