package binding

import (
	"regexp"
	"strconv"
)

// LiteralKind tags the variant held by a Literal.
type LiteralKind int

// Literal kinds.
const (
	IntegerLiteral LiteralKind = iota + 1
	StringLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case IntegerLiteral:
		return "integer"
	case StringLiteral:
		return "string"
	default:
		return "invalid"
	}
}

var (
	integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
	stringPattern  = regexp.MustCompile(`^"(.*)"$`)
)

// Literal is a binding argument value: a signed 64-bit integer or a string.
type Literal struct {
	kind    LiteralKind
	integer int64
	text    string
}

// Integer returns an integer Literal.
func Integer(v int64) Literal {
	return Literal{kind: IntegerLiteral, integer: v}
}

// Str returns a string Literal.
func Str(v string) Literal {
	return Literal{kind: StringLiteral, text: v}
}

// Kind returns the variant of l.
func (l Literal) Kind() LiteralKind {
	return l.kind
}

// Int returns the value of an integer Literal.
func (l Literal) Int() (int64, bool) {
	return l.integer, l.kind == IntegerLiteral
}

// Text returns the value of a string Literal.
func (l Literal) Text() (string, bool) {
	return l.text, l.kind == StringLiteral
}

func (l Literal) String() string {
	switch l.kind {
	case IntegerLiteral:
		return strconv.FormatInt(l.integer, 10)
	case StringLiteral:
		return `"` + l.text + `"`
	default:
		return "<invalid>"
	}
}

// ParseLiteral parses a whole token as an integer literal, or failing that as a double-quoted
// string literal. The quoted text is taken verbatim; escapes are not processed.
func ParseLiteral(token string) (Literal, error) {
	if integerPattern.MatchString(token) {
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return Literal{}, &DefinitionError{
				Input:  token,
				Detail: strconv.Quote(token) + ": integer out of range",
				Err:    ErrUnsupportedFormat,
			}
		}

		return Integer(v), nil
	}

	if match := stringPattern.FindStringSubmatch(token); match != nil {
		return Str(match[1]), nil
	}

	return Literal{}, &DefinitionError{Input: token, Detail: strconv.Quote(token), Err: ErrUnsupportedFormat}
}
