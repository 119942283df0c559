package binding

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	argumentListPattern = regexp.MustCompile(`^\((.*)\)$`)
	keywordPattern      = regexp.MustCompile(`^([_a-zA-Z][_0-9a-zA-Z]*)\s*=\s*(.*)$`)
)

// Argument is one parsed entry of an argument list. Key is empty for positional arguments.
type Argument struct {
	Key   string
	Value Literal
}

// Positional reports whether a has no keyword.
func (a Argument) Positional() bool {
	return a.Key == ""
}

// Parse parses a parenthesised argument list such as `(key = "log_path", 1)`.
// An empty list yields no arguments.
func Parse(raw string) ([]Argument, error) {
	if raw == "" {
		return nil, nil
	}

	match := argumentListPattern.FindStringSubmatch(raw)
	if match == nil {
		return nil, &DefinitionError{Input: raw, Detail: strconv.Quote(raw), Err: ErrIllegalArgument}
	}

	tokens, err := Split(match[1])
	if err != nil {
		return nil, err
	}

	args := make([]Argument, 0, len(tokens))

	for _, token := range tokens {
		key, rest := "", token
		if kv := keywordPattern.FindStringSubmatch(token); kv != nil {
			key, rest = kv[1], kv[2]
		}

		literal, err := ParseLiteral(strings.TrimSpace(rest))
		if err != nil {
			return nil, err
		}

		args = append(args, Argument{Key: key, Value: literal})
	}

	return args, nil
}
