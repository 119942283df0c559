package binding

import (
	"strconv"
	"unicode"
)

var closers = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

// Split splits a comma-separated argument list into its top-level arguments.
//
// Whitespace is skipped only before an argument starts. A bracket opens a scope copied
// verbatim up to the first matching closer of the same bracket type; other brackets inside it
// are not tracked. A scope left open at end of input fails with ErrIllegalArgument.
func Split(input string) ([]string, error) {
	var (
		ret    []string
		buffer []rune
	)

	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch closer, opens := closers[ch]; {
		case unicode.IsSpace(ch) && len(buffer) == 0:
			continue
		case ch == ',':
			ret = append(ret, string(buffer))
			buffer = buffer[:0]
		case opens:
			buffer = append(buffer, ch)

			closed := false

			for i++; i < len(runes); i++ {
				buffer = append(buffer, runes[i])
				if runes[i] == closer {
					closed = true

					break
				}
			}

			if !closed {
				return nil, &DefinitionError{
					Input:  input,
					Detail: strconv.Quote("(" + input + ")"),
					Err:    ErrIllegalArgument,
				}
			}
		default:
			buffer = append(buffer, ch)
		}
	}

	if len(buffer) > 0 {
		ret = append(ret, string(buffer))
	}

	return ret, nil
}
