package json

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/0xalexb/mirrorconf/config/value"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrInvalidDocument is returned for data that is not well-formed JSON.
var ErrInvalidDocument = errors.New("invalid JSON document")

// Parser implements config.DocumentParser for JSON data.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse validates data and converts it into a document tree.
func (p *Parser) Parse(data []byte) (*value.Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDocument
	}

	return convert(gjson.ParseBytes(data))
}

func convert(result gjson.Result) (*value.Node, error) {
	switch result.Type {
	case gjson.Null:
		return value.NewNull(), nil
	case gjson.False:
		return value.NewBool(false), nil
	case gjson.True:
		return value.NewBool(true), nil
	case gjson.String:
		return value.NewString(result.Str), nil
	case gjson.Number:
		number, err := value.ParseNumber(result.Raw)
		if err != nil {
			return nil, fmt.Errorf("number %s: %w", result.Raw, err)
		}

		return value.NewNumber(number), nil
	case gjson.JSON:
		if result.IsArray() {
			return convertArray(result)
		}

		return convertObject(result)
	default:
		return nil, fmt.Errorf("%w: unexpected token %q", ErrInvalidDocument, result.Raw)
	}
}

func convertArray(result gjson.Result) (*value.Node, error) {
	var (
		items []*value.Node
		err   error
	)

	result.ForEach(func(_, item gjson.Result) bool {
		var node *value.Node

		node, err = convert(item)
		if err != nil {
			return false
		}

		items = append(items, node)

		return true
	})

	if err != nil {
		return nil, err
	}

	return value.NewArray(items...), nil
}

func convertObject(result gjson.Result) (*value.Node, error) {
	var err error

	fields := make(map[string]*value.Node)

	result.ForEach(func(key, item gjson.Result) bool {
		var node *value.Node

		node, err = convert(item)
		if err != nil {
			err = fmt.Errorf("key %q: %w", key.Str, err)

			return false
		}

		fields[key.Str] = node

		return true
	})

	if err != nil {
		return nil, err
	}

	return value.NewObject(fields), nil
}
