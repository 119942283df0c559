package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/mirrorconf/config/value"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrMultipleDocuments is returned when the input holds more than one YAML document.
var ErrMultipleDocuments = errors.New("multiple documents")

// ErrUnsupportedValue is returned for values with no document tree equivalent, such as
// non-string mapping keys or non-finite floats.
var ErrUnsupportedValue = errors.New("unsupported value")

// Parser implements config.DocumentParser for YAML data.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a single YAML document into a document tree. A document with no content
// yields a Null root.
func (p *Parser) Parse(data []byte) (*value.Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))

	var document any

	err := decoder.Decode(&document)
	if errors.Is(err, io.EOF) {
		return value.NewNull(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	var extra any

	err = decoder.Decode(&extra)
	if !errors.Is(err, io.EOF) {
		return nil, ErrMultipleDocuments
	}

	return convert(document)
}

//nolint:cyclop // one case per decoded Go type
func convert(decoded any) (*value.Node, error) {
	switch typed := decoded.(type) {
	case nil:
		return value.NewNull(), nil
	case bool:
		return value.NewBool(typed), nil
	case string:
		return value.NewString(typed), nil
	case int:
		return value.NewInt(int64(typed)), nil
	case int64:
		return value.NewInt(typed), nil
	case uint64:
		return value.NewUint(typed), nil
	case float64:
		return convertFloat(typed)
	case []any:
		return convertSequence(typed)
	case map[string]any:
		return convertMapping(typed)
	case map[any]any:
		return convertAnyMapping(typed)
	case yaml.MapSlice:
		return convertMapSlice(typed)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, decoded)
	}
}

func convertFloat(f float64) (*value.Node, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, f)
	}

	number, err := value.ParseNumber(strconv.FormatFloat(f, 'g', -1, 64))
	if err != nil {
		return nil, fmt.Errorf("float %v: %w", f, err)
	}

	return value.NewNumber(number), nil
}

func convertSequence(items []any) (*value.Node, error) {
	nodes := make([]*value.Node, len(items))

	for i, item := range items {
		node, err := convert(item)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}

		nodes[i] = node
	}

	return value.NewArray(nodes...), nil
}

func convertMapping(mapping map[string]any) (*value.Node, error) {
	fields := make(map[string]*value.Node, len(mapping))

	for key, item := range mapping {
		node, err := convert(item)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		fields[key] = node
	}

	return value.NewObject(fields), nil
}

func convertAnyMapping(mapping map[any]any) (*value.Node, error) {
	converted := make(map[string]any, len(mapping))

	for key, item := range mapping {
		name, ok := key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: mapping key %v", ErrUnsupportedValue, key)
		}

		converted[name] = item
	}

	return convertMapping(converted)
}

func convertMapSlice(mapping yaml.MapSlice) (*value.Node, error) {
	converted := make(map[any]any, len(mapping))

	for _, item := range mapping {
		converted[item.Key] = item.Value
	}

	return convertAnyMapping(converted)
}
