package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/mirrorconf/config/loader"
	"github.com/0xalexb/mirrorconf/config/value"
)

// DocumentParser turns raw configuration data into a document tree.
type DocumentParser interface {
	Parse(data []byte) (*value.Node, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, parses, loads, sets defaults, and validates
// configuration data. path is a slash-delimited key selecting the node T is loaded from;
// empty loads from the document root.
func Provider[T any](target *T, path string) func(DocumentParser, DataFetcher) (*T, error) {
	return func(parser DocumentParser, dataSourcer DataFetcher) (*T, error) {
		schema, err := loader.SchemaOf[T]()
		if err != nil {
			return nil, fmt.Errorf("loading error: %w", err)
		}

		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		document, err := parser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		node, err := value.Resolve(document, path)
		if err != nil {
			return nil, fmt.Errorf("loading error: %w", err)
		}

		err = schema.LoadAt(node, target, path)
		if err != nil {
			return nil, fmt.Errorf("loading error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
