package mirrorconf

import (
	"path/filepath"
	"strings"

	"go.uber.org/fx"

	"github.com/0xalexb/mirrorconf/config"
	filefetcher "github.com/0xalexb/mirrorconf/config/fetcher/file"
	jsonparser "github.com/0xalexb/mirrorconf/config/parser/json"
	yamlparser "github.com/0xalexb/mirrorconf/config/parser/yaml"
	"github.com/0xalexb/mirrorconf/schema"
)

// ParserFor returns the document parser matching the extension of path.
//
//nolint:ireturn // the parser is chosen at runtime
func ParserFor(path string) config.DocumentParser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlparser.NewParser()
	default:
		return jsonparser.NewParser()
	}
}

// LoadConfig reads, loads, defaults and validates the service configuration at path.
func LoadConfig(path string) (*schema.Config, error) {
	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, err //nolint:wrapcheck // fetcher errors name the file
	}

	return config.Provider(new(schema.Config), "")(ParserFor(path), fetcher)
}

// ConfigModule provides *schema.Config loaded from path.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func ConfigModule(path string) fx.Option {
	return fx.Module("config",
		fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher(path),
				fx.As(new(config.DataFetcher)),
			),
		),
		fx.Provide(func() config.DocumentParser { return ParserFor(path) }),
		fx.Provide(config.Provider(new(schema.Config), "")),
	)
}
