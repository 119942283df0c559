// Package config provides configuration management functionalities and interfaces.
//
// The package uses an interface-based design with four extension points:
//   - DocumentParser: turns raw data into a value.Node tree (JSON, YAML)
//   - DataFetcher: retrieves raw config data (file, static bytes, etc.)
//   - Defaulter: applies default values after loading
//   - Validator: validates config after defaults
//
// Loading itself is driven by the target's config struct tags, see config/loader.
//
// # Path Navigation
//
// The Provider function accepts a path selecting the node the target is loaded from. Paths
// are slash-delimited keys, the same syntax used by field bindings:
//
//	"log"                       -> config["log"]
//	"server_protocols/http"     -> config["server_protocols"]["http"]
//	""                          -> entire document
//
// Error messages carry full keys, so a field "port" loaded under "server_protocols/http" is
// reported as "server_protocols/http/port".
//
// # Example
//
// A typical usage pattern:
//
//	type LogConfig struct {
//	    LogPath  typed.Path  `config:"key = \"log_path\""`
//	    LogLevel typed.Level `config:"key = \"log_level\""`
//	}
//
//	provider := config.Provider(&LogConfig{}, "log")
//	fetcher, err := filefetcher.NewFetcher("/etc/mirror-server-conf.json")()
//	cfg, err := provider(jsonparser.NewParser(), fetcher)
//
// A process-wide configuration is usually kept in a Cell, initialised once at startup.
package config
