package config_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/mirrorconf/config"
	filefetcher "github.com/0xalexb/mirrorconf/config/fetcher/file"
	jsonparser "github.com/0xalexb/mirrorconf/config/parser/json"
	yamlparser "github.com/0xalexb/mirrorconf/config/parser/yaml"
	"github.com/0xalexb/mirrorconf/config/typed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// LogConfig represents the logging section of a configuration file.
type LogConfig struct {
	LogPath    typed.Path  `config:"key = \"log_path\""`
	LogLevel   typed.Level `config:"key = \"log_level\""`
	MaxLogDays typed.Int32 `config:"key = \"max_log_days\""`
}

// HTTPConfig represents an optional listener section.
type HTTPConfig struct {
	Address typed.Option[typed.String] `config:"key = \"address\""`
	Port    typed.Option[typed.Uint16] `config:"key = \"port\""`
}

// SetDefaults fills in the listener address and port.
func (c *HTTPConfig) SetDefaults() bool {
	changed := false

	if !c.Address.IsPresent() {
		c.Address = typed.Some(typed.String("localhost"))
		changed = true
	}

	if !c.Port.IsPresent() {
		c.Port = typed.Some(typed.Uint16(8080))
		changed = true
	}

	return changed
}

// Validate rejects a zero port.
func (c *HTTPConfig) Validate() error {
	if c.Port.GetOr(0) == 0 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

// StaticDataFetcher implements config.DataFetcher with static data.
// Useful for unit tests that don't need file I/O.
type StaticDataFetcher struct {
	Data []byte
}

// Fetch returns the static data.
func (f *StaticDataFetcher) Fetch() ([]byte, error) {
	return f.Data, nil
}

func ExampleProvider() {
	cfg := &HTTPConfig{}

	// An empty path loads from the document root.
	provider := config.Provider(cfg, "")

	fetcher := &StaticDataFetcher{Data: []byte(`{"address": "example.com"}`)}

	result, err := provider(jsonparser.NewParser(), fetcher)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Address: %s, Port: %d\n", result.Address.GetOr(""), result.Port.GetOr(0))
	// Output: Address: example.com, Port: 8080
}

func ExampleProvider_pathNavigation() {
	yamlData := []byte(`
server_protocols:
  http:
    address: mirror.example.com
    port: 3000
log:
  log_path: /var/log/mirror.log
  log_level: Debug
  max_log_days: 7
`)

	cfg := &HTTPConfig{}

	// Slash-delimited paths select a nested node.
	provider := config.Provider(cfg, "server_protocols/http")

	result, err := provider(yamlparser.NewParser(), &StaticDataFetcher{Data: yamlData})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Address: %s, Port: %d\n", result.Address.GetOr(""), result.Port.GetOr(0))
	// Output: Address: mirror.example.com, Port: 3000
}

func ExampleProvider_loadError() {
	provider := config.Provider(&LogConfig{}, "log")
	fetcher := &StaticDataFetcher{Data: []byte(`{"log": {"log_path": "/x", "log_level": "Verbose", "max_log_days": 1}}`)}

	_, err := provider(jsonparser.NewParser(), fetcher)
	fmt.Println(err)
	// Output: loading error: loading LogConfig.LogLevel (log/log_level): config "log/log_level" of type typed.Level: must be one of Trace, Debug, Info, Warn, Error, got "Verbose"
}

func TestProvider_FileFetcher(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "mirror.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{
		"log": {"log_path": "/var/log/mirror.log", "log_level": "Warn", "max_log_days": 30}
	}`), 0o600))

	fetcher, err := filefetcher.NewFetcher(configPath)()
	require.NoError(t, err)

	cfg, err := config.Provider(&LogConfig{}, "log")(jsonparser.NewParser(), fetcher)
	require.NoError(t, err)

	assert.Equal(t, typed.Path("/var/log/mirror.log"), cfg.LogPath)
	assert.Equal(t, typed.LevelWarn, cfg.LogLevel)
	assert.Equal(t, typed.Int32(30), cfg.MaxLogDays)
}

func TestProvider_ParsersAgree(t *testing.T) {
	t.Parallel()

	jsonData := []byte(`{"log": {"log_path": "/var/log/mirror.log", "log_level": "Error", "max_log_days": 3}}`)
	yamlData := []byte("log:\n  log_path: /var/log/mirror.log\n  log_level: Error\n  max_log_days: 3\n")

	fromJSON, err := config.Provider(&LogConfig{}, "log")(jsonparser.NewParser(), &StaticDataFetcher{Data: jsonData})
	require.NoError(t, err)

	fromYAML, err := config.Provider(&LogConfig{}, "log")(yamlparser.NewParser(), &StaticDataFetcher{Data: yamlData})
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
}
