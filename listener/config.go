// Package listener serves the mirror data tree over the HTTP server protocol.
package listener

import (
	"errors"

	"github.com/0xalexb/mirrorconf/schema"
)

// DefaultAddress is the listen address when the configuration names none.
const DefaultAddress = schema.DefaultHTTPAddress + ":80"

// ErrEmptyAddress is returned when the address is empty.
var ErrEmptyAddress = errors.New("address must not be empty")

// ErrEmptyRoot is returned when no data directory is configured.
var ErrEmptyRoot = errors.New("data root must not be empty")

// ErrRootNotDirectory is returned when the data root is not a directory.
var ErrRootNotDirectory = errors.New("data root is not a directory")

// ErrListenFailed is returned when the server fails to listen on the configured address.
var ErrListenFailed = errors.New("failed to listen")

// ErrShutdownFailed is returned when the server fails to shut down gracefully.
var ErrShutdownFailed = errors.New("shutdown failed")

// ErrEmptyName is returned when the listener name is empty.
var ErrEmptyName = errors.New("listener name must not be empty")

// ErrNilHandler is returned when a nil http.Handler is provided.
var ErrNilHandler = errors.New("handler must not be nil")

// Config holds the configuration for the mirror HTTP listener.
type Config struct {
	Address string
	Root    string
}

// ConfigFrom derives the listener configuration from the service configuration. It reports
// false when the HTTP server protocol is not configured.
func ConfigFrom(cfg *schema.Config) (Config, bool) {
	section, enabled := cfg.HTTPServer()
	if !enabled {
		return Config{}, false
	}

	return Config{Address: section.ListenAddress(), Root: cfg.DataPath.String()}, true
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	if c.Root == "" {
		return ErrEmptyRoot
	}

	return nil
}
