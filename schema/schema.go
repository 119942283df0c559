package schema

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/0xalexb/mirrorconf/config/loader"
	"github.com/0xalexb/mirrorconf/config/typed"
)

// Defaults for fields the configuration file may omit.
const (
	DefaultHTTPAddress        = "0.0.0.0"
	DefaultHTTPPort           = 80
	DefaultRsyncExec          = "rsync"
	DefaultRsyncInterval      = 3600
	DefaultRsyncMaxConnection = 10
)

var (
	// ErrEmptyDataPath is returned when data_path is empty.
	ErrEmptyDataPath = errors.New("data_path must not be empty")
	// ErrNegativeLogDays is returned when log/max_log_days is negative.
	ErrNegativeLogDays = errors.New("max_log_days must not be negative")
	// ErrZeroInterval is returned when the rsync interval is zero.
	ErrZeroInterval = errors.New("rsync interval must be positive")
)

// LogConfig is the log section.
type LogConfig struct {
	LogPath    typed.Path  `config:"key = \"log_path\""`
	LogLevel   typed.Level `config:"key = \"log_level\""`
	MaxLogDays typed.Int32 `config:"key = \"max_log_days\""`
}

// ServiceConfig holds the account the service runs as.
type ServiceConfig struct {
	User  typed.User  `config:"key = \"user\""`
	Group typed.Group `config:"key = \"group\""`
}

// HTTPConfig is the HTTP server protocol section.
type HTTPConfig struct {
	Address typed.Option[typed.String] `config:"key = \"address\""`
	Port    typed.Option[typed.Uint16] `config:"key = \"port\""`
}

// ListenAddress returns address:port with defaults applied.
func (c HTTPConfig) ListenAddress() string {
	address := c.Address.GetOr(DefaultHTTPAddress)
	port := c.Port.GetOr(DefaultHTTPPort)

	return net.JoinHostPort(string(address), strconv.FormatUint(uint64(port), 10))
}

// RsyncConfig is the rsync client protocol section.
type RsyncConfig struct {
	Exec          typed.Option[typed.String] `config:"key = \"exec\""`
	Interval      typed.Option[typed.Uint32] `config:"key = \"interval\""`
	MaxConnection typed.Option[typed.Uint32] `config:"key = \"max_connection\""`
}

// Config is the mirror service configuration.
type Config struct {
	Service  ServiceConfig                            `config:"key = \"\""`
	PidFile  typed.Path                               `config:"key = \"pid_file\""`
	DataPath typed.Path                               `config:"key = \"data_path\""`
	Log      LogConfig                                `config:"key = \"log\""`
	HTTP     typed.Option[loader.Struct[HTTPConfig]]  `config:"key = \"server_protocols/http\""`
	Rsync    typed.Option[loader.Struct[RsyncConfig]] `config:"key = \"client_protocols/rsync\""`
	Distros  typed.Option[typed.List[typed.String]]   `config:"key = \"distros\""`
}

// SetDefaults implements config.Defaulter. Missing fields of present protocol sections are
// filled in; an absent rsync section is created with defaults.
func (c *Config) SetDefaults() bool {
	changed := false

	if section, ok := c.HTTP.Get(); ok {
		if section.Value.setDefaults() {
			c.HTTP = typed.Some(section)
			changed = true
		}
	}

	section, _ := c.Rsync.Get()
	if section.Value.setDefaults() {
		c.Rsync = typed.Some(section)
		changed = true
	}

	return changed
}

func (c *HTTPConfig) setDefaults() bool {
	changed := false

	if !c.Address.IsPresent() {
		c.Address = typed.Some(typed.String(DefaultHTTPAddress))
		changed = true
	}

	if !c.Port.IsPresent() {
		c.Port = typed.Some(typed.Uint16(DefaultHTTPPort))
		changed = true
	}

	return changed
}

func (c *RsyncConfig) setDefaults() bool {
	changed := false

	if !c.Exec.IsPresent() {
		c.Exec = typed.Some(typed.String(DefaultRsyncExec))
		changed = true
	}

	if !c.Interval.IsPresent() {
		c.Interval = typed.Some(typed.Uint32(DefaultRsyncInterval))
		changed = true
	}

	if !c.MaxConnection.IsPresent() {
		c.MaxConnection = typed.Some(typed.Uint32(DefaultRsyncMaxConnection))
		changed = true
	}

	return changed
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return ErrEmptyDataPath
	}

	if c.Log.MaxLogDays < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLogDays, c.Log.MaxLogDays)
	}

	if section, ok := c.Rsync.Get(); ok && section.Value.Interval.GetOr(DefaultRsyncInterval) == 0 {
		return ErrZeroInterval
	}

	return nil
}

// HTTPServer returns the HTTP section and whether the server protocol is enabled.
func (c *Config) HTTPServer() (HTTPConfig, bool) {
	section, ok := c.HTTP.Get()

	return section.Value, ok
}

// RsyncClient returns the rsync section, which is always present once defaults are applied.
func (c *Config) RsyncClient() RsyncConfig {
	section, _ := c.Rsync.Get()

	return section.Value
}

// DistroNames returns the configured distribution names.
func (c *Config) DistroNames() []string {
	distros, _ := c.Distros.Get()
	names := make([]string, len(distros))

	for i, name := range distros {
		names[i] = string(name)
	}

	return names
}
