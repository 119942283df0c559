package mirrorconf

import (
	"io"

	"go.uber.org/fx"

	"github.com/0xalexb/mirrorconf/listener"
	"github.com/0xalexb/mirrorconf/schema"
)

// DefaultConfigFile is read when no configuration file is given.
const DefaultConfigFile = "/etc/mirror-server-conf.json"

// Options holds configuration settings for the application.
type Options struct {
	Modules    []fx.Option
	LogLevel   string
	LogOutput  io.Writer
	ConfigFile string
	Config     *schema.Config
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithHTTPListener adds the mirror HTTP listener under name. It is started only when the
// configuration has a server_protocols/http section.
func WithHTTPListener(name string, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, listener.NewModule(name, opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "trace", "debug", "info", "warn", "error".
// When not set, the log/log_level of the loaded configuration applies.
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogOutput sets where logs are written. Defaults to stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// WithConfigFile sets the configuration file. Files ending in .yaml or .yml are parsed as
// YAML, anything else as JSON.
func WithConfigFile(path string) Option {
	return func(opts *Options) {
		opts.ConfigFile = path
	}
}

// WithConfig supplies an already loaded configuration instead of reading a file.
func WithConfig(cfg *schema.Config) Option {
	return func(opts *Options) {
		opts.Config = cfg
	}
}
