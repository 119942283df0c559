package mirrorconf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/0xalexb/mirrorconf/config"
	"github.com/0xalexb/mirrorconf/config/loader"
	"github.com/0xalexb/mirrorconf/logging"
	"github.com/0xalexb/mirrorconf/schema"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is the mirror service assembled with Fx. Its configuration is loaded once while the
// dependency graph is built.
type App struct {
	app    *fx.App
	config config.Cell[schema.Config]
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	app := &App{}
	app.app = configure(&options, app)

	return app
}

func configure(options *Options, app *App) *fx.App {
	output := options.LogOutput
	if output == nil {
		output = os.Stderr
	}

	level := new(slog.LevelVar)
	level.Set(logging.ParseLevel(options.LogLevel))

	logger := logging.NewLogger(level, output)
	slog.SetDefault(logger)

	var source fx.Option
	if options.Config != nil {
		source = fx.Supply(options.Config)
	} else {
		source = ConfigModule(configFile(options))
	}

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Provide(func() slog.Leveler { return level }),
		fx.Supply(logger),
		source,
		fx.Invoke(func(cfg *schema.Config) error {
			if options.LogLevel == "" {
				level.Set(cfg.Log.LogLevel.SlogLevel())
			}

			return app.store(cfg, logger.With(slog.String("source", configSource(options))))
		}),
		fx.Options(options.Modules...),
	)
}

func configSource(options *Options) string {
	if options.Config != nil {
		return "supplied"
	}

	return configFile(options)
}

func configFile(options *Options) string {
	if options.ConfigFile == "" {
		return DefaultConfigFile
	}

	return options.ConfigFile
}

func (app *App) store(cfg *schema.Config, logger *slog.Logger) error {
	err := app.config.Init(cfg)
	if err != nil {
		return fmt.Errorf("storing configuration: %w", err)
	}

	var dump bytes.Buffer

	_ = loader.MustCompile[schema.Config]().Dump(&dump, cfg)

	logger.Debug("config loaded",
		slog.Any("fields", strings.Split(strings.TrimSuffix(dump.String(), "\n"), "\n")),
	)

	return nil
}

// Err returns the error that prevented the application from being built, if any.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err() //nolint:wrapcheck // fx errors name the failing constructor
}

// Config returns the loaded configuration. It panics when the application failed to build.
func (app *App) Config() *schema.Config {
	return app.config.Get()
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Serve starts the application and blocks until an OS signal, a shutdown request or the end
// of ctx, then stops it. Unlike Run it returns start and stop failures to the caller.
func (app *App) Serve(ctx context.Context) error {
	err := app.Start()
	if err != nil {
		return err
	}

	select {
	case <-app.app.Wait():
	case <-ctx.Done():
	}

	return app.Stop()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Dump writes the loaded configuration as "key = value" lines.
func (app *App) Dump(w io.Writer) error {
	return loader.MustCompile[schema.Config]().Dump(w, app.Config()) //nolint:wrapcheck // Dump names the failing key
}
