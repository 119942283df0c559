package listener

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/0xalexb/mirrorconf/schema"
)

// NewModule creates an Fx module serving the mirror over HTTP. It needs *schema.Config in
// the graph and does nothing when the server_protocols/http section is absent. Options
// override the derived listener configuration.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name, fx.Invoke(
		func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, serviceCfg *schema.Config) error {
			listenerCfg, enabled := ConfigFrom(serviceCfg)
			if !enabled {
				slog.Info("HTTP server protocol not configured", "name", name)

				return nil
			}

			for _, apply := range opts {
				apply(&listenerCfg)
			}

			handler, err := NewMirrorHandler(listenerCfg.Root)
			if err != nil {
				return err
			}

			srv, err := NewServer(name, handler, listenerCfg, func() {
				shutdownErr := shutdowner.Shutdown()
				if shutdownErr != nil {
					slog.Error("failed to trigger shutdown", "name", name, "error", shutdownErr)
				}
			})
			if err != nil {
				return err
			}

			lifecycle.Append(fx.Hook{
				OnStart: srv.Start,
				OnStop:  srv.Stop,
			})

			return nil
		},
	))
}
