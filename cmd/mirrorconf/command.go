package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/0xalexb/mirrorconf"
	"github.com/0xalexb/mirrorconf/config/loader"
	"github.com/0xalexb/mirrorconf/logging"
	"github.com/0xalexb/mirrorconf/schema"
)

const listenerName = "http"

func newCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "mirrorconf",
		Usage:   "check and serve a mirror service configuration",
		Version: mirrorconf.VersionString(),
		Writer:  stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "configuration file, .yaml/.yml for YAML, JSON otherwise",
				Value:   mirrorconf.DefaultConfigFile,
				Sources: cli.NewValueSourceChain(cli.EnvVar("MIRRORCONF_CONFIG")),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override log/log_level: trace, debug, info, warn, error",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "force colored output",
			},
		},
		Action: checkAction,
		Commands: []*cli.Command{
			{
				Name:   "check",
				Usage:  "load the configuration and print every field",
				Action: checkAction,
			},
			{
				Name:  "serve",
				Usage: "run the mirror service",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "log-stderr",
						Usage: "log to stderr instead of log/log_path",
					},
				},
				Action: serveAction,
			},
		},
	}
}

func checkAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := mirrorconf.LoadConfig(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("checking %s: %w", cmd.String("config"), err)
	}

	return printConfig(cmd.Root().Writer, os.Args, cfg, useColor(cmd))
}

func useColor(cmd *cli.Command) bool {
	if cmd.Bool("color") {
		return true
	}

	file, ok := cmd.Root().Writer.(*os.File)

	return ok && isatty.IsTerminal(file.Fd())
}

func printConfig(w io.Writer, args []string, cfg *schema.Config, colored bool) error {
	keyColor := color.New(color.FgCyan)
	valueColor := color.New(color.FgGreen)

	if colored {
		keyColor.EnableColor()
		valueColor.EnableColor()
	} else {
		keyColor.DisableColor()
		valueColor.DisableColor()
	}

	_, err := fmt.Fprintf(w, "%s %q\n", keyColor.Sprint("arguments:"), args)
	if err != nil {
		return fmt.Errorf("printing arguments: %w", err)
	}

	for _, entry := range loader.MustCompile[schema.Config]().Describe(cfg) {
		_, err = fmt.Fprintf(w, "%s = %s\n", keyColor.Sprint(entry.Key), valueColor.Sprint(entry.Value))
		if err != nil {
			return fmt.Errorf("printing %s: %w", entry.Key, err)
		}
	}

	return nil
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := mirrorconf.LoadConfig(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("loading %s: %w", cmd.String("config"), err)
	}

	output := io.Writer(os.Stderr)

	if !cmd.Bool("log-stderr") {
		file, openErr := logging.OpenFile(cfg.Log.LogPath.String())
		if openErr != nil {
			return openErr //nolint:wrapcheck // names the log file
		}

		defer func() { _ = file.Close() }()

		output = file
	}

	err = writePidFile(cfg.PidFile.String())
	if err != nil {
		return err
	}

	defer func() { _ = os.Remove(cfg.PidFile.String()) }()

	app := mirrorconf.NewApp(
		mirrorconf.WithConfig(cfg),
		mirrorconf.WithLogLevel(cmd.String("log-level")),
		mirrorconf.WithLogOutput(output),
		mirrorconf.WithHTTPListener(listenerName),
	)

	err = app.Err()
	if err != nil {
		return fmt.Errorf("building service: %w", err)
	}

	return app.Serve(ctx) //nolint:wrapcheck // start and stop errors name the failing hook
}

func writePidFile(path string) error {
	if path == "" {
		return nil
	}

	err := os.MkdirAll(filepath.Dir(path), 0o750)
	if err != nil {
		return fmt.Errorf("creating pid directory: %w", err)
	}

	err = os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())+"\n"), 0o644) //nolint:gosec // pid files are world readable
	if err != nil {
		return fmt.Errorf("writing pid file: %w", err)
	}

	return nil
}
