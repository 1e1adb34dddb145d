// Package main provides the CLI entry point for vidcompare.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/vidcompare/pkg/adapters/logger"
	"github.com/user/vidcompare/pkg/config"
	"github.com/user/vidcompare/pkg/ports"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "vidcompare",
		Usage:   l10n.T("Compare two videos side by side or with a draggable divider"),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file")},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: l10n.T("Console log level (debug, info, warn, error)")},
			&cli.StringFlag{Name: "log-file", Usage: l10n.T("Diagnostic log file (default: video_compare.log)")},
			&cli.BoolFlag{Name: "no-log-file", Usage: l10n.T("Do not write the diagnostic log file")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: l10n.T("Suppress console log output")},
			&cli.StringFlag{Name: "ffmpeg", EnvVars: []string{"VIDCOMPARE_FFMPEG"}, Usage: l10n.T("Path to ffmpeg executable")},
			&cli.StringFlag{Name: "ffprobe", EnvVars: []string{"VIDCOMPARE_FFPROBE"}, Usage: l10n.T("Path to ffprobe executable")},
		},
		Commands: []*cli.Command{
			playCommand(),
			snapshotCommand(),
			probeCommand(),
		},
	}
}

// env holds what every command needs: the resolved configuration and the
// logger tree.
type env struct {
	cfg     config.Config
	log     ports.Logger
	closers []func() error
}

func newEnv(c *cli.Context) (*env, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if c.Bool("no-log-file") {
		cfg.LogFile = ""
	}
	if c.IsSet("ffmpeg") {
		cfg.FFmpegPath = c.String("ffmpeg")
	}
	if c.IsSet("ffprobe") {
		cfg.FFprobePath = c.String("ffprobe")
	}

	e := &env{cfg: cfg}

	var console ports.Logger
	if c.Bool("quiet") {
		console = logger.NewNoop()
	} else {
		console = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}
	e.log = console

	if cfg.LogFile != "" {
		file, err := logger.NewFile(cfg.LogFile, cfg.Level())
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		e.closers = append(e.closers, file.Close)
		e.log = logger.Tee(console, file)
	}

	return e, nil
}

// Close releases the log file.
func (e *env) Close() {
	for _, fn := range e.closers {
		_ = fn()
	}
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// videoArgs returns the first and optional second video path.
func videoArgs(c *cli.Context) (string, string, error) {
	switch c.NArg() {
	case 1:
		return c.Args().Get(0), "", nil
	case 2:
		return c.Args().Get(0), c.Args().Get(1), nil
	default:
		return "", "", cli.Exit(l10n.T("One or two video arguments are required"), 2)
	}
}

// clampRatio bounds a user-supplied divider ratio to the configured range.
func clampRatio(r float64, cfg config.Config) float64 {
	if r < cfg.Divider.MinRatio {
		return cfg.Divider.MinRatio
	}
	if r > cfg.Divider.MaxRatio {
		return cfg.Divider.MaxRatio
	}
	return r
}
