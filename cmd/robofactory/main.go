// Package main is the entry point for robofactory.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/robofactory/internal/app"
	"github.com/dshills/robofactory/internal/config"
	"github.com/dshills/robofactory/internal/game"
	"github.com/dshills/robofactory/internal/input/keymap"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// options holds the command-line flags. Flags left unset fall back to the
// config file.
type options struct {
	configPath   string
	bindingsPath string
	logLevel     string
	logFile      string
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "robofactory",
		Short: "Move a dot around the terminal with rebindable keys",
		Long: `robofactory is a small terminal game built around a rebindable input map.

Keys are bound to named actions. Select an action in the bindings panel with
Tab and Shift+Tab, press Enter, then press the new key: a tap binds it on
press, holding it binds the held key, holding it longer binds the release.

Examples:
  robofactory                          # Play with the built-in bindings
  robofactory -b bindings.yaml         # Load and watch a bindings file
  robofactory bindings                 # Print the bindings list
  robofactory bindings -f toml         # Write the bindings as a TOML file`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGame(cmd, opts)
		},
	}
	root.SetVersionTemplate(versionString() + "\n")

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	root.PersistentFlags().StringVarP(&opts.bindingsPath, "bindings", "b", "", "Path to a bindings file (toml, yaml or json)")
	root.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file")

	root.AddCommand(newBindingsCmd(&opts))
	root.AddCommand(newVersionCmd())
	return root
}

func newBindingsCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "Print every action and the key bound to it",
		Long: `Print every action and the key bound to it.

With --format the bindings are written as a bindings file instead, ready
to be edited and passed back with --bindings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *opts)
			if err != nil {
				return err
			}
			if format != "" {
				return exportBindings(cmd.OutOrStdout(), cfg.Bindings.File, keymap.Format(format))
			}
			return printBindings(cmd.OutOrStdout(), cfg.Bindings.File)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Write a bindings file in this format (toml, yaml or json)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}

func versionString() string {
	return fmt.Sprintf("robofactory %s (commit %s, built %s)", version, commit, date)
}

// loadConfig reads the config files and applies the flags the user set.
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("bindings") {
		cfg.Bindings.File = opts.bindingsPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printBindings(w io.Writer, path string) error {
	m, err := game.NewMapper(path)
	if err != nil {
		return err
	}
	for chord, action := range m.All() {
		if _, err := fmt.Fprintf(w, "Bound: %s to %s\n", action, chord); err != nil {
			return err
		}
	}
	return nil
}

func exportBindings(w io.Writer, path string, format keymap.Format) error {
	m, err := game.NewMapper(path)
	if err != nil {
		return err
	}
	return keymap.Save(w, format, m.Defaults())
}

func runGame(cmd *cobra.Command, opts options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	application, err := app.New(app.Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}

	logger.Info("starting", "version", version, "tick_rate", cfg.Input.TickRate, "bindings", cfg.Bindings.File)
	return application.Run(cmd.Context())
}

// newLogger builds the application logger. The terminal belongs to the game
// screen, so logs only go to a file; with no file they are discarded.
func newLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if cfg.File == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}
