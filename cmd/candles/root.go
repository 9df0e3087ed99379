package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/grindlemire/go-candlestick/internal/config"
	"github.com/grindlemire/go-candlestick/internal/debug"
	"github.com/grindlemire/go-candlestick/internal/source"
	"github.com/lmittmann/tint"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app carries the state shared by every command.
type app struct {
	fs      afero.Fs
	environ []string
	size    func() (cols, rows int)

	configPath string
	width      int
	height     int
	verbose    bool
	debugLog   string

	logger *slog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "candles",
		Short:         "Draw OHLC data as a terminal candlestick chart",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
			if a.debugLog != "" {
				if err := debug.Init(a.debugLog); err != nil {
					return fmt.Errorf("debug log: %w", err)
				}
			}
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return debug.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML chart config")
	flags.IntVar(&a.width, "width", 0, "chart width in cells (default: terminal width)")
	flags.IntVar(&a.height, "height", 0, "chart height in cells (default: terminal height)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log layout diagnostics to stderr")
	flags.StringVar(&a.debugLog, "debug-log", "", "append layout diagnostics to this file")

	root.AddCommand(
		newRenderCmd(a),
		newInspectCmd(a),
		newHitCmd(a),
		newVersionCmd(),
	)
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}))
}

// chartLogger is the logger handed to the chart. --debug-log redirects
// layout diagnostics to the debug file.
func (a *app) chartLogger() *slog.Logger {
	if a.debugLog != "" {
		return debug.Logger()
	}
	return a.logger
}

// load reads the config and the dataset it (or args) points at.
func (a *app) load(ctx context.Context, args []string) (*config.Config, *source.Dataset, error) {
	cfg, err := config.Load(a.fs, a.configPath, a.environ)
	if err != nil {
		return nil, nil, err
	}
	if len(args) > 0 {
		cfg.Data = args[0]
	}
	if a.width > 0 {
		cfg.Width = a.width
	}
	if a.height > 0 {
		cfg.Height = a.height
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		cols, rows := a.size()
		if cfg.Width == 0 {
			cfg.Width = cols
		}
		if cfg.Height == 0 {
			cfg.Height = rows
		}
	}
	if cfg.Data == "" {
		return nil, nil, errors.New("no data file: pass one as an argument or set data in the config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	ds, err := source.Load(ctx, a.fs, cfg.Data, cfg.Query)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("dataset loaded",
		"path", cfg.Data,
		"series", len(ds.Series),
		"labels", len(ds.Labels))
	return cfg, ds, nil
}

// plot loads everything and lays the chart out.
func (a *app) plot(ctx context.Context, args []string, reset bool) (*plot, error) {
	cfg, ds, err := a.load(ctx, args)
	if err != nil {
		return nil, err
	}
	p, err := buildChart(cfg, ds, a.chartLogger())
	if err != nil {
		return nil, err
	}
	if err := p.chart.Layout(reset); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return p, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "candles version %s\n", version)
		},
	}
}
