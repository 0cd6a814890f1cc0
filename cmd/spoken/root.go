package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zephyrtronium/spoken/internal/config"
)

// errFailed reports that some inputs had errors, which were already printed.
var errFailed = errors.New("some inputs could not be answered")

// globals are the settings shared by every subcommand.
type globals struct {
	configPath string
	prec       uint
	logLevel   string
	logFile    string

	cfg     config.Config
	log     *slog.Logger
	logSink io.Closer
}

func newRootCmd() *cobra.Command {
	g := new(globals)
	root := &cobra.Command{
		Use:   "spoken",
		Short: "Evaluate numbers and arithmetic written in words",
		Long: `spoken reads numbers, arithmetic, unit conversions, and dates written the
way a person would say them.

Examples:
  spoken eval "a hundred and twelve divided by eight"
  spoken eval --echo "log sin eleven hundred"
  spoken number twelve thousand and eleven and one third
  spoken convert how many feet in a mile
  spoken date next friday at five pm
  spoken serve --addr :8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return g.close()
		},
	}
	g.flags(root.PersistentFlags())
	root.AddCommand(
		newEvalCmd(g),
		newNumberCmd(g),
		newConvertCmd(g),
		newDateCmd(g),
		newServeCmd(g),
	)
	return root
}

func (g *globals) flags(fs *pflag.FlagSet) {
	fs.StringVar(&g.configPath, "config", "", "CUE configuration file")
	fs.UintVar(&g.prec, "prec", 0, "precision of calculations in bits (default from config, else 64)")
	fs.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, or error")
	fs.StringVar(&g.logFile, "log-file", "", "also write JSON logs to this file")
}

// setup loads the configuration, applies flags over it, and starts logging.
func (g *globals) setup(cmd *cobra.Command) error {
	var err error
	if g.configPath != "" {
		g.cfg, err = config.Load(g.configPath)
		if err != nil {
			return err
		}
	} else {
		g.cfg = config.Default()
	}
	fs := cmd.Flags()
	if fs.Changed("prec") {
		g.cfg.Precision = g.prec
	}
	if fs.Changed("log-level") {
		g.cfg.Log.Level = g.logLevel
	}
	if fs.Changed("log-file") {
		g.cfg.Log.File = g.logFile
	}
	if g.cfg.Precision < 2 {
		return fmt.Errorf("precision (%d) must be at least 2", g.cfg.Precision)
	}
	return g.startLog(cmd.ErrOrStderr())
}

// startLog creates a logger writing text to stderr and, if configured, JSON
// to a file.
func (g *globals) startLog(stderr io.Writer) error {
	level := g.cfg.Log.SlogLevel()
	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}
	if g.cfg.Log.File != "" {
		f, err := os.OpenFile(g.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		g.logSink = f
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}
	g.log = slog.New(slogmulti.Fanout(handlers...))
	g.log.Debug("configured", slog.Uint64("prec", uint64(g.cfg.Precision)), slog.String("config", g.configPath))
	return nil
}

func (g *globals) close() error {
	if g.logSink == nil {
		return nil
	}
	err := g.logSink.Close()
	g.logSink = nil
	return err
}
