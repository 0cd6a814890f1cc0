package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/spoken/internal/server"
	"github.com/zephyrtronium/spoken/units"
)

func newServeCmd(g *globals) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer queries over HTTP",
		Long: `Serve GET /v1/evaluate, /v1/number, /v1/convert, and /v1/date, each taking
the sentence in the q parameter, along with /healthz and /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				g.cfg.Server.Addr = addr
			}
			tab, err := units.LoadFiles(g.cfg.Units...)
			if err != nil {
				return err
			}
			s, err := server.New(server.Options{
				Prec:      g.cfg.Precision,
				CacheSize: g.cfg.CacheSize,
				Units:     tab,
				Logger:    g.log,
			})
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return s.Run(ctx, g.cfg.Server.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on (default from config, else :8080)")
	return cmd
}
