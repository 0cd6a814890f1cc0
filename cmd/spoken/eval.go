package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/spoken"
)

func newEvalCmd(g *globals) *cobra.Command {
	var (
		verb string
		echo bool
	)
	cmd := &cobra.Command{
		Use:   "eval [sentence...]",
		Short: "Evaluate arithmetic sentences",
		Long: `Evaluate each argument as an arithmetic sentence, or each line of stdin if
there are no arguments.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := spoken.NewContext(spoken.Prec(g.cfg.Precision))
			return each(cmd, args, false, func(s string) (string, error) {
				a, err := spoken.Parse(s)
				if err != nil {
					g.log.Debug("parse failed", slog.String("sentence", s), slog.Any("err", err))
					return "", err
				}
				r := ctx.Eval(a)
				if r == nil {
					return "", ctx.Err()
				}
				res := fmt.Sprintf(verb, r)
				if echo {
					res = a.String() + " : " + res
				}
				return res, nil
			})
		},
	}
	cmd.Flags().StringVar(&verb, "fmt", "%g", "result formatting verb")
	cmd.Flags().BoolVar(&echo, "echo", false, "print parse trees")
	return cmd
}
