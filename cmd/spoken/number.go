package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/spoken"
)

func newNumberCmd(g *globals) *cobra.Command {
	var exact bool
	cmd := &cobra.Command{
		Use:   "number [words...]",
		Short: "Interpret a number written in words",
		Long: `Interpret the arguments together as one number, or each line of stdin if
there are no arguments.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return each(cmd, args, true, func(s string) (string, error) {
				r, err := spoken.InterpretRat(s)
				if err != nil {
					return "", err
				}
				if exact {
					return r.RatString(), nil
				}
				f, _ := r.Float64()
				return strconv.FormatFloat(f, 'g', -1, 64), nil
			})
		},
	}
	cmd.Flags().BoolVar(&exact, "exact", false, "print the exact integer or fraction")
	return cmd
}
