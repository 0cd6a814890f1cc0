package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/spoken/dates"
)

func newDateCmd(g *globals) *cobra.Command {
	var layout, now string
	cmd := &cobra.Command{
		Use:   "date [sentence...]",
		Short: "Find the date and time a sentence refers to",
		Long: `Find the date and time in a sentence like "next friday at five pm". The
arguments together are one sentence; without arguments, each line of stdin is
one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r dates.Resolver
			if now != "" {
				t, err := time.Parse(time.RFC3339, now)
				if err != nil {
					return err
				}
				r.Now = func() time.Time { return t }
			}
			return each(cmd, args, true, func(s string) (string, error) {
				t, err := r.Resolve(s)
				if err != nil {
					return "", err
				}
				return t.Format(layout), nil
			})
		},
	}
	cmd.Flags().StringVar(&layout, "layout", "Monday, January 2, 2006 15:04", "time layout for output")
	cmd.Flags().StringVar(&now, "now", "", "RFC 3339 time to count relative dates from (default the current time)")
	return cmd
}
