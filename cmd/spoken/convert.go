package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/spoken/units"
)

func newConvertCmd(g *globals) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "convert [sentence...]",
		Short: "Convert between units",
		Long: `Answer a conversion like "three miles to kilometers" or "how many feet in a
mile". The arguments together are one sentence; without arguments, each line
of stdin is one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := units.LoadFiles(g.cfg.Units...)
			if err != nil {
				return err
			}
			if list {
				for _, u := range tab.Units() {
					fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-12s %s\n", u.Name, u.Dimension, u.Plural)
				}
				return nil
			}
			return each(cmd, args, true, func(s string) (string, error) {
				c, err := tab.Convert(s)
				if err != nil {
					return "", err
				}
				return c.String(), nil
			})
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list known units")
	return cmd
}
