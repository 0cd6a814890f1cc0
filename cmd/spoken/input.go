package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// each answers sentences with f, printing answers and errors in order. With
// arguments, each argument is a sentence, or all of them together are one if
// join is set. Without arguments, each nonblank line of stdin is a sentence,
// answered as soon as it is read. It returns errFailed if any input failed.
func each(cmd *cobra.Command, args []string, join bool, f func(s string) (string, error)) error {
	out := cmd.OutOrStdout()
	failed := false
	answer := func(s string) error {
		r, err := f(s)
		if err != nil {
			failed = true
			cmd.PrintErrln(err)
			return nil
		}
		_, err = io.WriteString(out, r+"\n")
		return err
	}
	switch {
	case len(args) > 0 && join:
		if err := answer(strings.Join(args, " ")); err != nil {
			return err
		}
	case len(args) > 0:
		for _, s := range args {
			if err := answer(s); err != nil {
				return err
			}
		}
	default:
		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			s := strings.TrimSpace(sc.Text())
			if s == "" {
				continue
			}
			if err := answer(s); err != nil {
				return err
			}
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}
	if failed {
		return errFailed
	}
	return nil
}
