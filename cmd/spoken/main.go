// Command spoken evaluates numbers, arithmetic, unit conversions, and dates
// written in English words.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "spoken:", err)
		}
		os.Exit(1)
	}
}
