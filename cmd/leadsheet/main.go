// Package main provides the leadsheet CLI.
//
// Usage:
//
//	leadsheet [--key C] [--tempo 120] [--swing 0.55] [--seed N] [--json]
//
// It builds the same playback plan the API serves and prints it as a styled
// lead sheet, or as JSON with --json. Flag defaults come from DEFAULT_KEY,
// DEFAULT_TEMPO and DEFAULT_SWING.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
