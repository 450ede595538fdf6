// ABOUTME: Entry point for overlay-demo, an interactive showcase of tooltips, busy indicators and windows
// ABOUTME: termfix is imported first so lipgloss never queries the terminal background

package main

import (
	"os"

	_ "github.com/mauromedda/tui-overlay/internal/termfix"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
