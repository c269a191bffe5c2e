// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/farce-go/internal/config"
)

var (
	// Diagnostics
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	appendLog = flag.String("L", "", "Append diagnostics to this file")
	verbosity = flag.Int("v", config.ErrorsOnly, "Verbosity: 0=silent, 1=errors, 2=running commentary")

	// Engine behaviour
	inboxSize = flag.Int("inbox", 64, "Worker inbound queue capacity")
	debugMode = flag.Bool("debug", false, "Start with UCI debug mode on")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies flag values into cfg.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.InboxSize = *inboxSize
	cfg.Debug = *debugMode
}
