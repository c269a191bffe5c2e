// farce is a UCI chess engine. It speaks the protocol on stdin and stdout
// and writes diagnostics to stderr or a log file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/farce-go/internal/config"
	"github.com/lgbarn/farce-go/internal/errors"
	"github.com/lgbarn/farce-go/internal/search"
	"github.com/lgbarn/farce-go/internal/uci"
	"github.com/lgbarn/farce-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("farce version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	os.Exit(run(cfg, os.Stdin, os.Stdout))
}

// run plays the engine side of a UCI session until end of input or "quit"
// and returns the process exit status.
func run(cfg *config.Config, in io.Reader, out io.Writer) int {
	logger := cfg.Logger()

	w := worker.New(search.NewGreedy(),
		worker.WithBufferSize(cfg.InboxSize),
		worker.WithLogger(logger),
		worker.WithCommentary(cfg.Verbosity >= config.Commentary),
	)
	w.Start()

	d := uci.NewDispatcher(w, out, cfg, uci.WithLogger(logger))
	err := d.Run(in)
	switch {
	case err == nil, errors.Is(err, errors.ErrQuit):
		return 0
	default:
		logger.Printf("%v", err)
		return 1
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: farce [options]\n\n")
	fmt.Fprintf(os.Stderr, "A UCI chess engine. Connect it to a GUI or type UCI commands on stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
