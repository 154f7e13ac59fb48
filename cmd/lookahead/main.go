// lookahead plays chess against a human or itself with fixed-depth look-ahead,
// and counts perft nodes for checking its move generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/lookahead-chess/internal/config"
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
		fmt.Printf("lookahead version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to perft counting or a game session.
func run(ctx context.Context, cfg *config.Config) error {
	if *perftDepth > 0 {
		return runPerft(cfg, *perftDepth, *verifyPerft)
	}
	if *verifyPerft {
		return runPerft(cfg, 1, true)
	}
	return runGame(ctx, cfg, os.Stdin, os.Stdout)
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

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(cfg.OutputFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(cfg.OutputFilename)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: lookahead [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess against a fixed-depth look-ahead engine.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands during a game:\n")
	fmt.Fprintf(os.Stderr, "  <move>  A move in short algebraic notation (e4, Nf3, exd5, O-O)\n")
	fmt.Fprintf(os.Stderr, "  undo    Take back your last move and the engine's reply\n")
	fmt.Fprintf(os.Stderr, "  board   Show the board\n")
	fmt.Fprintf(os.Stderr, "  fen     Show the position as FEN\n")
	fmt.Fprintf(os.Stderr, "  moves   List the legal moves\n")
	fmt.Fprintf(os.Stderr, "  quit    Stop and write the game record\n")
}
