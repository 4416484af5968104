// Package main is the entry point for termfield, a terminal form of
// editable text fields.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/termfield/internal/app"
	"github.com/dshills/termfield/internal/config"
	"github.com/dshills/termfield/internal/logging"
	"github.com/dshills/termfield/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	configPath  string
	logLevel    string
	logFile     string
	showVersion bool
	showHelp    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showHelp {
		return 0
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "termfield %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg := config.Default()
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	level := cfg.Level()
	if opts.logLevel != "" {
		level, err = logging.ParseLevel(opts.logLevel)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v (must be debug, info, warn, or error)\n", err)
			return 1
		}
	}

	logger := logging.Discard()
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "Error: opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = logging.New(logging.Config{Level: level, Output: f})
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(term, app.Options{
		Config:     cfg,
		ConfigPath: opts.configPath,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// the terminal is restored, output goes to the shell
	if !application.Submitted() {
		return 1
	}
	if err := application.WriteValues(stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("termfield", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to a TOML or YAML form description")
	fs.StringVar(&opts.configPath, "c", "", "Path to a TOML or YAML form description (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&opts.showHelp, "help", false, "Show help message")
	fs.BoolVar(&opts.showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "termfield - fill in a form in the terminal\n\n")
		fmt.Fprintf(stderr, "Usage: termfield [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  Tab, Shift+Tab   move between fields\n")
		fmt.Fprintf(stderr, "  Alt+Enter        new line in a multiline field\n")
		fmt.Fprintf(stderr, "  Ctrl+S           submit and print name=value lines\n")
		fmt.Fprintf(stderr, "  Esc, Ctrl+C      cancel\n")
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  termfield                    Show the built-in form\n")
		fmt.Fprintf(stderr, "  termfield -c login.toml      Show a form from a file\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.showHelp {
		fs.Usage()
	}
	return opts, nil
}
