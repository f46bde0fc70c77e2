package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/tailored-agentic-units/registry/entry"
	"github.com/tailored-agentic-units/registry/observability"
	"github.com/tailored-agentic-units/registry/session"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, entry.ErrInvariant) {
			fmt.Fprintf(os.Stderr, "An error occurred during the execution of the program: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// run parses flags, builds the session and drives it until end of input or
// the end command.
func run(args []string, in io.Reader, out, errW io.Writer) error {
	fs := flag.NewFlagSet("registry", flag.ContinueOnError)
	fs.SetOutput(errW)

	var (
		configFile = fs.String("config", "", "Path to a JSON or YAML config file")
		format     = fs.String("format", "", "Listing format: text or json (overrides config)")
		quiet      = fs.Bool("quiet", false, "Suppress input prompts")
		verbose    = fs.Bool("verbose", false, "Log registry and session events to stderr")
		logFormat  = fs.String("log-format", "text", "Log format: text or json")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := session.DefaultConfig()
	if *configFile != "" {
		loaded, err := session.LoadConfig(*configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if *format != "" {
		cfg.Format = *format
	}
	if *quiet {
		cfg.Quiet = true
	}

	level := "info"
	if *verbose {
		level = "debug"
		cfg.Registry.Observer = "slog"
	}
	logger := newLogger(level, *logFormat, errW)
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

	s, err := session.New(&cfg, in, out)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return s.Run(ctx)
}

func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
