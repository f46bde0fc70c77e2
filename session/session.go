// Package session runs the interactive command loop over a registry.
//
// Commands are whitespace-delimited tokens: add, remove, print, find and end.
// Operands are read as the next tokens after their prompt, so a session can
// be driven by a terminal or by a scripted reader.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/tailored-agentic-units/registry/entry"
	"github.com/tailored-agentic-units/registry/observability"
	"github.com/tailored-agentic-units/registry/registry"
	"github.com/tailored-agentic-units/registry/snapshot"
)

const (
	promptCommand = "\nEnter the command (add, remove, print, find, end): "
	promptKey     = "Enter the key: "
	promptValue   = "Enter the value: "

	captionDictionary = "Dictionary"
	captionFind       = "Find"

	farewell = "----------------------------------------------------------\n" +
		"End of program.\n"

	maxTokenSize = 1 << 20
)

// Option configures a Session after config-driven initialization.
type Option func(*Session)

// WithRegistry overrides the config-created registry.
func WithRegistry(r *registry.Registry) Option {
	return func(s *Session) { s.registry = r }
}

// WithObserver overrides the observer named in the registry config.
func WithObserver(o observability.Observer) Option {
	return func(s *Session) { s.observer = o }
}

// Session owns one registry for the duration of an interactive loop.
type Session struct {
	id       string
	format   string
	quiet    bool
	registry *registry.Registry
	observer observability.Observer
	in       *bufio.Scanner
	out      io.Writer
}

// New creates a Session reading commands from in and writing to out. The
// registry and observer are built from cfg.Registry unless overridden.
func New(cfg *Config, in io.Reader, out io.Writer, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	obs, err := observability.GetObserver(cfg.Registry.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	s := &Session{
		id:       uuid.Must(uuid.NewV7()).String(),
		format:   cfg.Format,
		quiet:    cfg.Quiet,
		observer: obs,
		in:       scanner,
		out:      out,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.registry == nil {
		reg, err := registry.New(&cfg.Registry, registry.WithObserver(s.observer))
		if err != nil {
			return nil, fmt.Errorf("failed to create registry: %w", err)
		}
		s.registry = reg
	}

	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

// Registry returns the registry the session operates on.
func (s *Session) Registry() *registry.Registry {
	return s.registry
}

// Run processes commands until end, end of input, or cancellation of ctx.
// One command completes before the next token is read.
//
// An entry invariant violation aborts the loop and is returned wrapped; the
// caller is expected to terminate. End of input between commands behaves
// like end; end of input within a command returns ErrIncompleteCommand.
func (s *Session) Run(ctx context.Context) error {
	s.emit(ctx, EventStart, observability.LevelInfo, map[string]any{
		"registry_id": s.registry.ID(),
	})

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.prompt(promptCommand)
		command, ok := s.next()
		if !ok {
			if err := s.in.Err(); err != nil {
				return s.fail(ctx, fmt.Errorf("read command: %w", err))
			}
			s.finish(ctx)
			return nil
		}

		s.emit(ctx, EventCommand, observability.LevelVerbose, map[string]any{
			"command": command,
		})

		var err error
		switch command {
		case "add":
			err = s.add()
		case "remove":
			err = s.remove()
		case "print":
			err = s.print(captionDictionary, s.registry.List())
		case "find":
			err = s.find()
		case "end":
			s.finish(ctx)
			return nil
		default:
			s.emit(ctx, EventUnknownCommand, observability.LevelWarning, map[string]any{
				"command": command,
			})
			fmt.Fprint(s.out, "The command is not defined.\n")
		}
		if err != nil {
			return s.fail(ctx, fmt.Errorf("%s: %w", command, err))
		}
	}
}

func (s *Session) add() error {
	key, err := s.operand(promptKey)
	if err != nil {
		return err
	}
	val, err := s.operand(promptValue)
	if err != nil {
		return err
	}

	if _, err := s.registry.Insert(key, val); err != nil {
		return err
	}

	fmt.Fprint(s.out, "The key element has been added.\n")
	return nil
}

func (s *Session) remove() error {
	probe, err := s.operand(promptKey)
	if err != nil {
		return err
	}

	count := s.registry.RemoveByKey(probe)
	fmt.Fprintf(s.out, "Successfully deleted %d items.\n", count)
	return nil
}

func (s *Session) find() error {
	probe, err := s.operand(promptKey)
	if err != nil {
		return err
	}
	return s.print(captionFind, s.registry.Find(probe))
}

func (s *Session) print(caption string, entries []*entry.Entry) error {
	if s.format == FormatJSON {
		data, err := snapshot.MarshalJSON(entries)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s\n", data)
		return nil
	}

	fmt.Fprintf(s.out, "\n--- %s list: ---\n", caption)
	if len(entries) == 0 {
		fmt.Fprint(s.out, "No elements.\n")
	}
	for _, e := range entries {
		fmt.Fprintln(s.out, e.Render())
	}
	fmt.Fprintf(s.out, "--- End of %s list. ---\n", caption)
	return nil
}

func (s *Session) finish(ctx context.Context) {
	s.registry.Teardown()
	fmt.Fprint(s.out, farewell)
	s.emit(ctx, EventEnd, observability.LevelInfo, nil)
}

func (s *Session) fail(ctx context.Context, err error) error {
	s.emit(ctx, EventError, observability.LevelError, map[string]any{
		"error": err.Error(),
	})
	return err
}

func (s *Session) operand(prompt string) (string, error) {
	s.prompt(prompt)
	tok, ok := s.next()
	if !ok {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read operand: %w", err)
		}
		return "", ErrIncompleteCommand
	}
	return tok, nil
}

func (s *Session) next() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Session) prompt(text string) {
	if !s.quiet {
		fmt.Fprint(s.out, text)
	}
}

func (s *Session) emit(ctx context.Context, typ observability.EventType, level observability.Level, data map[string]any) {
	if data == nil {
		data = make(map[string]any, 1)
	}
	data["session_id"] = s.id
	s.observer.OnEvent(ctx, observability.NewEvent(typ, level, "session.Run", data))
}
