package observability

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrUnknownObserver is returned by GetObserver for unregistered names.
var ErrUnknownObserver = errors.New("unknown observer")

var (
	named = map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(slog.Default()),
	}
	namedMu sync.RWMutex
)

// GetObserver looks up an observer by name. "noop" and "slog" (backed by
// slog.Default at package init) are always present.
func GetObserver(name string) (Observer, error) {
	namedMu.RLock()
	defer namedMu.RUnlock()

	obs, ok := named[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObserver, name)
	}
	return obs, nil
}

// RegisterObserver adds or replaces a named observer.
func RegisterObserver(name string, observer Observer) {
	namedMu.Lock()
	defer namedMu.Unlock()
	named[name] = observer
}
