// Package registry stores heterogeneous key/value entries in insertion order.
//
// Keys and values arrive as raw text and are typed by value.Infer. Removal
// and lookup compare a raw probe against each entry's rendered key text with
// a linear scan; duplicate keys are allowed.
//
//	reg, err := registry.New(&cfg)
//	_, err = reg.Insert("5", "10")
//	found := reg.Find("5") // one entry rendering "5: 10"
//
// A Registry is owned by a single session and is not safe for concurrent use.
package registry

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/tailored-agentic-units/registry/entry"
	"github.com/tailored-agentic-units/registry/observability"
	"github.com/tailored-agentic-units/registry/value"
)

// Option configures a Registry after config-driven initialization.
type Option func(*Registry)

// WithObserver overrides the observer named in the config.
func WithObserver(o observability.Observer) Option {
	return func(r *Registry) { r.observer = o }
}

// Registry is an ordered collection of owned entries.
type Registry struct {
	id       string
	entries  []*entry.Entry
	observer observability.Observer
}

// New creates an empty Registry with a fresh UUIDv7 identifier.
func New(cfg *Config, opts ...Option) (*Registry, error) {
	obs, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	r := &Registry{
		id:       uuid.Must(uuid.NewV7()).String(),
		entries:  make([]*entry.Entry, 0, max(cfg.Capacity, 0)),
		observer: obs,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func (r *Registry) ID() string {
	return r.id
}

// Len returns the number of stored entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Insert infers both values, builds the entry for their kinds and appends
// it. Inference never fails; the only error is an entry invariant violation,
// which wraps entry.ErrInvariant and must be treated as fatal.
func (r *Registry) Insert(rawKey, rawValue string) (*entry.Entry, error) {
	return r.Add(value.Infer(rawKey), value.Infer(rawValue))
}

// Add appends an entry built from already inferred values.
func (r *Registry) Add(key, val value.Value) (*entry.Entry, error) {
	e, err := entry.New(key, val)
	if err != nil {
		r.emit(EventInvariant, observability.LevelError, "registry.Add", map[string]any{
			"key_kind":   key.Kind().String(),
			"value_kind": val.Kind().String(),
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("insert: %w", err)
	}

	r.entries = append(r.entries, e)

	r.emit(EventInsert, observability.LevelVerbose, "registry.Add", map[string]any{
		"shape": e.Shape().String(),
		"size":  len(r.entries),
	})

	return e, nil
}

// RemoveByKey removes every entry whose key text equals probe and returns how
// many were removed. Relative order of the remaining entries is kept.
func (r *Registry) RemoveByKey(probe string) int {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if !e.Matches(probe) {
			kept = append(kept, e)
		}
	}
	removed := len(r.entries) - len(kept)
	clear(r.entries[len(kept):])
	r.entries = kept

	r.emit(EventRemove, observability.LevelVerbose, "registry.RemoveByKey", map[string]any{
		"removed": removed,
		"size":    len(r.entries),
	})

	return removed
}

// Find returns, in insertion order, every entry whose key text equals probe.
// The registry is not modified.
func (r *Registry) Find(probe string) []*entry.Entry {
	var found []*entry.Entry
	for _, e := range r.entries {
		if e.Matches(probe) {
			found = append(found, e)
		}
	}

	r.emit(EventFind, observability.LevelVerbose, "registry.Find", map[string]any{
		"found": len(found),
	})

	return found
}

// List returns all entries in insertion order. The returned slice is a copy;
// the entries themselves are shared and immutable.
func (r *Registry) List() []*entry.Entry {
	return slices.Clone(r.entries)
}

// Teardown releases every entry. The registry stays usable.
func (r *Registry) Teardown() {
	released := len(r.entries)
	clear(r.entries)
	r.entries = r.entries[:0]

	r.emit(EventTeardown, observability.LevelVerbose, "registry.Teardown", map[string]any{
		"released": released,
	})
}

func (r *Registry) emit(typ observability.EventType, level observability.Level, source string, data map[string]any) {
	data["registry_id"] = r.id
	r.observer.OnEvent(context.Background(), observability.NewEvent(typ, level, source, data))
}
