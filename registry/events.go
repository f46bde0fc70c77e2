package registry

import "github.com/tailored-agentic-units/registry/observability"

// Registry event types.
const (
	EventInsert    observability.EventType = "registry.insert"
	EventRemove    observability.EventType = "registry.remove"
	EventFind      observability.EventType = "registry.find"
	EventTeardown  observability.EventType = "registry.teardown"
	EventInvariant observability.EventType = "registry.invariant"
)
