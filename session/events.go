package session

import "github.com/tailored-agentic-units/registry/observability"

// Session event types.
const (
	EventStart          observability.EventType = "session.start"
	EventCommand        observability.EventType = "session.command"
	EventUnknownCommand observability.EventType = "session.command.unknown"
	EventEnd            observability.EventType = "session.end"
	EventError          observability.EventType = "session.error"
)
