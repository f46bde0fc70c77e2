package session

import "errors"

// Sentinel errors for the interactive loop.
var (
	ErrIncompleteCommand = errors.New("input ended inside a command")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
