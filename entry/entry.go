// Package entry implements the immutable key/value pairs held by the
// registry and the dispatcher that picks their representation.
package entry

import "github.com/tailored-agentic-units/registry/value"

// Entry is a key/value pair of two inferred values. It is immutable once
// built; use New or a Constructor from Select.
type Entry struct {
	shape   Shape
	key     value.Value
	value   value.Value
	keyText string
}

// New dispatches on the kinds of key and val and builds the matching Entry.
func New(key, val value.Value) (*Entry, error) {
	build, err := Select(key.Kind(), val.Kind())
	if err != nil {
		return nil, err
	}
	return build(key, val), nil
}

func (e *Entry) Shape() Shape {
	return e.shape
}

func (e *Entry) Key() value.Value {
	return e.key
}

func (e *Entry) Value() value.Value {
	return e.value
}

// Render returns "<key>: <value>" using each value's canonical text.
func (e *Entry) Render() string {
	return e.keyText + ": " + e.value.String()
}

// Matches reports whether the key's rendered text equals probe exactly.
// The comparison is literal: a Float key rendered "3.5" matches "3.5" only,
// and an Integer key inferred from "3.0" renders and matches as "3".
func (e *Entry) Matches(probe string) bool {
	return e.keyText == probe
}
