// Package value models the primitive values the registry stores. A Value is
// a closed three-way variant whose kind is decided at run time by Infer.
package value

import "strconv"

// Kind identifies which primitive a Value holds.
type Kind int

const (
	KindInvalid Kind = iota // zero Value; never produced by Infer
	KindInteger
	KindFloat
	KindText
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	default:
		return "invalid"
	}
}

// Value is a tagged primitive. The kind and payload always agree: only the
// field selected by kind is meaningful.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Int returns an integer Value.
func Int(i int64) Value {
	return Value{kind: KindInteger, i: i}
}

// Float returns a floating-point Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Text returns a text Value holding s verbatim.
func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInteger
}

func (v Value) Float() (float64, bool) {
	return v.f, v.kind == KindFloat
}

func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindText
}

// Native returns the payload as int64, float64 or string, or nil for the
// zero Value.
func (v Value) Native() any {
	switch v.kind {
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	case KindText:
		return v.s
	default:
		return nil
	}
}

// String returns the canonical text form: decimal for integers, the shortest
// round-trip form for floats, and the literal text unquoted.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return v.s
	default:
		return ""
	}
}
