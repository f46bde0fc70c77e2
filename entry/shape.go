package entry

import (
	"fmt"

	"github.com/tailored-agentic-units/registry/value"
)

// Shape names one of the nine key-kind × value-kind representations.
type Shape int

const (
	IntInt Shape = iota
	IntFloat
	IntText
	FloatInt
	FloatFloat
	FloatText
	TextInt
	TextFloat
	TextText
)

func (s Shape) String() string {
	switch s {
	case IntInt:
		return "integer/integer"
	case IntFloat:
		return "integer/float"
	case IntText:
		return "integer/text"
	case FloatInt:
		return "float/integer"
	case FloatFloat:
		return "float/float"
	case FloatText:
		return "float/text"
	case TextInt:
		return "text/integer"
	case TextFloat:
		return "text/float"
	case TextText:
		return "text/text"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Constructor builds an Entry of a fixed Shape from already inferred values.
type Constructor func(key, val value.Value) *Entry

func construct(shape Shape) Constructor {
	return func(key, val value.Value) *Entry {
		return &Entry{
			shape:   shape,
			key:     key,
			value:   val,
			keyText: key.String(),
		}
	}
}

// Select returns the constructor for the given key and value kinds. Every
// pair produced by value.Infer is covered; any other pair is an invariant
// violation and yields an error wrapping ErrInvariant.
func Select(keyKind, valueKind value.Kind) (Constructor, error) {
	var shape Shape

	switch keyKind {
	case value.KindInteger:
		switch valueKind {
		case value.KindInteger:
			shape = IntInt
		case value.KindFloat:
			shape = IntFloat
		case value.KindText:
			shape = IntText
		default:
			return nil, invariant(keyKind, valueKind)
		}
	case value.KindFloat:
		switch valueKind {
		case value.KindInteger:
			shape = FloatInt
		case value.KindFloat:
			shape = FloatFloat
		case value.KindText:
			shape = FloatText
		default:
			return nil, invariant(keyKind, valueKind)
		}
	case value.KindText:
		switch valueKind {
		case value.KindInteger:
			shape = TextInt
		case value.KindFloat:
			shape = TextFloat
		case value.KindText:
			shape = TextText
		default:
			return nil, invariant(keyKind, valueKind)
		}
	default:
		return nil, invariant(keyKind, valueKind)
	}

	return construct(shape), nil
}

func invariant(keyKind, valueKind value.Kind) error {
	return fmt.Errorf("%w: no shape for key kind %s and value kind %s", ErrInvariant, keyKind, valueKind)
}
