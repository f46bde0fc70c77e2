// Package snapshot renders registry entries as protobuf Struct values so
// listings can be emitted as JSON. Integers and floats both become number
// values; key_kind and value_kind keep the inferred kinds.
package snapshot

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tailored-agentic-units/registry/entry"
	"github.com/tailored-agentic-units/registry/value"
)

// ErrEncode is returned when an entry cannot be converted.
var ErrEncode = errors.New("snapshot encode failed")

// Encode converts entries, in order, to a list of structs with the fields
// key, key_kind, value and value_kind.
func Encode(entries []*entry.Entry) (*structpb.ListValue, error) {
	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(entries))}

	for i, e := range entries {
		key, err := encodeValue(e.Key())
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d key: %v", ErrEncode, i, err)
		}
		val, err := encodeValue(e.Value())
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d value: %v", ErrEncode, i, err)
		}

		list.Values = append(list.Values, structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{
				"key":        key,
				"key_kind":   structpb.NewStringValue(e.Key().Kind().String()),
				"value":      val,
				"value_kind": structpb.NewStringValue(e.Value().Kind().String()),
			},
		}))
	}

	return list, nil
}

// MarshalJSON encodes entries as a JSON array.
func MarshalJSON(entries []*entry.Entry) ([]byte, error) {
	list, err := Encode(entries)
	if err != nil {
		return nil, err
	}

	data, err := protojson.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

func encodeValue(v value.Value) (*structpb.Value, error) {
	switch v.Kind() {
	case value.KindInteger:
		i, _ := v.Int()
		return structpb.NewNumberValue(float64(i)), nil
	case value.KindFloat:
		f, _ := v.Float()
		return structpb.NewNumberValue(f), nil
	case value.KindText:
		s, _ := v.Text()
		return structpb.NewStringValue(s), nil
	default:
		return nil, fmt.Errorf("unsupported kind %s", v.Kind())
	}
}
