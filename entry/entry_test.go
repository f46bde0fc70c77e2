package entry_test

import (
	"errors"
	"testing"

	"github.com/tailored-agentic-units/registry/entry"
	"github.com/tailored-agentic-units/registry/value"
)

func TestSelect_AllShapes(t *testing.T) {
	kinds := []value.Kind{value.KindInteger, value.KindFloat, value.KindText}
	samples := map[value.Kind]value.Value{
		value.KindInteger: value.Int(1),
		value.KindFloat:   value.Float(1.5),
		value.KindText:    value.Text("a"),
	}
	want := []entry.Shape{
		entry.IntInt, entry.IntFloat, entry.IntText,
		entry.FloatInt, entry.FloatFloat, entry.FloatText,
		entry.TextInt, entry.TextFloat, entry.TextText,
	}

	n := 0
	for _, kk := range kinds {
		for _, vk := range kinds {
			build, err := entry.Select(kk, vk)
			if err != nil {
				t.Fatalf("Select(%v, %v) error = %v", kk, vk, err)
			}

			e := build(samples[kk], samples[vk])
			if e.Shape() != want[n] {
				t.Errorf("Select(%v, %v) shape = %v, want %v", kk, vk, e.Shape(), want[n])
			}
			if e.Key() != samples[kk] || e.Value() != samples[vk] {
				t.Errorf("Select(%v, %v) did not keep the given values", kk, vk)
			}
			n++
		}
	}
}

func TestSelect_InvalidKind(t *testing.T) {
	tests := []struct {
		name      string
		keyKind   value.Kind
		valueKind value.Kind
	}{
		{"invalid key", value.KindInvalid, value.KindText},
		{"invalid value", value.KindInteger, value.KindInvalid},
		{"both invalid", value.KindInvalid, value.KindInvalid},
		{"out of range", value.Kind(42), value.KindFloat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			build, err := entry.Select(tt.keyKind, tt.valueKind)
			if !errors.Is(err, entry.ErrInvariant) {
				t.Errorf("got error %v, want ErrInvariant", err)
			}
			if build != nil {
				t.Error("expected nil constructor")
			}
		})
	}
}

func TestNew_ZeroValue(t *testing.T) {
	_, err := entry.New(value.Value{}, value.Int(1))
	if !errors.Is(err, entry.ErrInvariant) {
		t.Errorf("got error %v, want ErrInvariant", err)
	}
}

func TestEntry_Render(t *testing.T) {
	tests := []struct {
		name string
		key  value.Value
		val  value.Value
		want string
	}{
		{"int/int", value.Int(5), value.Int(10), "5: 10"},
		{"float/text", value.Float(3.5), value.Text("pi-ish"), "3.5: pi-ish"},
		{"text/float", value.Text("rate"), value.Float(0.25), "rate: 0.25"},
		{"text/int", value.Text("x"), value.Int(-1), "x: -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := entry.New(tt.key, tt.val)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := e.Render(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntry_Matches_Literal(t *testing.T) {
	floatKey, _ := entry.New(value.Float(3.5), value.Int(1))
	intKey, _ := entry.New(value.Infer("3.0"), value.Int(1))
	textKey, _ := entry.New(value.Text("abc"), value.Int(1))

	tests := []struct {
		name  string
		e     *entry.Entry
		probe string
		want  bool
	}{
		{"float key exact", floatKey, "3.5", true},
		{"float key longer text", floatKey, "3.50", false},
		{"int key rendered", intKey, "3", true},
		{"int key typed text", intKey, "3.0", false},
		{"text key exact", textKey, "abc", true},
		{"text key case", textKey, "ABC", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Matches(tt.probe); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.probe, got, tt.want)
			}
		})
	}
}

func TestShape_String(t *testing.T) {
	if got := entry.FloatText.String(); got != "float/text" {
		t.Errorf("got %q, want %q", got, "float/text")
	}
	if got := entry.Shape(99).String(); got != "shape(99)" {
		t.Errorf("got %q, want %q", got, "shape(99)")
	}
}
