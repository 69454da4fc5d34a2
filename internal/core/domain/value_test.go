package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromAny_Mapping tests that unordered mappings get sorted fields
func TestFromAny_Mapping(t *testing.T) {
	v := FromAny(map[string]any{
		"zebra":  1,
		"alpha":  2,
		"middle": 3,
	})

	o, ok := v.(Object)
	require.True(t, ok)
	names := make([]string, 0, len(o.Fields))
	for _, f := range o.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"alpha", "middle", "zebra"}, names)
}

// TestFromAny_Scalars tests scalar normalisation
func TestFromAny_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{name: "nil", input: nil, expected: nil},
		{name: "bool", input: true, expected: true},
		{name: "string", input: "hello", expected: "hello"},
		{name: "int", input: 42, expected: int64(42)},
		{name: "int64", input: int64(42), expected: int64(42)},
		{name: "int32", input: int32(7), expected: int64(7)},
		{name: "uint64", input: uint64(9), expected: int64(9)},
		{name: "float64", input: 3.14, expected: 3.14},
		{name: "float32", input: float32(0.5), expected: float64(0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromAny(tt.input)
			s, ok := v.(Scalar)
			require.True(t, ok)
			assert.Equal(t, tt.expected, s.Val)
		})
	}
}

// TestFromAny_Nested tests recursive conversion
func TestFromAny_Nested(t *testing.T) {
	v := FromAny(map[string]any{
		"a": map[string]any{"one": 1, "two": 2},
		"b": []any{map[string]any{"x": 3}, map[string]any{"y": 4}},
	})

	search := NewSearch(v)
	assert.Equal(t, []string{"a.one", "a.two", "b[0].x", "b[1].y"}, search.FlatKeys())

	got, err := search.Get("b[0].x")
	require.NoError(t, err)
	assert.Equal(t, Scalar{Val: int64(3)}, got)
}

// TestFromAny_TableArrays tests the go-toml array-of-tables shape
func TestFromAny_TableArrays(t *testing.T) {
	v := FromAny([]map[string]any{
		{"name": "first"},
		{"name": "second"},
	})

	search := NewSearch(v)
	assert.Equal(t, []string{"[0].name", "[1].name"}, search.FlatKeys())
}

// TestFormat tests display rendering
func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{name: "null", value: Scalar{Val: nil}, expected: "null"},
		{name: "string", value: Scalar{Val: "plain"}, expected: "plain"},
		{name: "int", value: Scalar{Val: int64(42)}, expected: "42"},
		{name: "bool", value: Scalar{Val: false}, expected: "false"},
		{
			name: "object inline",
			value: Object{Fields: []Field{
				{Name: "a", Child: Scalar{Val: int64(1)}},
				{Name: "b", Child: Scalar{Val: "x"}},
			}},
			expected: "{a: 1, b: x}",
		},
		{
			name: "sequence inline",
			value: Sequence{Items: []Value{
				Scalar{Val: int64(1)},
				Sequence{Items: []Value{Scalar{Val: int64(2)}}},
			}},
			expected: "[1, [2]]",
		},
		{name: "empty object", value: Object{}, expected: "{}"},
		{name: "empty sequence", value: Sequence{}, expected: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.value))
		})
	}
}

// TestObject_Lookup tests field lookup
func TestObject_Lookup(t *testing.T) {
	o := Object{Fields: []Field{
		{Name: "a", Child: Scalar{Val: int64(1)}},
		{Name: "b", Child: Scalar{Val: int64(2)}},
	}}

	v, ok := o.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, Scalar{Val: int64(2)}, v)

	_, ok = o.Lookup("missing")
	assert.False(t, ok)
}
