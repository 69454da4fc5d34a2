package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Value is one node of a decoded document tree.
// It is a closed variant: Scalar, Object, or Sequence. The engine never
// mutates a Value; every Search built over one treats it as immutable.
type Value interface {
	value()
}

// Scalar is a leaf node.
type Scalar struct {
	// Val is the leaf's Go value: int64, float64, bool, string,
	// or nil for an explicit null.
	Val any
}

// Field is one named entry of an Object, in document order.
type Field struct {
	// Name is the field name as it appears in the document.
	Name string

	// Child is the field's value.
	Child Value
}

// Object is an ordered mapping from field names to child values.
type Object struct {
	// Fields holds the entries in document order.
	Fields []Field
}

// Sequence is an ordered, zero-indexed list of child values.
type Sequence struct {
	// Items holds the elements in index order.
	Items []Value
}

func (Scalar) value()   {}
func (Object) value()   {}
func (Sequence) value() {}

// Lookup returns the child for the given field name.
func (o Object) Lookup(name string) (Value, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f.Child, true
		}
	}
	return nil, false
}

// FromAny converts a decoded document (maps, slices, scalars) into a
// Value tree. Mapping inputs carry no ordering of their own, so their
// fields are sorted by name to keep the flattening walk deterministic;
// decoders that know the document order build Object values directly.
func FromAny(v any) Value {
	switch t := v.(type) {
	case map[string]any:
		names := make([]string, 0, len(t))
		for name := range t {
			names = append(names, name)
		}
		sort.Strings(names)
		fields := make([]Field, 0, len(names))
		for _, name := range names {
			fields = append(fields, Field{Name: name, Child: FromAny(t[name])})
		}
		return Object{Fields: fields}

	case []any:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, FromAny(item))
		}
		return Sequence{Items: items}

	case []map[string]any:
		// go-toml decodes arrays of tables this way.
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, FromAny(item))
		}
		return Sequence{Items: items}

	case nil:
		return Scalar{Val: nil}
	case bool, string, int64, float64:
		return Scalar{Val: t}
	case int:
		return Scalar{Val: int64(t)}
	case int32:
		return Scalar{Val: int64(t)}
	case uint64:
		return Scalar{Val: int64(t)}
	case float32:
		return Scalar{Val: float64(t)}
	default:
		// Decoder-specific leaf types (e.g. TOML datetimes) are kept
		// as opaque scalars.
		return Scalar{Val: t}
	}
}

// Format renders a Value as a single line for display.
// Scalars render via fmt (null for nil); containers render inline.
func Format(v Value) string {
	switch t := v.(type) {
	case Scalar:
		if t.Val == nil {
			return "null"
		}
		if s, ok := t.Val.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", t.Val)

	case Object:
		parts := make([]string, 0, len(t.Fields))
		for _, f := range t.Fields {
			parts = append(parts, f.Name+": "+Format(f.Child))
		}
		return "{" + strings.Join(parts, ", ") + "}"

	case Sequence:
		parts := make([]string, 0, len(t.Items))
		for _, item := range t.Items {
			parts = append(parts, Format(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"

	default:
		return fmt.Sprintf("%v", v)
	}
}
