package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Step is one parsed unit of a path key: a field name or an index.
// It is a closed variant: FieldStep or IndexStep.
type Step interface {
	step()
}

// FieldStep accesses an Object field by name.
type FieldStep string

// IndexStep accesses a Sequence element by position.
type IndexStep int

func (FieldStep) step() {}
func (IndexStep) step() {}

// ParseKey parses a path key into its ordered sequence of steps.
//
// A run of characters outside brackets accumulates a field name; "."
// flushes it. "[" flushes any pending name and opens an index segment,
// which may contain only decimal digits and is closed by "]". Empty
// name segments (a leading or doubled ".") are skipped rather than
// rejected. The empty key parses to an empty sequence.
//
// A non-digit inside an index segment, including a nested "[", is
// ErrMalformedKey, as is a "]" with no open segment.
func ParseKey(key string) ([]Step, error) {
	var steps []Step
	var name, digits strings.Builder
	inIndex := false

	for _, ch := range key {
		switch {
		case inIndex && ch == ']':
			index, err := strconv.Atoi(digits.String())
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedKey, key)
			}
			steps = append(steps, IndexStep(index))
			digits.Reset()
			inIndex = false

		case inIndex:
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q", ErrMalformedKey, key)
			}
			digits.WriteRune(ch)

		case ch == '.':
			if name.Len() > 0 {
				steps = append(steps, FieldStep(name.String()))
				name.Reset()
			}

		case ch == '[':
			if name.Len() > 0 {
				steps = append(steps, FieldStep(name.String()))
				name.Reset()
			}
			inIndex = true

		case ch == ']':
			// Unbalanced: no open index segment.
			return nil, fmt.Errorf("%w: %q", ErrMalformedKey, key)

		default:
			name.WriteRune(ch)
		}
	}

	if inIndex {
		return nil, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	if name.Len() > 0 {
		steps = append(steps, FieldStep(name.String()))
	}
	return steps, nil
}

// AssembleKey is the inverse of ParseKey: field steps render as ".name"
// and index steps as "[i]", concatenated with the leading "." stripped.
// A field step already wrapped in brackets renders verbatim.
//
// For every key produced by a flattening walk,
// AssembleKey(ParseKey(key)) == key.
func AssembleKey(steps []Step) string {
	var b strings.Builder
	for _, s := range steps {
		switch t := s.(type) {
		case FieldStep:
			name := string(t)
			if strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]") {
				b.WriteString(name)
			} else {
				b.WriteString(".")
				b.WriteString(name)
			}
		case IndexStep:
			b.WriteString("[")
			b.WriteString(strconv.Itoa(int(t)))
			b.WriteString("]")
		}
	}
	return strings.TrimPrefix(b.String(), ".")
}

// KeyDepth reports the nesting depth of a key: the number of steps
// minus one, so a top-level field has depth 0. Malformed keys fail
// with the same error as ParseKey.
func KeyDepth(key string) (int, error) {
	steps, err := ParseKey(key)
	if err != nil {
		return 0, err
	}
	return len(steps) - 1, nil
}
