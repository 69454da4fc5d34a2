package domain

import "errors"

// Domain errors represent engine failures.
// These are distinct from adapter errors (I/O, decoding).
var (
	// ErrNotFound indicates a path key does not resolve against the
	// document: a field is absent, an index is out of range, or a step
	// kind does not match the node it is applied to. Callers cannot
	// distinguish those cases.
	ErrNotFound = errors.New("key not found")

	// ErrMalformedKey indicates a path key that does not follow the
	// key grammar: a non-digit inside an index segment, or improperly
	// nested brackets.
	ErrMalformedKey = errors.New("malformed key")

	// ErrUnsupportedFormat indicates a document format no decoder
	// is registered for.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)
