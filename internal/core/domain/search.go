package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Search is a read-only, flattened view over a Value tree.
//
// Construction walks the tree once and caches one path key per scalar
// leaf, in the tree's natural iteration order. Every derived Search
// (Find, Subsearch, MaxDepth, FixedDepth) owns an independent cache
// produced by filtering this one; the underlying Value is shared by
// reference and never copied.
type Search struct {
	value  Value
	cache  []string
	prefix string
}

// NewSearch builds a Search by flattening the given tree.
func NewSearch(v Value) *Search {
	return &Search{value: v, cache: flatten(v, -1)}
}

// NewSearchMaxDepth builds a Search whose walk stops maxDepth levels
// below the root: a container at the limit is recorded as a single key
// and not descended into.
func NewSearchMaxDepth(v Value, maxDepth int) *Search {
	return &Search{value: v, cache: flatten(v, maxDepth)}
}

// NewSearchFromCache builds a Search over v with an explicit key cache
// and prefix, without walking the tree. Every key in cache must resolve
// against v.
func NewSearchFromCache(v Value, cache []string, prefix string) *Search {
	return &Search{value: v, cache: slices.Clone(cache), prefix: prefix}
}

// flatten performs the depth-first pre-order walk. A child is recorded
// when it is a scalar, or when the walk has reached maxDepth levels
// below the root (maxDepth < 0 means unlimited). Empty containers
// contribute no keys, and the root itself is never a key.
func flatten(v Value, maxDepth int) []string {
	keys := []string{}
	var walk func(node Value, parent string, level int)
	walk = func(node Value, parent string, level int) {
		record := func(childKey string, child Value) {
			if _, ok := child.(Scalar); ok || (maxDepth >= 0 && level >= maxDepth) {
				keys = append(keys, strings.TrimPrefix(childKey, "."))
				return
			}
			walk(child, childKey, level+1)
		}
		switch t := node.(type) {
		case Object:
			for _, f := range t.Fields {
				record(parent+"."+f.Name, f.Child)
			}
		case Sequence:
			for i, item := range t.Items {
				record(parent+"["+strconv.Itoa(i)+"]", item)
			}
		}
	}
	walk(v, "", 0)
	return keys
}

// FlatKeys returns a copy of the cached keys in walk order.
func (s *Search) FlatKeys() []string {
	return slices.Clone(s.cache)
}

// Prefix returns the path key this Search was re-rooted on, or ""
// for a top-level Search.
func (s *Search) Prefix() string {
	return s.prefix
}

// Value returns the tree this Search reads from.
func (s *Search) Value() Value {
	return s.value
}

// Get resolves a path key against the tree, one step at a time.
// A malformed key fails with ErrMalformedKey; a step that does not
// resolve (absent field, index out of range, or step kind applied to
// the wrong node kind) fails with ErrNotFound.
func (s *Search) Get(key string) (Value, error) {
	steps, err := ParseKey(key)
	if err != nil {
		return nil, err
	}
	node := s.value
	for _, step := range steps {
		node, err = access(node, step)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
		}
	}
	return node, nil
}

// access applies a single step to a node.
func access(node Value, step Step) (Value, error) {
	switch t := step.(type) {
	case FieldStep:
		obj, ok := node.(Object)
		if !ok {
			return nil, ErrNotFound
		}
		child, ok := obj.Lookup(string(t))
		if !ok {
			return nil, ErrNotFound
		}
		return child, nil

	case IndexStep:
		seq, ok := node.(Sequence)
		if !ok {
			return nil, ErrNotFound
		}
		if int(t) < 0 || int(t) >= len(seq.Items) {
			return nil, ErrNotFound
		}
		return seq.Items[int(t)], nil
	}
	return nil, ErrNotFound
}

// Find returns a new Search narrowed to keys containing sub.
//
// Despite the name this is a substring match anywhere in the key text,
// not a suffix match; "batch" matches both "train.batch_size" and
// "batch.count". Order is preserved, and a match on nothing yields an
// empty cache rather than an error.
func (s *Search) Find(sub string) *Search {
	cache := []string{}
	for _, key := range s.cache {
		if strings.Contains(key, sub) {
			cache = append(cache, key)
		}
	}
	return &Search{value: s.value, cache: cache, prefix: s.prefix}
}

// Subsearch re-roots the Search onto the subtree at prefix. The
// subtree is held by reference, and the new cache holds every current
// key below prefix, re-expressed relative to it. Fails with the same
// errors as Get when prefix does not resolve.
func (s *Search) Subsearch(prefix string) (*Search, error) {
	node, err := s.Get(prefix)
	if err != nil {
		return nil, err
	}
	cache := []string{}
	for _, key := range s.cache {
		if strings.HasPrefix(key, prefix) && key != prefix {
			cache = append(cache, strings.TrimPrefix(strings.TrimPrefix(key, prefix), "."))
		}
	}
	return &Search{value: node, cache: cache, prefix: prefix}, nil
}

// MaxDepth returns a new Search narrowed to keys of depth at most
// depth. Filtering only ever removes keys: it cannot recover keys a
// construction-time depth limit truncated away.
func (s *Search) MaxDepth(depth int) *Search {
	return s.filterDepth(func(d int) bool { return d <= depth })
}

// FixedDepth returns a new Search narrowed to keys of exactly the
// given depth.
func (s *Search) FixedDepth(depth int) *Search {
	return s.filterDepth(func(d int) bool { return d == depth })
}

func (s *Search) filterDepth(keep func(int) bool) *Search {
	cache := []string{}
	for _, key := range s.cache {
		d, err := KeyDepth(key)
		if err != nil {
			// Walk-produced caches never hold malformed keys.
			continue
		}
		if keep(d) {
			cache = append(cache, key)
		}
	}
	return &Search{value: s.value, cache: cache, prefix: s.prefix}
}

// Equal reports whether two Searches expose the same cache and prefix.
// Tree identity is not compared.
func (s *Search) Equal(other *Search) bool {
	return s.prefix == other.prefix && slices.Equal(s.cache, other.cache)
}

// String renders the Search as "key = value" lines in cache order.
func (s *Search) String() string {
	var b strings.Builder
	for _, key := range s.cache {
		v, err := s.Get(key)
		if err != nil {
			// Cache and tree are consistent by construction.
			continue
		}
		fmt.Fprintf(&b, "%s = %s\n", key, Format(v))
	}
	return b.String()
}
