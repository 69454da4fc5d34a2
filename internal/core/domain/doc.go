// Package domain holds the core model of needle: the document tree
// value, the path-key grammar, and the flattened Search view built on
// top of it. It has no dependencies on adapters or I/O.
package domain
