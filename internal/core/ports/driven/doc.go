// Package driven defines the interfaces the core depends on:
// document decoding and the terminal device used for navigation.
package driven
