// Package decode implements the DocumentDecoder port for the supported
// document formats: JSON, YAML, and TOML, selected by file extension.
package decode
