// Package driving defines the interfaces through which external
// actors (CLI, TUI, MCP) drive the core.
package driving
