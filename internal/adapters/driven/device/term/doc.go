// Package term implements the Device port for plain, line-oriented
// terminals: a lipgloss table per render and a one-line key prompt.
package term
