// Package terminal owns the raw terminal: key decoding, buffered screen
// output and the session state machine that moves between raw presenting
// mode, suspension and the restored shell.
package terminal

import "errors"

var (
	// ErrNotTerminal is returned when stdin is not attached to a terminal.
	ErrNotTerminal = errors.New("stdin is not a terminal")
	// ErrNotActive is returned when drawing is attempted outside the active mode.
	ErrNotActive = errors.New("terminal session is not active")
)
