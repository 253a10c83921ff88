//go:build !unix

package terminal

import (
	"errors"
	"os"
	"time"
)

var errUnsupported = errors.New("interactive presenting is only supported on unix terminals")

// TTY is unavailable on this platform.
type TTY struct{}

// OpenTTY always fails on this platform.
func OpenTTY() (*TTY, error) {
	return nil, errUnsupported
}

func (t *TTY) EnableRaw() error                                   { return errUnsupported }
func (t *TTY) DisableRaw() error                                  { return nil }
func (t *TTY) Size() (int, int, error)                            { return 0, 0, errUnsupported }
func (t *TTY) Write(p []byte) (int, error)                        { return 0, errUnsupported }
func (t *TTY) Output() *os.File                                   { return nil }
func (t *TTY) Stop() error                                        { return errUnsupported }
func (t *TTY) ReadTimeout(p []byte, _ time.Duration) (int, error) { return 0, errUnsupported }
