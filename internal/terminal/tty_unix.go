//go:build unix

package terminal

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TTY is the process's controlling terminal: stdin for keys, stdout for
// output.
type TTY struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	state *term.State
}

// OpenTTY returns the terminal attached to stdin and stdout. It fails with
// ErrNotTerminal when stdin is redirected.
func OpenTTY() (*TTY, error) {
	inFd := int(os.Stdin.Fd())
	if !term.IsTerminal(inFd) {
		return nil, ErrNotTerminal
	}
	return &TTY{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  inFd,
		outFd: int(os.Stdout.Fd()),
	}, nil
}

// EnableRaw puts the terminal in raw mode. Calling it while already raw is a
// no-op.
func (t *TTY) EnableRaw() error {
	if t.state != nil {
		return nil
	}
	state, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.state = state
	return nil
}

// DisableRaw restores the mode saved by EnableRaw.
func (t *TTY) DisableRaw() error {
	if t.state == nil {
		return nil
	}
	if err := term.Restore(t.inFd, t.state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	t.state = nil
	return nil
}

// Size returns the terminal width and height in cells.
func (t *TTY) Size() (int, int, error) {
	return term.GetSize(t.outFd)
}

func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Output is the terminal's output file. Color profile detection needs the
// file itself.
func (t *TTY) Output() *os.File {
	return t.out
}

// stopWait bounds how long Stop waits for the process to be stopped. A
// stopped process runs no timers, so a real suspension never hits it.
const stopWait = time.Second

// Stop sends SIGTSTP to the process group and blocks until the shell
// resumes it with SIGCONT. When SIGTSTP is ignored, or the kernel drops it
// for an orphaned process group, Stop returns without suspending.
func (t *TTY) Stop() error {
	if signal.Ignored(unix.SIGTSTP) {
		return nil
	}

	cont := make(chan os.Signal, 1)
	signal.Notify(cont, unix.SIGCONT)
	defer signal.Stop(cont)

	if err := unix.Kill(0, unix.SIGTSTP); err != nil {
		return fmt.Errorf("suspend process: %w", err)
	}

	select {
	case <-cont:
	case <-time.After(stopWait):
	}
	return nil
}

// ReadTimeout waits up to timeout for input and reads what is available.
// It returns 0 and a nil error when nothing arrived in time or the wait was
// interrupted by a signal, and io.EOF once the terminal has hung up.
func (t *TTY) ReadTimeout(p []byte, timeout time.Duration) (int, error) {
	fds := []unix.PollFd{{Fd: int32(t.inFd), Events: unix.POLLIN}}

	n, err := unix.Poll(fds, int(timeout.Milliseconds()))
	if err != nil {
		if err == unix.EINTR {
			return 0, nil
		}
		return 0, fmt.Errorf("poll stdin: %w", err)
	}
	if n == 0 {
		return 0, nil
	}

	rn, err := unix.Read(t.inFd, p)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, nil
		}
		return 0, fmt.Errorf("read stdin: %w", err)
	}
	if rn == 0 {
		return 0, io.EOF
	}
	return rn, nil
}
