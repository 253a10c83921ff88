//go:build unix

package terminal

import (
	"io"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipeTTY(t *testing.T) (*TTY, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})
	return &TTY{in: r, inFd: int(r.Fd())}, w
}

func TestTTY_ReadTimeout(t *testing.T) {
	tty, w := pipeTTY(t)
	buf := make([]byte, 16)

	n, err := tty.ReadTimeout(buf, 5*time.Millisecond)
	require.NoError(t, err)
	assert.Zero(t, n, "nothing written yet")

	_, err = w.Write([]byte("np"))
	require.NoError(t, err)

	n, err = tty.ReadTimeout(buf, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "np", string(buf[:n]))
}

func TestTTY_ReadTimeoutHangup(t *testing.T) {
	tty, w := pipeTTY(t)
	require.NoError(t, w.Close())

	n, err := tty.ReadTimeout(make([]byte, 16), time.Second)
	require.ErrorIs(t, err, io.EOF)
	assert.Zero(t, n)

	in := NewInput(tty)
	_, ok, err := in.Poll(time.Second)
	require.ErrorIs(t, err, io.EOF, "a hung up terminal ends the loop")
	assert.False(t, ok)
}

func TestTTY_StopWithSIGTSTPIgnored(t *testing.T) {
	signal.Ignore(syscall.SIGTSTP)
	t.Cleanup(func() { signal.Reset(syscall.SIGTSTP) })

	tty := &TTY{}
	done := make(chan error, 1)
	go func() { done <- tty.Stop() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * stopWait):
		t.Fatal("Stop blocked with SIGTSTP ignored")
	}
}
