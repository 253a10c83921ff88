package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingConsole logs every call it receives.
type recordingConsole struct {
	calls   []string
	raw     bool
	onStop  func()
	rawErr  error
	stopErr error
}

func (c *recordingConsole) EnableRaw() error {
	c.calls = append(c.calls, "raw-on")
	if c.rawErr != nil {
		return c.rawErr
	}
	c.raw = true
	return nil
}

func (c *recordingConsole) DisableRaw() error {
	c.calls = append(c.calls, "raw-off")
	c.raw = false
	return nil
}

func (c *recordingConsole) Stop() error {
	c.calls = append(c.calls, "stop")
	if c.onStop != nil {
		c.onStop()
	}
	return c.stopErr
}

func newTestSession(console *recordingConsole) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return NewSession(console, NewScreen(&out), zerolog.Nop()), &out
}

func TestSession_AcquireRelease(t *testing.T) {
	console := &recordingConsole{}
	s, out := newTestSession(console)
	assert.Equal(t, Inactive, s.Mode())

	require.NoError(t, s.Acquire())
	assert.Equal(t, Active, s.Mode())
	assert.True(t, console.raw)
	assert.Contains(t, out.String(), ansi.HideCursor)
	assert.Contains(t, out.String(), ansi.EraseEntireScreen)

	require.NoError(t, s.Release())
	assert.Equal(t, Inactive, s.Mode())
	assert.False(t, console.raw)
	assert.Contains(t, out.String(), ansi.ShowCursor)
}

func TestSession_AcquireIdempotent(t *testing.T) {
	console := &recordingConsole{}
	s, _ := newTestSession(console)

	require.NoError(t, s.Acquire())
	require.NoError(t, s.Acquire())
	assert.Equal(t, []string{"raw-on"}, console.calls)
}

func TestSession_AcquireFailureStaysInactive(t *testing.T) {
	console := &recordingConsole{rawErr: errors.New("no tty")}
	s, out := newTestSession(console)

	require.Error(t, s.Acquire())
	assert.Equal(t, Inactive, s.Mode())
	assert.Empty(t, out.String())
}

func TestSession_SuspendCycle(t *testing.T) {
	console := &recordingConsole{}
	s, _ := newTestSession(console)
	require.NoError(t, s.Acquire())

	var during Mode
	var rawDuring bool
	console.onStop = func() {
		during = s.Mode()
		rawDuring = console.raw
	}

	require.NoError(t, s.Suspend())
	assert.Equal(t, Suspended, during)
	assert.False(t, rawDuring, "terminal must be restored while stopped")
	assert.Equal(t, Active, s.Mode())
	assert.True(t, console.raw)
	assert.Equal(t, []string{"raw-on", "raw-off", "stop", "raw-on"}, console.calls)
}

func TestSession_SuspendRequiresActive(t *testing.T) {
	s, _ := newTestSession(&recordingConsole{})
	require.ErrorIs(t, s.Suspend(), ErrNotActive)
}

func TestSession_SuspendStopFailure(t *testing.T) {
	console := &recordingConsole{stopErr: errors.New("kill failed")}
	s, _ := newTestSession(console)
	require.NoError(t, s.Acquire())

	require.Error(t, s.Suspend())
	assert.Equal(t, Suspended, s.Mode())
	require.NoError(t, s.Close())
	assert.Equal(t, Inactive, s.Mode())
}

func TestSession_BeginRepaint(t *testing.T) {
	s, out := newTestSession(&recordingConsole{})
	require.ErrorIs(t, s.BeginRepaint(), ErrNotActive)

	require.NoError(t, s.Acquire())
	out.Reset()

	s.Screen().Put(0, 0, "stale", "")
	require.NoError(t, s.BeginRepaint())
	require.NoError(t, s.Screen().Flush())
	assert.NotContains(t, out.String(), "stale")
	assert.Contains(t, out.String(), ansi.EraseEntireScreen)
}

func TestSession_CloseAnyMode(t *testing.T) {
	console := &recordingConsole{}
	s, _ := newTestSession(console)

	require.NoError(t, s.Close())
	assert.Empty(t, console.calls, "closing an inactive session touches nothing")

	require.NoError(t, s.Acquire())
	require.NoError(t, s.Close())
	assert.Equal(t, Inactive, s.Mode())
	assert.False(t, console.raw)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "inactive", Inactive.String())
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "suspended", Suspended.String())
	assert.Equal(t, "mode(7)", Mode(7).String())
}
