package utils

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func TestDeferredWriter_HoldsFrameUntilFlush(t *testing.T) {
	d := &DeferredWriter{}

	_, err := d.WriteString("\x1b[2J")
	require.NoError(t, err)
	_, err = d.Write([]byte("frame"))
	require.NoError(t, err)
	assert.Equal(t, len("\x1b[2J")+len("frame"), d.Len())

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Equal(t, "\x1b[2Jframe", out.String())
	assert.Zero(t, d.Len())
}

func TestDeferredWriter_EmptyFlush(t *testing.T) {
	d := &DeferredWriter{}

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Empty(t, out.String())
}

func TestDeferredWriter_Discard(t *testing.T) {
	d := &DeferredWriter{}
	_, _ = d.WriteString("stale")
	d.Discard()

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Empty(t, out.String())
}

func TestDeferredWriter_FailedFlushDropsFrame(t *testing.T) {
	d := &DeferredWriter{}
	_, _ = d.WriteString("frame")

	require.Error(t, d.Flush(failingWriter{}))
	assert.Zero(t, d.Len())
}
