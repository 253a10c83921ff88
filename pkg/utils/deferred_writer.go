package utils

import (
	"bytes"
	"io"
	"sync"
)

// DeferredWriter buffers all writes in memory until Flush is called, so a
// whole frame reaches the terminal in one write. Safe for concurrent use.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write stores data in the internal buffer.
func (d *DeferredWriter) Write(p []byte) (n int, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// WriteString stores s in the internal buffer.
func (d *DeferredWriter) WriteString(s string) (n int, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.WriteString(s)
}

// Len returns the number of pending bytes.
func (d *DeferredWriter) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Len()
}

// Discard drops pending data without writing it.
func (d *DeferredWriter) Discard() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.buf.Reset()
}

// Flush writes all buffered data to w and clears the buffer. On a failed
// write the unwritten remainder is dropped; a half-drawn frame is not
// worth replaying.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.buf.Len() == 0 {
		return nil
	}

	_, err := d.buf.WriteTo(w)
	d.buf.Reset()
	return err
}
