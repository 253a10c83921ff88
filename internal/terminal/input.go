package terminal

import "time"

// TimeoutReader reads whatever input is available within a deadline,
// returning 0 bytes when the deadline passes.
type TimeoutReader interface {
	ReadTimeout(p []byte, timeout time.Duration) (int, error)
}

// Input turns raw reads into decoded keys. A single read may carry several
// key presses; extras are queued for later polls.
type Input struct {
	r       TimeoutReader
	buf     []byte
	pending []Key
	// err is a read failure seen by Buffered, returned by the next Poll.
	err error
}

// NewInput returns an Input reading from r.
func NewInput(r TimeoutReader) *Input {
	return &Input{r: r, buf: make([]byte, 256)}
}

// Poll returns the next key, waiting at most timeout. ok is false when no
// key arrived in time.
func (in *Input) Poll(timeout time.Duration) (key Key, ok bool, err error) {
	if in.err != nil {
		err, in.err = in.err, nil
		return KeyNone, false, err
	}
	if len(in.pending) == 0 {
		if err := in.fill(timeout); err != nil {
			return KeyNone, false, err
		}
	}
	if len(in.pending) == 0 {
		return KeyNone, false, nil
	}

	key = in.pending[0]
	in.pending = in.pending[1:]
	return key, true, nil
}

// Buffered reports whether a key is waiting, without blocking. A key found
// by Buffered is still returned by the next Poll, and so is a read error.
func (in *Input) Buffered() bool {
	if len(in.pending) > 0 || in.err != nil {
		return true
	}
	if err := in.fill(0); err != nil {
		in.err = err
		return true
	}
	return len(in.pending) > 0
}

func (in *Input) fill(timeout time.Duration) error {
	n, err := in.r.ReadTimeout(in.buf, timeout)
	if err != nil {
		return err
	}

	p := in.buf[:n]
	for len(p) > 0 {
		key, size := DecodeKey(p)
		if key != KeyNone {
			in.pending = append(in.pending, key)
		}
		p = p[size:]
	}
	return nil
}
