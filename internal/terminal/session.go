package terminal

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Mode is the state of a Session.
type Mode int

const (
	Inactive Mode = iota
	Active
	Suspended
)

func (m Mode) String() string {
	switch m {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case Suspended:
		return "suspended"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Console is the terminal device a Session drives.
type Console interface {
	EnableRaw() error
	DisableRaw() error
	// Stop hands the terminal back to the shell and blocks until the
	// process is resumed.
	Stop() error
}

// Session moves the terminal between its normal state and the raw full
// screen state used while presenting.
//
//	Inactive --Acquire--> Active --Suspend--> Suspended --(resumed)--> Active
//	Active --Release--> Inactive
type Session struct {
	console Console
	screen  *Screen
	log     zerolog.Logger
	mode    Mode
}

// NewSession returns an inactive session.
func NewSession(console Console, screen *Screen, log zerolog.Logger) *Session {
	return &Session{console: console, screen: screen, log: log}
}

func (s *Session) Mode() Mode {
	return s.mode
}

// Screen returns the output sink. Callers must not draw unless
// BeginRepaint succeeds.
func (s *Session) Screen() *Screen {
	return s.screen
}

// Acquire enters raw mode, hides the cursor and clears the screen. It is a
// no-op when the session is already active.
func (s *Session) Acquire() error {
	if s.mode == Active {
		return nil
	}
	if err := s.console.EnableRaw(); err != nil {
		return err
	}

	s.screen.HideCursor()
	s.screen.Clear()
	if err := s.screen.Flush(); err != nil {
		return fmt.Errorf("prepare screen: %w", err)
	}

	s.log.Debug().Str("from", s.mode.String()).Msg("session acquired")
	s.mode = Active
	return nil
}

// Release clears the screen, shows the cursor and leaves raw mode.
func (s *Session) Release() error {
	if s.mode == Inactive {
		return nil
	}
	if err := s.restore(); err != nil {
		return err
	}
	s.mode = Inactive
	s.log.Debug().Msg("session released")
	return nil
}

// Suspend restores the terminal, stops the process and re-acquires the
// terminal once the shell resumes it. It blocks for the whole time the
// process is stopped.
func (s *Session) Suspend() error {
	if s.mode != Active {
		return ErrNotActive
	}
	if err := s.restore(); err != nil {
		return err
	}
	s.mode = Suspended
	s.log.Debug().Msg("session suspended")

	if err := s.console.Stop(); err != nil {
		return err
	}

	s.log.Debug().Msg("session resumed")
	return s.Acquire()
}

// BeginRepaint clears the pending frame and screen ahead of drawing a new
// slide. It fails with ErrNotActive unless the session is active.
func (s *Session) BeginRepaint() error {
	if s.mode != Active {
		return ErrNotActive
	}
	s.screen.Discard()
	s.screen.Clear()
	return nil
}

// Close restores the terminal whatever the current mode. Every step is
// attempted; failures are joined.
func (s *Session) Close() error {
	if s.mode == Inactive {
		return nil
	}

	s.screen.Discard()
	s.screen.Clear()
	s.screen.ShowCursor()
	errs := []error{s.screen.Flush(), s.console.DisableRaw()}
	s.mode = Inactive
	return errors.Join(errs...)
}

func (s *Session) restore() error {
	s.screen.Discard()
	s.screen.Clear()
	s.screen.ShowCursor()
	if err := s.screen.Flush(); err != nil {
		return fmt.Errorf("restore screen: %w", err)
	}
	return s.console.DisableRaw()
}
