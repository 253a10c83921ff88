// Package present runs the interactive event loop: poll a key, act on it,
// refresh the timer, flush once.
package present

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/pitch/internal/core/deck"
	"github.com/hay-kot/pitch/internal/core/nav"
	"github.com/hay-kot/pitch/internal/terminal"
)

// SplashText is shown before the first slide.
const SplashText = "Ready to start"

// Input yields key presses, waiting at most timeout for one.
type Input interface {
	Poll(timeout time.Duration) (terminal.Key, bool, error)
}

// Session controls ownership of the terminal.
type Session interface {
	Acquire() error
	Release() error
	Suspend() error
	BeginRepaint() error
	Close() error
}

// Renderer draws onto the session's screen.
type Renderer interface {
	Splash(text string) error
	Slide(s deck.Slide, position, total int) error
	Timer(elapsed time.Duration, visible bool)
	Flush() error
}

// Options tune the loop.
type Options struct {
	Keys         Keymap
	PollInterval time.Duration
	TimerVisible bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// Presenter drives one presentation of a deck.
type Presenter struct {
	deck     *deck.Deck
	nav      *nav.Navigator
	input    Input
	session  Session
	renderer Renderer
	opts     Options
	log      zerolog.Logger

	start        time.Time
	timerVisible bool
}

// New returns a Presenter positioned before the first slide.
func New(d *deck.Deck, input Input, session Session, renderer Renderer, opts Options, log zerolog.Logger) *Presenter {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 500 * time.Millisecond
	}
	return &Presenter{
		deck:         d,
		nav:          nav.New(d.Len()),
		input:        input,
		session:      session,
		renderer:     renderer,
		opts:         opts,
		log:          log,
		timerVisible: opts.TimerVisible,
	}
}

// Navigator exposes the position for inspection.
func (p *Presenter) Navigator() *nav.Navigator {
	return p.nav
}

// Run takes the terminal, shows the splash and loops until quit or ctx is
// done. The terminal is restored on every return path.
func (p *Presenter) Run(ctx context.Context) (err error) {
	if err := p.session.Acquire(); err != nil {
		return fmt.Errorf("acquire terminal: %w", err)
	}
	defer func() {
		err = errors.Join(err, p.session.Close())
	}()

	p.start = p.opts.Now()
	if err := p.renderer.Splash(SplashText); err != nil {
		return fmt.Errorf("draw splash: %w", err)
	}
	if err := p.renderer.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	for {
		if ctx.Err() != nil {
			p.log.Debug().Err(ctx.Err()).Msg("presentation cancelled")
			return p.session.Release()
		}

		quit, err := p.step()
		if err != nil {
			return err
		}
		if quit {
			p.log.Debug().Int("position", p.nav.Position()).Msg("presentation quit")
			return p.session.Release()
		}
	}
}

// step runs one loop iteration and reports whether the user quit.
func (p *Presenter) step() (bool, error) {
	key, ok, err := p.input.Poll(p.opts.PollInterval)
	if err != nil {
		return false, fmt.Errorf("read input: %w", err)
	}

	if ok {
		action := p.opts.Keys.Resolve(key)
		p.log.Debug().Str("key", string(key)).Stringer("action", action).Msg("key")

		switch action {
		case ActionNext:
			if p.nav.Advance() {
				if err := p.repaint(); err != nil {
					return false, err
				}
			}
		case ActionPrev:
			if p.nav.Retreat() {
				if err := p.repaint(); err != nil {
					return false, err
				}
			}
		case ActionTimer:
			p.timerVisible = !p.timerVisible
		case ActionSuspend:
			if err := p.session.Suspend(); err != nil {
				return false, fmt.Errorf("suspend: %w", err)
			}
			if err := p.redraw(); err != nil {
				return false, err
			}
		case ActionQuit:
			return true, nil
		}
	}

	p.renderer.Timer(p.opts.Now().Sub(p.start), p.timerVisible)
	if err := p.renderer.Flush(); err != nil {
		return false, fmt.Errorf("flush: %w", err)
	}
	return false, nil
}

func (p *Presenter) repaint() error {
	idx, ok := p.nav.Current()
	if !ok {
		return nil
	}
	if err := p.session.BeginRepaint(); err != nil {
		return err
	}
	if err := p.renderer.Slide(p.deck.Slide(idx), p.nav.Position(), p.nav.Total()); err != nil {
		return fmt.Errorf("draw slide %d: %w", p.nav.Position(), err)
	}
	return nil
}

// redraw restores whatever was on screen before a resume cleared it.
func (p *Presenter) redraw() error {
	if _, ok := p.nav.Current(); ok {
		return p.repaint()
	}
	return p.renderer.Splash(SplashText)
}
