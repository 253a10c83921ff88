// Package render draws slides, the splash line and the timer readout onto
// a cell sink.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hay-kot/pitch/internal/core/deck"
)

// Block is the glyph used for borders and the reveal cursor.
const Block = "█"

// timerWidth is the width of an HH:MM:SS readout.
const timerWidth = 8

// Sink receives positioned text. Nothing is visible until Flush.
type Sink interface {
	Put(x, y int, text string, fg lipgloss.Color)
	MoveTo(x, y int)
	Flush() error
}

// Renderer draws onto a Sink sized by a canvas.
type Renderer struct {
	sink   Sink
	canvas deck.Canvas
	sleep  func(time.Duration)
	skip   func() bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSleep replaces time.Sleep for reveal delays.
func WithSleep(fn func(time.Duration)) Option {
	return func(r *Renderer) { r.sleep = fn }
}

// WithSkip installs a check made after every revealed character. Once it
// returns true the rest of the slide is drawn without delays.
func WithSkip(fn func() bool) Option {
	return func(r *Renderer) { r.skip = fn }
}

// New returns a Renderer drawing to sink.
func New(sink Sink, canvas deck.Canvas, opts ...Option) *Renderer {
	r := &Renderer{
		sink:   sink,
		canvas: canvas,
		sleep:  time.Sleep,
		skip:   func() bool { return false },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Splash shows text alone at mid height. The caller flushes.
func (r *Renderer) Splash(text string) error {
	r.sink.Put(deck.ContentMargin, r.canvas.Height/2, text, "")
	r.park()
	return nil
}

// Slide draws s as slide position of total: border, footer, then
// contents. Animated lines are flushed character by character; the
// finished frame is left for the caller's Flush.
func (r *Renderer) Slide(s deck.Slide, position, total int) error {
	color := s.Color()

	r.border(color)
	r.footer(position, total)

	skipping := false
	for _, line := range s.Lines {
		if !r.canvas.Contains(line.Y) {
			continue
		}

		var err error
		skipping, err = r.line(line, skipping)
		if err != nil {
			return err
		}

		r.sink.Put(r.canvas.Width-deck.BorderWidth, line.Y, Block+Block, color)
	}

	r.park()
	return nil
}

// Timer draws the elapsed time below the canvas, or blanks the same cells
// when hidden. It does not flush.
func (r *Renderer) Timer(elapsed time.Duration, visible bool) {
	text := strings.Repeat(" ", timerWidth)
	if visible {
		text = Clock(elapsed)
	}
	r.sink.Put(deck.ContentMargin, r.canvas.Height+1, text, "")
	r.park()
}

func (r *Renderer) Flush() error {
	return r.sink.Flush()
}

// line draws one line, clipping at the right border. It reports whether
// the reveal was skipped.
func (r *Renderer) line(line deck.Line, skipping bool) (bool, error) {
	limit := r.canvas.Width - deck.BorderWidth
	animate := line.Animate != nil && line.Animate.Delay > 0

	if !animate || skipping {
		r.sink.Put(deck.ContentMargin, line.Y, clip(line.Content, limit-deck.ContentMargin), line.Color)
		return skipping, nil
	}

	x := deck.ContentMargin
	for _, ch := range line.Content {
		w := runewidth.RuneWidth(ch)
		if x+w > limit {
			break
		}

		if !skipping {
			r.sink.Put(x, line.Y, Block, line.Color)
			if err := r.sink.Flush(); err != nil {
				return skipping, fmt.Errorf("reveal: %w", err)
			}
			r.sleep(line.Animate.Delay)
			skipping = r.skip()
		}

		r.sink.Put(x, line.Y, string(ch), line.Color)
		x += w
	}
	return skipping, nil
}

func (r *Renderer) border(color lipgloss.Color) {
	w, h := r.canvas.Width, r.canvas.Height
	full := strings.Repeat(Block, w)
	side := strings.Repeat(Block, deck.BorderWidth)

	r.sink.Put(0, 0, full, color)
	for y := 1; y < h-1; y++ {
		r.sink.Put(0, y, side, color)
		r.sink.Put(w-deck.BorderWidth, y, side, color)
	}
	r.sink.Put(0, h-1, full, color)
}

func (r *Renderer) footer(position, total int) {
	r.sink.Put(r.canvas.Width-deck.FooterOffset, r.canvas.Height-3, fmt.Sprintf("%d of %d", position, total), "")
}

// park leaves the cursor on the last terminal row.
func (r *Renderer) park() {
	r.sink.MoveTo(0, r.canvas.TermHeight-1)
}

// Clock formats d as HH:MM:SS. Hours wrap at 100.
func Clock(d time.Duration) string {
	d = max(d, 0).Truncate(time.Second)
	h := int(d/time.Hour) % 100
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// clip truncates s to at most width display columns.
func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}
