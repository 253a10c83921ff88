// Package deck lays out slides on the terminal canvas and assembles them
// into an ordered, immutable deck.
package deck

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Animation enables the typewriter reveal for a line; each character is
// preceded by a block glyph held for Delay.
type Animation struct {
	Delay time.Duration
}

// Line is one positioned row of slide text. Y is relative to the canvas
// and always within [0, canvas height).
type Line struct {
	Y       int
	Content string
	Animate *Animation
	Color   lipgloss.Color
}

// Slide is an ordered list of lines, no two sharing a row.
type Slide struct {
	Lines []Line
}

// Color returns the slide's nominal color, used for the border, the footer
// and the row terminators. It is the color of the first line.
func (s Slide) Color() lipgloss.Color {
	if len(s.Lines) == 0 {
		return ""
	}
	return s.Lines[0].Color
}

// Text returns the line contents in order.
func (s Slide) Text() []string {
	out := make([]string, len(s.Lines))
	for i, l := range s.Lines {
		out[i] = l.Content
	}
	return out
}

// Deck is an ordered, immutable sequence of slides.
type Deck struct {
	slides []Slide
}

// New returns a deck holding a copy of slides.
func New(slides ...Slide) *Deck {
	return &Deck{slides: append([]Slide(nil), slides...)}
}

func (d *Deck) Len() int {
	return len(d.slides)
}

// Slide returns the slide at index i. It panics when i is out of range.
func (d *Deck) Slide(i int) Slide {
	return d.slides[i]
}

// Slides returns a copy of the slide list.
func (d *Deck) Slides() []Slide {
	return append([]Slide(nil), d.slides...)
}
