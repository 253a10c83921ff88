package deck

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hay-kot/pitch/internal/core/styles"
)

// ClockFormat is the layout of the clock drawn on the closing slide.
const ClockFormat = "15:04"

// PhraseSource produces one short phrase per call.
type PhraseSource interface {
	Phrase() string
}

// NotesSource produces the lines of the notes slide.
type NotesSource interface {
	Lines() ([]string, error)
}

// Sources are the collaborators that supply slide content.
type Sources struct {
	Phrases PhraseSource
	Notes   NotesSource
	// Art may be nil, in which case every header falls back to plain text.
	Art Rasterizer
	// Now defaults to time.Now.
	Now func() time.Time
}

// Options control deck generation.
type Options struct {
	MinSlides int
	MaxSlides int
	MinLines  int
	MaxLines  int
	// AnimateFrom is the index of the first body slide that reveals its
	// text character by character.
	AnimateFrom int
	CharDelay   time.Duration
	ArtDelay    time.Duration
	Palette     styles.Palette
	Seed        uint64

	NotesHeader  string
	ClosingTitle string
}

// Build generates a deck: a random number of phrase slides followed by a
// clock slide and a notes slide. Notes are read before anything else so a
// missing notes source fails without doing other work.
func Build(canvas Canvas, src Sources, opts Options) (*Deck, error) {
	notes, err := src.Notes.Lines()
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}
	if src.Phrases == nil {
		return nil, fmt.Errorf("no phrase source")
	}

	now := src.Now
	if now == nil {
		now = time.Now
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	layout := NewLayout(canvas, src.Art)

	count := between(rng, opts.MinSlides, opts.MaxSlides)
	slides := make([]Slide, 0, count+2)

	for i := range count {
		n := between(rng, opts.MinLines, opts.MaxLines)
		phrases := make([]string, n)
		for j := range phrases {
			phrases[j] = src.Phrases.Phrase()
		}

		style := Style{Color: opts.Palette.SlideColor(i)}
		if i >= opts.AnimateFrom && opts.CharDelay > 0 {
			style.Animate = &Animation{Delay: opts.CharDelay}
		}
		slides = append(slides, layout.Phrases(phrases, style))
	}

	var artAnimate *Animation
	if opts.ArtDelay > 0 {
		artAnimate = &Animation{Delay: opts.ArtDelay}
	}
	slides = append(slides, layout.ClockSlide(
		opts.ClosingTitle,
		now().Format(ClockFormat),
		Style{Color: opts.Palette.SlideColor(len(slides))},
		artAnimate,
	))

	slides = append(slides, layout.HeaderSlide(
		opts.NotesHeader,
		notes,
		Style{Color: opts.Palette.SlideColor(len(slides))},
	))

	return New(slides...), nil
}

// between returns a uniform value in [lo, hi]; hi below lo yields lo.
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
