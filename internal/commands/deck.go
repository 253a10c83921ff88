package commands

import (
	"fmt"
	"math/rand/v2"

	"github.com/hay-kot/pitch/internal/core/blockart"
	"github.com/hay-kot/pitch/internal/core/config"
	"github.com/hay-kot/pitch/internal/core/content"
	"github.com/hay-kot/pitch/internal/core/deck"
	"github.com/hay-kot/pitch/internal/core/styles"
)

// deckRequest describes a deck to generate.
type deckRequest struct {
	Config *config.Config
	Canvas deck.Canvas
	// Seed overrides the configured seed when non-zero.
	Seed uint64
	// NoArt disables block-art headers.
	NoArt bool
}

// deckID identifies a generated deck in logs; the same seed always
// produces the same deck.
func deckID(seed uint64) string {
	return fmt.Sprintf("%016x", seed)
}

// resolveSeed picks the flag seed, then the configured one, then a random
// one.
func resolveSeed(flagSeed, configSeed uint64) uint64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case configSeed != 0:
		return configSeed
	default:
		return rand.Uint64() | 1
	}
}

// buildDeck generates a deck from configuration. It reads the notes first
// and performs no terminal I/O.
func buildDeck(req deckRequest) (*deck.Deck, uint64, error) {
	cfg := req.Config
	seed := resolveSeed(req.Seed, cfg.Slides.Seed)

	palette, ok := styles.GetPalette(cfg.Theme)
	if !ok {
		return nil, 0, fmt.Errorf("unknown theme %q", cfg.Theme)
	}

	src := deck.Sources{
		Phrases: content.NewPhrases(seed),
		Notes:   content.Notes{Pattern: cfg.Notes},
	}
	if !req.NoArt {
		art, err := blockart.New()
		if err != nil {
			return nil, 0, fmt.Errorf("load block-art font: %w", err)
		}
		src.Art = art
	}

	d, err := deck.Build(req.Canvas, src, deck.Options{
		MinSlides:    cfg.Slides.Min,
		MaxSlides:    cfg.Slides.Max,
		MinLines:     cfg.Slides.MinLines,
		MaxLines:     cfg.Slides.MaxLines,
		AnimateFrom:  cfg.Animation.AnimateFrom,
		CharDelay:    cfg.Animation.CharDelay,
		ArtDelay:     cfg.Animation.ArtDelay,
		Palette:      palette,
		Seed:         seed,
		NotesHeader:  cfg.NotesHeader,
		ClosingTitle: cfg.ClosingTitle,
	})
	if err != nil {
		return nil, 0, err
	}
	return d, seed, nil
}
