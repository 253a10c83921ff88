// Package blockart renders short strings as large block-letter stencils by
// rasterizing a TrueType font and thresholding the coverage of each pixel.
package blockart

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DrawChar is the glyph used for inked pixels.
const DrawChar = '*'

// coverageThreshold is the minimum alpha for a pixel to count as inked.
const coverageThreshold = 0x80

// ErrHeight is returned when the requested height cannot hold any glyph.
var ErrHeight = errors.New("target height must be positive")

// Rasterizer turns text into stencils. A Rasterizer is not safe for
// concurrent use.
type Rasterizer struct {
	font *opentype.Font
	ink  rune
}

// New returns a Rasterizer using the bundled Go Bold font.
func New() (*Rasterizer, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Rasterizer{font: f, ink: DrawChar}, nil
}

// Rasterize renders text with a font whose em size is height pixels, one
// terminal cell per pixel. The requested height is a target: the stencil
// also carries the font's ascender and descender rows, so callers must
// measure the result instead of trusting the request.
func (r *Rasterizer) Rasterize(text string, height int) (Stencil, error) {
	if height <= 0 {
		return Stencil{}, ErrHeight
	}
	if strings.TrimSpace(text) == "" {
		return Stencil{}, nil
	}

	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(height),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return Stencil{}, fmt.Errorf("create face: %w", err)
	}
	defer func() { _ = face.Close() }()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	rows := ascent + metrics.Descent.Ceil()

	d := &font.Drawer{Face: face}
	cols := d.MeasureString(text).Ceil()
	if cols <= 0 || rows <= 0 {
		return Stencil{}, nil
	}

	img := image.NewAlpha(image.Rect(0, 0, cols, rows))
	d.Dst = img
	d.Src = image.Opaque
	d.Dot = fixed.P(0, ascent)
	d.DrawString(text)

	out := make([]string, rows)
	var b strings.Builder
	for y := range rows {
		b.Reset()
		for x := range cols {
			if img.AlphaAt(x, y).A >= coverageThreshold {
				b.WriteRune(r.ink)
			} else {
				b.WriteByte(' ')
			}
		}
		out[y] = b.String()
	}

	return Stencil{Rows: out}, nil
}
