package deck

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hay-kot/pitch/internal/core/blockart"
)

// Rasterizer renders text as block art at a target height.
type Rasterizer interface {
	Rasterize(text string, height int) (blockart.Stencil, error)
}

// Style is applied to every line placed in one call.
type Style struct {
	Color   lipgloss.Color
	Animate *Animation
}

// Layout positions content on a canvas.
type Layout struct {
	canvas Canvas
	art    Rasterizer
}

// NewLayout returns a Layout for canvas. A nil art disables block art;
// every header then uses the plain-text fallback.
func NewLayout(canvas Canvas, art Rasterizer) *Layout {
	return &Layout{canvas: canvas, art: art}
}

func (l *Layout) Canvas() Canvas {
	return l.canvas
}

// Banner renders text as block art within budget rows. It returns the
// non-blank stencil rows and true, or text as a single row and false when
// the art would be unreadable, too wide, or the budget has underflowed.
func (l *Layout) Banner(text string, budget int) ([]string, bool) {
	fallback := []string{text}
	if l.art == nil || budget <= 0 {
		return fallback, false
	}

	st, err := l.art.Rasterize(text, budget)
	if err != nil {
		return fallback, false
	}

	// The requested height is only a target; judge the stencil as drawn.
	st = st.WithoutBlankRows()
	if st.Height() <= MinArtHeight || st.Width() > l.canvas.Width-ContentMargin {
		return fallback, false
	}
	return st.Rows, true
}

// Place assigns rows to consecutive lines starting at y0. Rows falling off
// the canvas are dropped.
func (l *Layout) Place(rows []string, y0 int, style Style) []Line {
	lines := make([]Line, 0, len(rows))
	for i, row := range rows {
		y := y0 + i
		if !l.canvas.Contains(y) {
			continue
		}
		lines = append(lines, Line{Y: y, Content: row, Animate: style.Animate, Color: style.Color})
	}
	return lines
}

// Phrases centers phrases vertically. The first is a plain title, the
// rest are bulleted.
func (l *Layout) Phrases(phrases []string, style Style) Slide {
	n := min(len(phrases), l.canvas.Height)
	if n == 0 {
		return Slide{}
	}

	rows := make([]string, n)
	for i, p := range phrases[:n] {
		if i == 0 {
			rows[i] = p
			continue
		}
		rows[i] = "* " + p
	}

	y0 := l.canvas.Height/2 - n/2
	return Slide{Lines: l.Place(rows, y0, style)}
}

// HeaderSlide draws header as block art from the top margin with body
// underneath. The art budget is whatever height the body and both margins
// leave over.
func (l *Layout) HeaderSlide(header string, body []string, style Style) Slide {
	budget := l.canvas.Height - (len(body) + 2*ContentMargin)
	rows, _ := l.Banner(header, budget)

	lines := l.Place(rows, ContentMargin, Style{Color: style.Color})
	next := ContentMargin + len(rows) + TextGap
	lines = append(lines, l.Place(body, next, style)...)
	return Slide{Lines: lines}
}

// ClockSlide centers a title above clock text drawn as block art at
// two fifths of the canvas height. artAnimate applies only when the art
// is used.
func (l *Layout) ClockSlide(title, clock string, style Style, artAnimate *Animation) Slide {
	budget := int(math.Round(float64(l.canvas.Height) / 2.5))
	rows, isArt := l.Banner(clock, budget)

	artStyle := Style{Color: style.Color}
	if isArt {
		artStyle.Animate = artAnimate
	}

	y0 := l.canvas.Height/2 - len(rows)/2
	titleY := max(y0-1-TextGap, 0)

	lines := l.Place([]string{title}, titleY, style)
	lines = append(lines, l.Place(rows, titleY+1+TextGap, artStyle)...)
	return Slide{Lines: lines}
}

// Fits reports whether every line of s lies on the canvas and within the
// text width.
func (l *Layout) Fits(s Slide) bool {
	for _, line := range s.Lines {
		if !l.canvas.Contains(line.Y) {
			return false
		}
		if runewidth.StringWidth(line.Content) > l.canvas.TextWidth() {
			return false
		}
	}
	return true
}
