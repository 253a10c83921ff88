package deck

import (
	"errors"
	"fmt"
)

// Geometry constants, in terminal cells.
const (
	// BottomOffset rows below the canvas are reserved for the timer and the
	// parked cursor.
	BottomOffset = 4
	// ContentMargin is the left margin for slide text and the top margin for
	// block-art headers.
	ContentMargin = 4
	// BorderWidth is the thickness of the left and right border.
	BorderWidth = 2
	// TextGap separates a header from the text that follows it.
	TextGap = 2
	// MinArtHeight is the tallest block art still considered unreadable.
	MinArtHeight = 12
	// FooterOffset places the footer this many columns left of the right edge.
	FooterOffset = 12

	minCanvasWidth  = FooterOffset + ContentMargin + BorderWidth
	minCanvasHeight = 5
)

// ErrCanvasTooSmall is returned when the terminal cannot hold a slide.
var ErrCanvasTooSmall = errors.New("terminal too small to present")

// Canvas is the drawable area of a slide: the full terminal width and the
// terminal height minus BottomOffset.
type Canvas struct {
	Width      int
	Height     int
	TermHeight int
}

// NewCanvas derives the canvas from the terminal size.
func NewCanvas(termWidth, termHeight int) (Canvas, error) {
	c := Canvas{
		Width:      termWidth,
		Height:     termHeight - BottomOffset,
		TermHeight: termHeight,
	}
	if c.Width < minCanvasWidth || c.Height < minCanvasHeight {
		return Canvas{}, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrCanvasTooSmall, termWidth, termHeight, minCanvasWidth, minCanvasHeight+BottomOffset)
	}
	return c, nil
}

// Contains reports whether row y lies on the canvas.
func (c Canvas) Contains(y int) bool {
	return y >= 0 && y < c.Height
}

// TextWidth is the number of columns available to slide text before the
// right border.
func (c Canvas) TextWidth() int {
	return c.Width - BorderWidth - ContentMargin
}
