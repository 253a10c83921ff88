package terminal

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/hay-kot/pitch/pkg/utils"
)

// Screen is a buffered cell writer. Nothing reaches the terminal until
// Flush, so the caller decides when a frame becomes visible.
type Screen struct {
	out      io.Writer
	buf      utils.DeferredWriter
	renderer *lipgloss.Renderer
	styles   map[lipgloss.Color]lipgloss.Style
}

// ScreenOption configures a Screen.
type ScreenOption func(*Screen)

// WithColorOutput detects the color profile on f instead of on the
// Screen's writer. Detection only recognizes a terminal through the file
// itself, so wrappers around stdout need this to get colors.
func WithColorOutput(f *os.File) ScreenOption {
	return func(s *Screen) { s.renderer = lipgloss.NewRenderer(f) }
}

// WithColorProfile forces the color profile.
func WithColorProfile(p termenv.Profile) ScreenOption {
	return func(s *Screen) { s.renderer.SetColorProfile(p) }
}

// NewScreen returns a Screen writing to out. Colors are rendered for the
// profile lipgloss detects on out unless an option says otherwise.
func NewScreen(out io.Writer, opts ...ScreenOption) *Screen {
	s := &Screen{
		out:      out,
		renderer: lipgloss.NewRenderer(out),
		styles:   make(map[lipgloss.Color]lipgloss.Style),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ColorProfile reports the profile colors are rendered with.
func (s *Screen) ColorProfile() termenv.Profile {
	return s.renderer.ColorProfile()
}

// Put writes text starting at column x, row y (both zero based). An empty
// fg writes the text unstyled.
func (s *Screen) Put(x, y int, text string, fg lipgloss.Color) {
	s.MoveTo(x, y)
	if fg == "" {
		s.write(text)
		return
	}
	s.write(s.style(fg).Render(text))
}

// MoveTo positions the cursor at column x, row y.
func (s *Screen) MoveTo(x, y int) {
	s.write(ansi.CursorPosition(x+1, y+1))
}

// Clear erases the screen and homes the cursor.
func (s *Screen) Clear() {
	s.write(ansi.EraseEntireScreen + ansi.CursorHomePosition)
}

func (s *Screen) HideCursor() {
	s.write(ansi.HideCursor)
}

func (s *Screen) ShowCursor() {
	s.write(ansi.ShowCursor)
}

// Discard drops everything written since the last Flush.
func (s *Screen) Discard() {
	s.buf.Discard()
}

// Flush writes the pending frame to the terminal.
func (s *Screen) Flush() error {
	return s.buf.Flush(s.out)
}

func (s *Screen) style(fg lipgloss.Color) lipgloss.Style {
	st, ok := s.styles[fg]
	if !ok {
		st = s.renderer.NewStyle().Foreground(fg)
		s.styles[fg] = st
	}
	return st
}

func (s *Screen) write(str string) {
	_, _ = s.buf.WriteString(str)
}
