package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines the colors of one presentation theme.
type Palette struct {
	// Slides are handed out one per slide, cycling.
	Slides     []lipgloss.Color
	Primary    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "classic"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	// ANSI colors, readable on any terminal background.
	"classic": {
		Slides: []lipgloss.Color{
			lipgloss.Color("6"), // cyan
			lipgloss.Color("5"), // magenta
			lipgloss.Color("2"), // green
			lipgloss.Color("1"), // red
			lipgloss.Color("7"), // white
			lipgloss.Color("3"), // yellow
		},
		Primary:    lipgloss.Color("6"),
		Foreground: lipgloss.Color("7"),
		Muted:      lipgloss.Color("8"),
		Success:    lipgloss.Color("2"),
		Warning:    lipgloss.Color("3"),
		Error:      lipgloss.Color("1"),
	},
	"tokyo-night": {
		Slides: []lipgloss.Color{
			lipgloss.Color("#7dcfff"),
			lipgloss.Color("#bb9af7"),
			lipgloss.Color("#9ece6a"),
			lipgloss.Color("#f7768e"),
			lipgloss.Color("#c0caf5"),
			lipgloss.Color("#e0af68"),
		},
		Primary:    lipgloss.Color("#7aa2f7"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Slides: []lipgloss.Color{
			lipgloss.Color("#8ec07c"),
			lipgloss.Color("#d3869b"),
			lipgloss.Color("#b8bb26"),
			lipgloss.Color("#fb4934"),
			lipgloss.Color("#ebdbb2"),
			lipgloss.Color("#fabd2f"),
		},
		Primary:    lipgloss.Color("#83a598"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
	"catppuccin": {
		Slides: []lipgloss.Color{
			lipgloss.Color("#94e2d5"), // Teal
			lipgloss.Color("#cba6f7"), // Mauve
			lipgloss.Color("#a6e3a1"), // Green
			lipgloss.Color("#f38ba8"), // Red
			lipgloss.Color("#cdd6f4"), // Text
			lipgloss.Color("#f9e2af"), // Yellow
		},
		Primary:    lipgloss.Color("#89b4fa"),
		Foreground: lipgloss.Color("#cdd6f4"),
		Muted:      lipgloss.Color("#6c7086"),
		Success:    lipgloss.Color("#a6e3a1"),
		Warning:    lipgloss.Color("#f9e2af"),
		Error:      lipgloss.Color("#f38ba8"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// SlideColor returns the color for the i-th slide of a deck.
func (p Palette) SlideColor(i int) lipgloss.Color {
	if len(p.Slides) == 0 {
		return p.Foreground
	}
	return p.Slides[i%len(p.Slides)]
}
