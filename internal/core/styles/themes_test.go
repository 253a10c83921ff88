package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames_Sorted(t *testing.T) {
	names := ThemeNames()
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, DefaultTheme)
}

func TestPalettes_HaveSlideColors(t *testing.T) {
	for _, name := range ThemeNames() {
		p, ok := GetPalette(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, p.Slides, "theme %s has no slide colors", name)
	}
}

func TestPalette_SlideColorCycles(t *testing.T) {
	p := Palette{Slides: []lipgloss.Color{"1", "2", "3"}}

	assert.Equal(t, lipgloss.Color("1"), p.SlideColor(0))
	assert.Equal(t, lipgloss.Color("3"), p.SlideColor(2))
	assert.Equal(t, lipgloss.Color("1"), p.SlideColor(3))
	assert.Equal(t, lipgloss.Color("2"), p.SlideColor(7))
}

func TestPalette_SlideColorEmpty(t *testing.T) {
	p := Palette{Foreground: "7"}
	assert.Equal(t, lipgloss.Color("7"), p.SlideColor(4))
}

func TestGetPalette_Unknown(t *testing.T) {
	_, ok := GetPalette("does-not-exist")
	assert.False(t, ok)
}
