package deck

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/pitch/internal/core/blockart"
	"github.com/hay-kot/pitch/internal/core/content"
	"github.com/hay-kot/pitch/internal/core/styles"
)

// fakeArt returns a stencil with inked rows equal to the requested height
// minus shrink, padded by one blank row above and below.
type fakeArt struct {
	width  int
	shrink int
	err    error
	calls  []int
}

func (f *fakeArt) Rasterize(text string, height int) (blockart.Stencil, error) {
	f.calls = append(f.calls, height)
	if f.err != nil {
		return blockart.Stencil{}, f.err
	}
	blank := strings.Repeat(" ", f.width)
	rows := []string{blank}
	for range max(height-f.shrink, 0) {
		rows = append(rows, strings.Repeat("*", f.width))
	}
	rows = append(rows, blank)
	return blockart.Stencil{Rows: rows}, nil
}

func mustCanvas(t *testing.T, w, h int) Canvas {
	t.Helper()
	c, err := NewCanvas(w, h)
	require.NoError(t, err)
	return c
}

func ys(s Slide) []int {
	out := make([]int, len(s.Lines))
	for i, l := range s.Lines {
		out[i] = l.Y
	}
	return out
}

func TestNewCanvas(t *testing.T) {
	c := mustCanvas(t, 80, 20)
	assert.Equal(t, Canvas{Width: 80, Height: 16, TermHeight: 20}, c)

	_, err := NewCanvas(10, 5)
	require.ErrorIs(t, err, ErrCanvasTooSmall)

	_, err = NewCanvas(80, BottomOffset+2)
	require.ErrorIs(t, err, ErrCanvasTooSmall)
}

func TestSlide_Color(t *testing.T) {
	s := Slide{Lines: []Line{{Color: "1"}, {Color: "2"}}}
	assert.Equal(t, "1", string(s.Color()))
	assert.Empty(t, string(Slide{}.Color()))
}

func TestDeck_IsACopy(t *testing.T) {
	slides := []Slide{{Lines: []Line{{Content: "a"}}}}
	d := New(slides...)
	slides[0] = Slide{}

	require.Equal(t, 1, d.Len())
	assert.Equal(t, "a", d.Slide(0).Lines[0].Content)
}

func TestBanner(t *testing.T) {
	canvas := mustCanvas(t, 80, 60)

	t.Run("fallback below minimum height", func(t *testing.T) {
		art := &fakeArt{width: 10}
		rows, ok := NewLayout(canvas, art).Banner("TODO!", 5)
		assert.False(t, ok)
		assert.Equal(t, []string{"TODO!"}, rows)
	})

	t.Run("measures true height not requested height", func(t *testing.T) {
		art := &fakeArt{width: 10, shrink: 4}
		rows, ok := NewLayout(canvas, art).Banner("TODO!", 15)
		assert.False(t, ok, "15 requested but only 11 inked rows")
		assert.Equal(t, []string{"TODO!"}, rows)
	})

	t.Run("accepts and strips blank rows", func(t *testing.T) {
		art := &fakeArt{width: 10}
		rows, ok := NewLayout(canvas, art).Banner("TODO!", 14)
		require.True(t, ok)
		assert.Len(t, rows, 14)
		for _, r := range rows {
			assert.False(t, blockart.IsBlank(r))
		}
	})

	t.Run("too wide", func(t *testing.T) {
		art := &fakeArt{width: 80 - ContentMargin + 1}
		rows, ok := NewLayout(canvas, art).Banner("TODO!", 20)
		assert.False(t, ok)
		assert.Equal(t, []string{"TODO!"}, rows)
	})

	t.Run("underflow skips rasterizing", func(t *testing.T) {
		art := &fakeArt{width: 10}
		rows, ok := NewLayout(canvas, art).Banner("TODO!", -3)
		assert.False(t, ok)
		assert.Equal(t, []string{"TODO!"}, rows)
		assert.Empty(t, art.calls)
	})

	t.Run("rasterizer error", func(t *testing.T) {
		art := &fakeArt{err: errors.New("no font")}
		_, ok := NewLayout(canvas, art).Banner("TODO!", 30)
		assert.False(t, ok)
	})

	t.Run("no rasterizer", func(t *testing.T) {
		rows, ok := NewLayout(canvas, nil).Banner("TODO!", 30)
		assert.False(t, ok)
		assert.Equal(t, []string{"TODO!"}, rows)
	})
}

func TestBanner_RealFontFallsBackOnSmallBudget(t *testing.T) {
	r, err := blockart.New()
	require.NoError(t, err)

	rows, ok := NewLayout(mustCanvas(t, 80, 20), r).Banner("TODO!", 5)
	assert.False(t, ok)
	assert.Equal(t, []string{"TODO!"}, rows)
}

func TestPlace_DropsRowsOffCanvas(t *testing.T) {
	l := NewLayout(mustCanvas(t, 80, 20), nil)

	lines := l.Place([]string{"a", "b", "c", "d"}, 14, Style{Color: "3"})
	assert.Equal(t, []int{14, 15}, []int{lines[0].Y, lines[1].Y})
	assert.Len(t, lines, 2)

	lines = l.Place([]string{"a", "b"}, -1, Style{})
	require.Len(t, lines, 1)
	assert.Equal(t, Line{Y: 0, Content: "b"}, lines[0])
}

func TestPhrases_Centered(t *testing.T) {
	l := NewLayout(mustCanvas(t, 80, 20), nil)
	anim := &Animation{Delay: time.Millisecond}

	s := l.Phrases([]string{"Title", "one", "two"}, Style{Color: "6", Animate: anim})

	assert.Equal(t, []int{7, 8, 9}, ys(s))
	assert.Equal(t, []string{"Title", "* one", "* two"}, s.Text())
	for _, line := range s.Lines {
		assert.Equal(t, "6", string(line.Color))
		assert.Same(t, anim, line.Animate)
	}
}

func TestPhrases_ClampedToCanvas(t *testing.T) {
	l := NewLayout(mustCanvas(t, 80, 10), nil)

	phrases := make([]string, 40)
	for i := range phrases {
		phrases[i] = "x"
	}
	s := l.Phrases(phrases, Style{})
	assert.Len(t, s.Lines, 6)
	for _, line := range s.Lines {
		assert.True(t, l.Canvas().Contains(line.Y))
	}

	assert.Empty(t, l.Phrases(nil, Style{}).Lines)
}

func TestHeaderSlide_Fallback(t *testing.T) {
	art := &fakeArt{width: 20}
	l := NewLayout(mustCanvas(t, 80, 20), art)

	s := l.HeaderSlide("TODO!", []string{"a", "b", "c"}, Style{Color: "2"})

	require.Equal(t, []int{16 - (3 + 2*ContentMargin)}, art.calls)
	assert.Equal(t, []string{"TODO!", "a", "b", "c"}, s.Text())
	assert.Equal(t, []int{ContentMargin, 7, 8, 9}, ys(s))
}

func TestHeaderSlide_Art(t *testing.T) {
	art := &fakeArt{width: 20}
	l := NewLayout(mustCanvas(t, 80, 64), art)

	s := l.HeaderSlide("TODO!", []string{"a", "b"}, Style{Color: "2", Animate: &Animation{Delay: 1}})

	budget := 60 - (2 + 2*ContentMargin)
	require.Len(t, s.Lines, budget+2)
	assert.Equal(t, ContentMargin, s.Lines[0].Y)
	assert.Nil(t, s.Lines[0].Animate, "header art never animates")

	last := s.Lines[budget-1].Y
	assert.Equal(t, last+1+TextGap, s.Lines[budget].Y)
	assert.Equal(t, "a", s.Lines[budget].Content)
}

func TestHeaderSlide_UnderflowStillContained(t *testing.T) {
	l := NewLayout(mustCanvas(t, 80, 20), &fakeArt{width: 10})

	notes := make([]string, 50)
	for i := range notes {
		notes[i] = "note"
	}
	s := l.HeaderSlide("TODO!", notes, Style{})

	assert.Equal(t, "TODO!", s.Lines[0].Content)
	for _, line := range s.Lines {
		assert.True(t, l.Canvas().Contains(line.Y), "row %d", line.Y)
	}
}

func TestClockSlide(t *testing.T) {
	t.Run("fallback on small canvas", func(t *testing.T) {
		l := NewLayout(mustCanvas(t, 80, 20), &fakeArt{width: 20})
		s := l.ClockSlide("The end", "09:41", Style{Color: "5"}, &Animation{Delay: 1})

		assert.Equal(t, []string{"The end", "09:41"}, s.Text())
		assert.Equal(t, []int{5, 8}, ys(s))
		assert.Nil(t, s.Lines[1].Animate)
	})

	t.Run("art is centered and animated", func(t *testing.T) {
		art := &fakeArt{width: 30}
		l := NewLayout(mustCanvas(t, 100, 54), art)
		anim := &Animation{Delay: time.Millisecond}
		s := l.ClockSlide("The end", "09:41", Style{Color: "5"}, anim)

		require.Equal(t, []int{20}, art.calls, "budget is round(50/2.5)")
		require.Len(t, s.Lines, 21)
		assert.Equal(t, "The end", s.Lines[0].Content)
		assert.Nil(t, s.Lines[0].Animate)
		assert.Equal(t, 50/2-20/2, s.Lines[1].Y)
		assert.Same(t, anim, s.Lines[1].Animate)
	})
}

type countingPhrases struct{ n int }

func (c *countingPhrases) Phrase() string {
	c.n++
	return "phrase"
}

type staticNotes struct {
	lines []string
	err   error
}

func (s staticNotes) Lines() ([]string, error) { return s.lines, s.err }

func testOptions() Options {
	p, _ := styles.GetPalette(styles.DefaultTheme)
	return Options{
		MinSlides:    3,
		MaxSlides:    5,
		MinLines:     2,
		MaxLines:     4,
		AnimateFrom:  3,
		CharDelay:    8 * time.Millisecond,
		ArtDelay:     time.Millisecond,
		Palette:      p,
		Seed:         42,
		NotesHeader:  "TODO!",
		ClosingTitle: "The end",
	}
}

func testSources() Sources {
	return Sources{
		Phrases: &countingPhrases{},
		Notes:   staticNotes{lines: []string{"ship it", "write docs"}},
		Now:     func() time.Time { return time.Date(2026, 1, 2, 9, 41, 0, 0, time.UTC) },
	}
}

func TestBuild(t *testing.T) {
	canvas := mustCanvas(t, 80, 20)
	opts := testOptions()

	d, err := Build(canvas, testSources(), opts)
	require.NoError(t, err)

	body := d.Len() - 2
	assert.GreaterOrEqual(t, body, opts.MinSlides)
	assert.LessOrEqual(t, body, opts.MaxSlides)

	for i, s := range d.Slides() {
		assert.Equal(t, opts.Palette.SlideColor(i), s.Color(), "slide %d", i)
		for _, line := range s.Lines {
			assert.True(t, canvas.Contains(line.Y))
		}
	}

	for i := range body {
		s := d.Slide(i)
		assert.GreaterOrEqual(t, len(s.Lines), opts.MinLines)
		assert.LessOrEqual(t, len(s.Lines), opts.MaxLines)
		assert.Equal(t, i >= opts.AnimateFrom, s.Lines[0].Animate != nil, "slide %d", i)
	}

	clock := d.Slide(body)
	assert.Equal(t, []string{"The end", "09:41"}, clock.Text())

	notes := d.Slide(body + 1)
	assert.Equal(t, []string{"TODO!", "ship it", "write docs"}, notes.Text())
}

func TestBuild_Deterministic(t *testing.T) {
	canvas := mustCanvas(t, 80, 20)

	a, err := Build(canvas, testSources(), testOptions())
	require.NoError(t, err)
	b, err := Build(canvas, testSources(), testOptions())
	require.NoError(t, err)

	assert.Equal(t, a.Slides(), b.Slides())
}

func TestBuild_FixedCount(t *testing.T) {
	opts := testOptions()
	opts.MinSlides, opts.MaxSlides = 3, 3
	opts.MinLines, opts.MaxLines = 2, 2
	src := testSources()
	phrases := &countingPhrases{}
	src.Phrases = phrases

	d, err := Build(mustCanvas(t, 80, 20), src, opts)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 6, phrases.n)
}

func TestBuild_NoAnimationWhenDelayZero(t *testing.T) {
	opts := testOptions()
	opts.AnimateFrom = 0
	opts.CharDelay = 0

	d, err := Build(mustCanvas(t, 80, 20), testSources(), opts)
	require.NoError(t, err)
	for _, s := range d.Slides() {
		for _, line := range s.Lines {
			assert.Nil(t, line.Animate)
		}
	}
}

func TestBuild_NotesMissing(t *testing.T) {
	src := testSources()
	phrases := &countingPhrases{}
	src.Phrases = phrases
	src.Notes = content.Notes{Pattern: t.TempDir() + "/todo.txt"}

	_, err := Build(mustCanvas(t, 80, 20), src, testOptions())
	require.ErrorIs(t, err, content.ErrNotesMissing)
	assert.Zero(t, phrases.n, "nothing generated after a notes failure")
}
