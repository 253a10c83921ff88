package blockart

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Stencil is a rectangular grid of glyph rows rendering a short text in
// enlarged block form. Rows may be entirely blank (ascender and descender
// padding).
type Stencil struct {
	Rows []string
}

// Height returns the number of rows, blank ones included.
func (s Stencil) Height() int {
	return len(s.Rows)
}

// Width returns the display width of the widest row.
func (s Stencil) Width() int {
	w := 0
	for _, row := range s.Rows {
		w = max(w, runewidth.StringWidth(row))
	}
	return w
}

// WithoutBlankRows returns a copy of s without rows made only of whitespace.
func (s Stencil) WithoutBlankRows() Stencil {
	rows := make([]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		if IsBlank(row) {
			continue
		}
		rows = append(rows, row)
	}
	return Stencil{Rows: rows}
}

// String joins the rows with newlines.
func (s Stencil) String() string {
	return strings.Join(s.Rows, "\n")
}

// IsBlank reports whether row contains only whitespace.
func IsBlank(row string) bool {
	return strings.TrimSpace(row) == ""
}
