package content

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNotesMissing is returned when the notes pattern matches no file.
var ErrNotesMissing = errors.New("notes file not found")

// ResolveNotes expands a path or glob pattern into the files it names,
// sorted lexically. Directories are skipped.
func ResolveNotes(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("notes pattern %q: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, m)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotesMissing, pattern)
	}

	sort.Strings(files)
	return files, nil
}

// Notes reads the newline-delimited notes shown on the closing slide.
type Notes struct {
	Pattern string
}

// Lines returns the lines of every matched file, in file order.
// A trailing newline at the end of a file does not produce an empty line.
func (n Notes) Lines() ([]string, error) {
	files, err := ResolveNotes(n.Pattern)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read notes: %w", err)
		}
		lines = append(lines, SplitLines(string(data))...)
	}
	return lines, nil
}

// SplitLines splits text on newlines, dropping carriage returns and tabs
// (which would desync column math) and a single trailing empty line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\t", "    ")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
