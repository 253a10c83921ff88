package terminal

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key is the canonical name of a key press: a single printable character
// ("n", "?") or a named key ("space", "enter", "ctrl+z", "left").
type Key string

// Named keys.
const (
	KeyNone      Key = ""
	KeyEnter     Key = "enter"
	KeySpace     Key = "space"
	KeyTab       Key = "tab"
	KeyEsc       Key = "esc"
	KeyBackspace Key = "backspace"
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyRight     Key = "right"
	KeyLeft      Key = "left"
	KeyHome      Key = "home"
	KeyEnd       Key = "end"
	KeyPgUp      Key = "pgup"
	KeyPgDown    Key = "pgdown"
)

var namedKeys = map[Key]struct{}{
	KeyEnter: {}, KeySpace: {}, KeyTab: {}, KeyEsc: {}, KeyBackspace: {},
	KeyUp: {}, KeyDown: {}, KeyRight: {}, KeyLeft: {},
	KeyHome: {}, KeyEnd: {}, KeyPgUp: {}, KeyPgDown: {},
}

var keyAliases = map[string]Key{
	" ":          KeySpace,
	"return":     KeyEnter,
	"escape":     KeyEsc,
	"del":        KeyBackspace,
	"pageup":     KeyPgUp,
	"pagedown":   KeyPgDown,
	"ctrl+i":     KeyTab,
	"ctrl+m":     KeyEnter,
	"ctrl+j":     KeyEnter,
	"ctrl+h":     KeyBackspace,
	"ctrl+[":     KeyEsc,
	"ctrl+@":     "ctrl+space",
	"ctrl+space": "ctrl+space",
}

// csiFinals maps the final byte of a parameterless CSI or SS3 sequence.
var csiFinals = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// csiTildes maps the numeric parameter of "ESC [ n ~" sequences.
var csiTildes = map[string]Key{
	"1": KeyHome,
	"4": KeyEnd,
	"5": KeyPgUp,
	"6": KeyPgDown,
	"7": KeyHome,
	"8": KeyEnd,
}

// ParseKey normalizes a key name from configuration. Single characters are
// case sensitive; named keys are not. Both "ctrl+z", "ctrl-z" and "^Z" are
// accepted for control keys.
func ParseKey(name string) (Key, error) {
	if name == "" {
		return KeyNone, fmt.Errorf("empty key name")
	}
	if k, ok := keyAliases[name]; ok {
		return k, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if !unicode.IsPrint(r) {
			return KeyNone, fmt.Errorf("key %q is not printable", name)
		}
		return Key(name), nil
	}

	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) == 2 && n[0] == '^' {
		n = "ctrl+" + n[1:]
	}
	n = strings.Replace(n, "ctrl-", "ctrl+", 1)

	if k, ok := keyAliases[n]; ok {
		return k, nil
	}
	if _, ok := namedKeys[Key(n)]; ok {
		return Key(n), nil
	}
	if rest, ok := strings.CutPrefix(n, "ctrl+"); ok && len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'z' {
		return Key(n), nil
	}

	return KeyNone, fmt.Errorf("unknown key %q", name)
}

// DecodeKey decodes the first key press in p and reports how many bytes it
// used. Unrecognized input yields KeyNone with a non-zero length so callers
// always make progress. An empty p returns (KeyNone, 0).
func DecodeKey(p []byte) (Key, int) {
	if len(p) == 0 {
		return KeyNone, 0
	}

	b := p[0]
	switch {
	case b == '\r' || b == '\n':
		return KeyEnter, 1
	case b == '\t':
		return KeyTab, 1
	case b == ' ':
		return KeySpace, 1
	case b == 0x7f || b == 0x08:
		return KeyBackspace, 1
	case b == 0x00:
		return "ctrl+space", 1
	case b == 0x1b:
		return decodeEscape(p)
	case b < 0x20:
		if b <= 0x1a {
			return Key("ctrl+" + string(rune('a'+b-1))), 1
		}
		return KeyNone, 1
	case b < utf8.RuneSelf:
		return Key(string(rune(b))), 1
	}

	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return KeyNone, size
	}
	return Key(string(r)), size
}

// decodeEscape handles ESC on its own and CSI/SS3 sequences. Sequences it
// does not know are swallowed whole.
func decodeEscape(p []byte) (Key, int) {
	if len(p) == 1 {
		return KeyEsc, 1
	}

	switch p[1] {
	case 'O':
		if len(p) < 3 {
			return KeyEsc, 2
		}
		return csiFinals[p[2]], 3
	case '[':
		end := 2
		for end < len(p) {
			c := p[end]
			if c >= 0x40 && c <= 0x7e {
				break
			}
			end++
		}
		if end >= len(p) {
			return KeyNone, len(p)
		}

		params := string(p[2:end])
		final := p[end]
		if final == '~' {
			return csiTildes[params], end + 1
		}
		if params == "" || params == "1" {
			return csiFinals[final], end + 1
		}
		return KeyNone, end + 1
	}

	return KeyEsc, 1
}
