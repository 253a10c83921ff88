// Package content provides the text sources a deck is built from: buzzword
// phrases, notes files and the clock.
package content

import (
	"strings"
	"unicode"

	"github.com/brianvoe/gofakeit/v7"
)

// Phrases generates corporate catch phrases such as
// "Multi-tasking auxiliary protocol".
type Phrases struct {
	faker *gofakeit.Faker
}

// NewPhrases returns a generator seeded with seed. The same seed always
// yields the same sequence of phrases.
func NewPhrases(seed uint64) *Phrases {
	return &Phrases{faker: gofakeit.New(seed)}
}

// Phrase returns the next phrase.
func (p *Phrases) Phrase() string {
	words := []string{
		p.faker.BuzzWord(),
		p.faker.HackerAdjective(),
		p.faker.HackerNoun(),
	}
	return capitalize(strings.Join(words, " "))
}

func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
