package vectorizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// minTokenLen drops one-letter words such as "a" and "I".
const minTokenLen = 2

// Tokenize lowercases text, strips accents and control characters, and
// returns its word tokens in order. A word is a maximal run of letters,
// digits, or underscores at least minTokenLen runes long.
func Tokenize(text string) []string {
	text = cleanText(text)
	text = strings.ToLower(text)
	text = stripAccents(text)

	var tokens []string
	var cur strings.Builder
	n := 0
	flush := func() {
		if n >= minTokenLen {
			tokens = append(tokens, cur.String())
		}
		cur.Reset()
		n = 0
	}
	for _, r := range text {
		if isWordRune(r) {
			cur.WriteRune(r)
			n++
			continue
		}
		flush()
	}
	flush()
	return tokens
}

// cleanText removes NUL, replacement and control characters.
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == 0 || r == 0xFFFD || isControl(r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripAccents removes combining diacritical marks after NFD normalization.
func stripAccents(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return unicode.IsControl(r)
}
