package engine

import (
	"regexp"
	"strings"
)

// portugueseLetterClass is the locale-specific retention set used when
// tokenizing descriptions: word characters plus the accented letters
// Brazilian-Portuguese descriptions need. Porting the engine to another
// language means swapping this constant together with the taxonomy data,
// not the algorithm.
const portugueseLetterClass = `\wàáâãäéêëíîïóôõöúûüç`

// minTokenLength is the shortest token (in runes) kept for learning.
// Shorter tokens are too generic to carry category signal.
const minTokenLength = 3

var tokenSeparator = regexp.MustCompile(`[^` + portugueseLetterClass + `]+`)

// Tokenize lower-cases the description, strips everything outside the
// locale letter class, and returns the tokens long enough to learn from.
func Tokenize(description string) []string {
	lowered := strings.ToLower(strings.TrimSpace(description))
	if lowered == "" {
		return nil
	}

	var tokens []string
	for _, token := range tokenSeparator.Split(lowered, -1) {
		if len([]rune(token)) >= minTokenLength {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
