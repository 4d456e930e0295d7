package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares free text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses any run of whitespace (spaces, tabs, newlines) into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Tokenize splits text into lowercase tokens on every rune that is neither a
// letter nor a digit. Empty tokens are dropped; order and duplicates are kept.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// TokenSet builds a set of normalized tokens from a list of phrases.
// Tokens shorter than minLen runes are skipped.
func TokenSet(phrases []string, minLen int) map[string]struct{} {
	set := make(map[string]struct{})
	for _, p := range phrases {
		for _, tok := range Tokenize(p) {
			if len([]rune(tok)) < minLen {
				continue
			}
			set[tok] = struct{}{}
		}
	}
	return set
}
