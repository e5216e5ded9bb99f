package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName returns the display form of a contact name: NFC, trimmed,
// inner whitespace collapsed, lowercased and then title-cased.
//
// Title casing upper-cases every letter that starts the string or follows a
// non-letter, so "john_smith" becomes "John_Smith" and "o'neil" becomes "O'Neil".
func NormalizeName(raw string) string {
	s := strings.Join(strings.Fields(norm.NFC.String(raw)), " ")
	if s == "" {
		return ""
	}
	return TitleCase(cases.Lower(language.Und).String(s))
}

// TitleCase upper-cases letters at word starts and lower-cases the rest.
// A word start is any letter not preceded by another letter.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevLetter:
			b.WriteRune(unicode.ToTitle(r))
		case isLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}
