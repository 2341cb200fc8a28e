// Package names normalizes raw personal names into first/middle/last
// components suitable for username generation.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Parts holds the cleaned components of a personal name. After Parse,
// every field contains only lowercase ASCII letters and digits.
type Parts struct {
	First  string
	Middle string
	Last   string
}

// IsZero reports whether no usable first name survived normalization.
// Zero parts contribute no usernames and are skipped by callers.
func (p Parts) IsZero() bool { return p.First == "" }

// Clean lowercases and trims the raw name, strips diacritics, removes every
// character that is not a lowercase ASCII letter, digit, apostrophe, hyphen,
// or whitespace, and collapses whitespace runs to single spaces.
func Clean(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))

	// NFKD decomposition followed by combining-mark removal reduces
	// accented letters to their ASCII base ("José" -> "Jose").
	// Transformers carry state, so the chain is built per call.
	stripMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '\'' || r == '-':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
		}
	}
	return b.String()
}

// Parse splits a raw name into parts. One token is a bare first name, two
// tokens are first and last, and with three or more tokens the second
// becomes the middle and the final one the last; tokens in between are
// discarded. A name that cleans down to nothing yields zero parts.
func Parse(raw string) Parts {
	tokens := strings.Fields(Clean(raw))

	var p Parts
	switch len(tokens) {
	case 0:
	case 1:
		p.First = alnum(tokens[0])
	case 2:
		p.First = alnum(tokens[0])
		p.Last = alnum(tokens[1])
	default:
		p.First = alnum(tokens[0])
		p.Middle = alnum(tokens[1])
		p.Last = alnum(tokens[len(tokens)-1])
	}
	return p
}

// alnum drops anything that is not a lowercase letter or digit. Usernames
// must be pure alphanumeric, so apostrophes and hyphens that survive Clean
// are removed here ("o'brien" -> "obrien").
func alnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
