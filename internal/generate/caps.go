package generate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapsMode selects which capitalization variants are added.
type CapsMode string

const (
	CapsNone  CapsMode = "none"  // no capitalization variants
	CapsFirst CapsMode = "first" // John
	CapsUpper CapsMode = "upper" // JOHN
	CapsAll   CapsMode = "all"   // JOHN, John, and John.Doe title form
)

// AllCapsModes lists the recognized capitalization modes.
var AllCapsModes = []CapsMode{CapsNone, CapsFirst, CapsUpper, CapsAll}

// KnownCapsMode reports whether mode is a recognized capitalization mode.
func KnownCapsMode(mode CapsMode) bool {
	for _, known := range AllCapsModes {
		if mode == known {
			return true
		}
	}
	return false
}

// CapsVariants produces the capitalization variants of base for the given
// mode. CapsNone yields nothing. Only the new variants are returned; the
// caller merges them.
func CapsVariants(base Set, mode CapsMode) Set {
	out := NewSet()
	for username := range base {
		switch mode {
		case CapsFirst:
			out.Add(capitalize(username))
		case CapsUpper:
			out.Add(strings.ToUpper(username))
		case CapsAll:
			out.Add(strings.ToUpper(username))
			out.Add(capitalize(username))
			out.Add(titleCase(username))
		}
	}
	return out
}

// capitalize uppercases the first character and leaves the rest unchanged.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// titleCase uppercases the first letter of every separator-delimited
// segment, so "john.doe" becomes "John.Doe". Segments split on '.', '_',
// '-', and whitespace.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfSegment := true
	for _, r := range s {
		switch {
		case r == '.' || r == '_' || r == '-' || unicode.IsSpace(r):
			startOfSegment = true
			b.WriteRune(r)
		case startOfSegment:
			b.WriteRune(unicode.ToUpper(r))
			startOfSegment = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
