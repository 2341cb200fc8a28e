package generate

import "strings"

// leetTable maps letters to their leet-speak substitution characters.
// Every substitution is a single character, so variants keep the length
// of their source string.
var leetTable = []struct {
	letter string
	subs   []string
}{
	{"a", []string{"4", "@"}},
	{"e", []string{"3"}},
	{"i", []string{"1", "!"}},
	{"o", []string{"0"}},
	{"s", []string{"5", "$"}},
	{"t", []string{"7"}},
	{"l", []string{"1"}},
	{"g", []string{"9"}},
}

// LeetVariants produces one variant per (username, letter, substitution)
// combination, replacing only the first occurrence of the letter. A single
// substitution per variant keeps guesses spread out instead of fully
// leeting each string. Usernames with no table letters contribute nothing.
// Only the new variants are returned; the caller merges them.
func LeetVariants(base Set) Set {
	out := NewSet()
	for username := range base {
		for _, entry := range leetTable {
			if !strings.Contains(username, entry.letter) {
				continue
			}
			for _, sub := range entry.subs {
				out.Add(strings.Replace(username, entry.letter, sub, 1))
			}
		}
	}
	return out
}
