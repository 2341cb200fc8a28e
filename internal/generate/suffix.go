package generate

import "strconv"

// Suffixes configures the optional suffix expansion. Each field is
// independent; all three empty means no expansion.
type Suffixes struct {
	Numbers []int
	Years   []int
	Words   []string
}

// IsZero reports whether no suffix expansion is configured.
func (s Suffixes) IsZero() bool {
	return len(s.Numbers) == 0 && len(s.Years) == 0 && len(s.Words) == 0
}

// suffixSeparators are the joiners used for number and word suffixes.
// The empty separator produces the plain concatenation.
var suffixSeparators = []string{"", ".", "_", "-"}

// AppendSuffixes returns base plus every suffixed variant. Numbers and
// words attach with each separator; years attach bare in both full and
// last-two-digit forms. The two-digit form is always the final two
// characters of the decimal string, never zero padded.
func AppendSuffixes(base Set, spec Suffixes) Set {
	out := make(Set, len(base))
	out.Merge(base)

	for username := range base {
		for _, n := range spec.Numbers {
			num := strconv.Itoa(n)
			for _, sep := range suffixSeparators {
				out.Add(username + sep + num)
			}
		}
		for _, y := range spec.Years {
			year := strconv.Itoa(y)
			out.Add(username + year)
			out.Add(username + lastTwo(year))
		}
		for _, w := range spec.Words {
			for _, sep := range suffixSeparators {
				out.Add(username + sep + w)
			}
		}
	}
	return out
}

// lastTwo returns the final two characters of s, or s itself when shorter.
func lastTwo(s string) string {
	if len(s) <= 2 {
		return s
	}
	return s[len(s)-2:]
}
