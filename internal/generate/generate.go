package generate

import (
	"errors"

	"github.com/zierax/usergen/internal/names"
)

// ErrNoUsableNames indicates that no input name survived normalization, so
// the pipeline produced nothing. This is fatal rather than an empty success.
var ErrNoUsableNames = errors.New("no usable names were supplied")

// Options configures one generation pass. The zero value enables all
// format categories with no expansion passes.
type Options struct {
	Formats  []Format
	Suffixes Suffixes
	Leet     bool
	Caps     CapsMode
}

// ForName runs the per-name pipeline: normalization, base variants, then
// the suffix, leet, and capitalization passes. Each pass operates on the
// full set accumulated so far, and originals are always retained. A name
// that normalizes to nothing yields an empty set.
func ForName(raw string, opts Options) Set {
	parts := names.Parse(raw)
	set := Variants(parts, opts.Formats)
	if len(set) == 0 {
		return set
	}

	if !opts.Suffixes.IsZero() {
		set = AppendSuffixes(set, opts.Suffixes)
	}
	if opts.Leet {
		set.Merge(LeetVariants(set))
	}
	if opts.Caps != "" && opts.Caps != CapsNone {
		set.Merge(CapsVariants(set, opts.Caps))
	}
	return set
}

// Aggregate unions the given sets and returns the lexicographically sorted
// sequence. Sorting is unconditional so output is always reproducible.
func Aggregate(sets ...Set) []string {
	union := NewSet()
	for _, s := range sets {
		union.Merge(s)
	}
	return union.Sorted()
}

// Run processes every input name independently and aggregates the results
// into the final deduplicated, sorted wordlist. Names that normalize to
// nothing are skipped; if nothing at all survives, ErrNoUsableNames is
// returned instead of an empty wordlist.
func Run(rawNames []string, opts Options) ([]string, error) {
	sets := make([]Set, 0, len(rawNames))
	for _, raw := range rawNames {
		sets = append(sets, ForName(raw, opts))
	}

	out := Aggregate(sets...)
	if len(out) == 0 {
		return nil, ErrNoUsableNames
	}
	return out, nil
}
