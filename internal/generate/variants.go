// Package generate implements the username generation pipeline: base
// variants per naming convention, suffix/leet/capitalization expansion,
// and final aggregation into a sorted wordlist.
package generate

import "github.com/zierax/usergen/internal/names"

// separated describes one separator-based category. The dashed category
// contributes no middle combinations.
var separated = []struct {
	format Format
	sep    string
	middle bool
}{
	{FormatDotted, ".", true},
	{FormatUnderscored, "_", true},
	{FormatDashed, "-", false},
}

// Variants generates the base username set for one name under the enabled
// format categories. Returns an empty set when the first name is empty.
func Variants(parts names.Parts, formats []Format) Set {
	set := NewSet()
	f, m, l := parts.First, parts.Middle, parts.Last
	if f == "" {
		return set
	}
	enabled := resolveFormats(formats)

	if enabled[FormatStandard] {
		set.Add(f) // john
		if l != "" {
			set.Add(f + l) // johndoe
			set.Add(l + f) // doejohn
		}
		if m != "" {
			set.Add(f + m) // johnm
			if l != "" {
				set.Add(f + m + l) // johnmdoe
			}
		}
	}

	for _, cat := range separated {
		if !enabled[cat.format] || l == "" {
			continue
		}
		set.Add(f + cat.sep + l)     // john.doe
		set.Add(l + cat.sep + f)     // doe.john
		set.Add(f[:1] + cat.sep + l) // j.doe
		set.Add(f + cat.sep + l[:1]) // john.d
		if cat.middle && m != "" {
			set.Add(f + cat.sep + m + cat.sep + l)         // john.m.doe
			set.Add(f[:1] + cat.sep + m[:1] + cat.sep + l) // j.m.doe
		}
	}

	if enabled[FormatInitial] && l != "" {
		set.Add(f[:1] + l) // jdoe
		set.Add(l + f[:1]) // doej
		set.Add(f + l[:1]) // johnd
		set.Add(l[:1] + f) // djohn
		if m != "" {
			set.Add(f[:1] + m[:1] + l) // jmdoe
			set.Add(f + m[:1] + l[:1]) // johnmd
		}
	}

	if enabled[FormatReversed] && l != "" {
		set.Add(l)           // doe
		set.Add(l + f)       // doejohn
		set.Add(l + "." + f) // doe.john
		set.Add(l + "_" + f) // doe_john
		set.Add(l + "-" + f) // doe-john
	}

	return set
}
