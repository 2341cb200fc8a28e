package generate

// Format identifies one naming-convention category.
type Format string

const (
	FormatStandard    Format = "standard"    // firstname-first concatenations
	FormatDotted      Format = "dotted"      // dot-separated (john.doe)
	FormatUnderscored Format = "underscored" // underscore-separated (john_doe)
	FormatDashed      Format = "dashed"      // dash-separated (john-doe)
	FormatInitial     Format = "initial"     // initial-based (jdoe)
	FormatReversed    Format = "reversed"    // lastname-first (doe.john)

	// FormatAll is the wildcard enabling every category.
	FormatAll Format = "all"
)

// AllFormats lists the six concrete naming-convention categories.
var AllFormats = []Format{
	FormatStandard,
	FormatDotted,
	FormatUnderscored,
	FormatDashed,
	FormatInitial,
	FormatReversed,
}

// KnownFormat reports whether f is a recognized category or the wildcard.
func KnownFormat(f Format) bool {
	if f == FormatAll {
		return true
	}
	for _, known := range AllFormats {
		if f == known {
			return true
		}
	}
	return false
}

// resolveFormats expands a format selection into the set of enabled
// categories. An empty selection or one containing the wildcard enables
// all six categories.
func resolveFormats(formats []Format) map[Format]bool {
	enabled := make(map[Format]bool, len(AllFormats))
	if len(formats) == 0 {
		formats = []Format{FormatAll}
	}
	for _, f := range formats {
		if f == FormatAll {
			for _, known := range AllFormats {
				enabled[known] = true
			}
			return enabled
		}
		enabled[f] = true
	}
	return enabled
}
