package generate

import (
	"reflect"
	"testing"

	"github.com/zierax/usergen/internal/names"
)

func TestVariantsStandard(t *testing.T) {
	tests := []struct {
		name     string
		parts    names.Parts
		expected []string
	}{
		{
			name:     "first only",
			parts:    names.Parts{First: "john"},
			expected: []string{"john"},
		},
		{
			name:     "first and last",
			parts:    names.Parts{First: "john", Last: "doe"},
			expected: []string{"doejohn", "john", "johndoe"},
		},
		{
			name:     "first and middle without last",
			parts:    names.Parts{First: "john", Middle: "m"},
			expected: []string{"john", "johnm"},
		},
		{
			name:     "full name",
			parts:    names.Parts{First: "john", Middle: "m", Last: "doe"},
			expected: []string{"doejohn", "john", "johndoe", "johnm", "johnmdoe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Variants(tt.parts, []Format{FormatStandard}).Sorted()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Variants() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestVariantsSeparated(t *testing.T) {
	full := names.Parts{First: "john", Middle: "m", Last: "doe"}

	tests := []struct {
		name     string
		format   Format
		expected []string
	}{
		{
			name:     "dotted includes middle combinations",
			format:   FormatDotted,
			expected: []string{"doe.john", "j.doe", "j.m.doe", "john.d", "john.doe", "john.m.doe"},
		},
		{
			name:     "underscored includes middle combinations",
			format:   FormatUnderscored,
			expected: []string{"doe_john", "j_doe", "j_m_doe", "john_d", "john_doe", "john_m_doe"},
		},
		{
			name:     "dashed skips middle combinations",
			format:   FormatDashed,
			expected: []string{"doe-john", "j-doe", "john-d", "john-doe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Variants(full, []Format{tt.format}).Sorted()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Variants(%s) = %v, want %v", tt.format, got, tt.expected)
			}
		})
	}
}

func TestVariantsInitialAndReversed(t *testing.T) {
	full := names.Parts{First: "john", Middle: "m", Last: "doe"}

	gotInitial := Variants(full, []Format{FormatInitial}).Sorted()
	wantInitial := []string{"djohn", "doej", "jdoe", "jmdoe", "johnd", "johnmd"}
	if !reflect.DeepEqual(gotInitial, wantInitial) {
		t.Errorf("initial variants = %v, want %v", gotInitial, wantInitial)
	}

	gotReversed := Variants(full, []Format{FormatReversed}).Sorted()
	wantReversed := []string{"doe", "doe-john", "doe.john", "doe_john", "doejohn"}
	if !reflect.DeepEqual(gotReversed, wantReversed) {
		t.Errorf("reversed variants = %v, want %v", gotReversed, wantReversed)
	}
}

func TestVariantsWithoutLastName(t *testing.T) {
	// Without a last name, every category except standard contributes
	// nothing; standard still produces the bare first name.
	parts := names.Parts{First: "john"}

	for _, format := range []Format{FormatDotted, FormatUnderscored, FormatDashed, FormatInitial, FormatReversed} {
		if got := Variants(parts, []Format{format}); len(got) != 0 {
			t.Errorf("Variants(%s) without last name = %v, want empty", format, got.Sorted())
		}
	}

	got := Variants(parts, []Format{FormatAll}).Sorted()
	if !reflect.DeepEqual(got, []string{"john"}) {
		t.Errorf("Variants(all) without last name = %v, want [john]", got)
	}
}

func TestVariantsEmptyFirst(t *testing.T) {
	if got := Variants(names.Parts{Last: "doe"}, []Format{FormatAll}); len(got) != 0 {
		t.Errorf("Variants with empty first = %v, want empty", got.Sorted())
	}
}

func TestVariantsWildcard(t *testing.T) {
	parts := names.Parts{First: "john", Last: "doe"}

	all := Variants(parts, []Format{FormatAll}).Sorted()
	unspecified := Variants(parts, nil).Sorted()
	if !reflect.DeepEqual(all, unspecified) {
		t.Errorf("wildcard and unspecified selections differ: %v vs %v", all, unspecified)
	}

	// Wildcard mixed into an explicit selection still enables everything.
	mixed := Variants(parts, []Format{FormatStandard, FormatAll}).Sorted()
	if !reflect.DeepEqual(all, mixed) {
		t.Errorf("wildcard in mixed selection differs: %v vs %v", all, mixed)
	}
}

func TestVariantsNonEmptyForNonEmptyFirst(t *testing.T) {
	parts := names.Parts{First: "x"}
	for _, formats := range [][]Format{nil, {FormatAll}, {FormatStandard}} {
		set := Variants(parts, formats)
		if !set.Contains("x") {
			t.Errorf("Variants(%v) missing the bare first name", formats)
		}
	}
}
