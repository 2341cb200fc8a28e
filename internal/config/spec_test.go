package config

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseIntSpec(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		expected    []int
		expectError bool
	}{
		{
			name:     "empty spec",
			spec:     "",
			expected: nil,
		},
		{
			name:     "single literal",
			spec:     "123",
			expected: []int{123},
		},
		{
			name:     "inclusive range",
			spec:     "0-2",
			expected: []int{0, 1, 2},
		},
		{
			name:     "year range",
			spec:     "2020-2024",
			expected: []int{2020, 2021, 2022, 2023, 2024},
		},
		{
			name:     "comma list",
			spec:     "1,2,3",
			expected: []int{1, 2, 3},
		},
		{
			name:     "comma list with spaces",
			spec:     " 7 , 8 ",
			expected: []int{7, 8},
		},
		{
			name:     "single value range",
			spec:     "5-5",
			expected: []int{5},
		},
		{
			name:        "non-integer literal",
			spec:        "abc",
			expectError: true,
		},
		{
			name:        "non-integer range bound",
			spec:        "1-b",
			expectError: true,
		},
		{
			name:        "non-integer list entry",
			spec:        "1,x,3",
			expectError: true,
		},
		{
			name:        "reversed range",
			spec:        "9-3",
			expectError: true,
		},
		{
			name:        "dangling range",
			spec:        "5-",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntSpec(tt.spec)
			if tt.expectError {
				if err == nil {
					t.Fatalf("ParseIntSpec(%q) expected error, got %v", tt.spec, got)
				}
				var specErr *SpecError
				if !errors.As(err, &specErr) {
					t.Errorf("ParseIntSpec(%q) error = %T, want *SpecError", tt.spec, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIntSpec(%q) unexpected error: %v", tt.spec, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseIntSpec(%q) = %v, want %v", tt.spec, got, tt.expected)
			}
		})
	}
}

func TestParseWordSpec(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected []string
	}{
		{
			name:     "empty spec",
			spec:     "",
			expected: nil,
		},
		{
			name:     "single word",
			spec:     "admin",
			expected: []string{"admin"},
		},
		{
			name:     "comma list",
			spec:     "admin,user,test",
			expected: []string{"admin", "user", "test"},
		},
		{
			name:     "blank entries dropped",
			spec:     " admin , ,user ",
			expected: []string{"admin", "user"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseWordSpec(tt.spec)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseWordSpec(%q) = %v, want %v", tt.spec, got, tt.expected)
			}
		})
	}
}

func TestSpecErrorUnwrap(t *testing.T) {
	_, err := ParseIntSpec("not-a-number")
	if err == nil {
		t.Fatal("expected error")
	}
	var specErr *SpecError
	if !errors.As(err, &specErr) {
		t.Fatalf("error = %T, want *SpecError", err)
	}
	if specErr.Spec != "not-a-number" {
		t.Errorf("SpecError.Spec = %q, want %q", specErr.Spec, "not-a-number")
	}
	if specErr.Unwrap() == nil {
		t.Error("SpecError should wrap its cause")
	}
}
