package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SpecError reports a malformed numeric range or list specification. It is
// raised at profile/flag parse time, before any generation work begins.
type SpecError struct {
	Spec  string
	Cause error
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("malformed specification %q: %v", e.Spec, e.Cause)
}

func (e *SpecError) Unwrap() error {
	return e.Cause
}

func (e *SpecError) Is(target error) bool {
	var specErr *SpecError
	return errors.As(target, &specErr)
}

// ParseIntSpec expands a numeric suffix specification. "A-B" is an
// inclusive integer range, a comma-separated value is an explicit list,
// and anything else is a single literal. An empty specification yields
// nil. Non-integer tokens are a fatal *SpecError.
func ParseIntSpec(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	switch {
	case strings.Contains(spec, "-"):
		bounds := strings.SplitN(spec, "-", 2)
		lo, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
		if err != nil {
			return nil, &SpecError{Spec: spec, Cause: err}
		}
		hi, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			return nil, &SpecError{Spec: spec, Cause: err}
		}
		if hi < lo {
			return nil, &SpecError{Spec: spec, Cause: errors.New("range end precedes range start")}
		}
		values := make([]int, 0, hi-lo+1)
		for n := lo; n <= hi; n++ {
			values = append(values, n)
		}
		return values, nil

	case strings.Contains(spec, ","):
		tokens := strings.Split(spec, ",")
		values := make([]int, 0, len(tokens))
		for _, token := range tokens {
			n, err := strconv.Atoi(strings.TrimSpace(token))
			if err != nil {
				return nil, &SpecError{Spec: spec, Cause: err}
			}
			values = append(values, n)
		}
		return values, nil

	default:
		n, err := strconv.Atoi(spec)
		if err != nil {
			return nil, &SpecError{Spec: spec, Cause: err}
		}
		return []int{n}, nil
	}
}

// ParseWordSpec splits a word suffix specification on commas. Words have
// no range form; blank entries are dropped.
func ParseWordSpec(spec string) []string {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil
	}
	var words []string
	for _, token := range strings.Split(spec, ",") {
		if word := strings.TrimSpace(token); word != "" {
			words = append(words, word)
		}
	}
	return words
}
