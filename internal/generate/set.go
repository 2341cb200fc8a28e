package generate

import "sort"

// Set is a collection of candidate usernames with uniqueness enforced.
// It carries no intrinsic order; ordering is imposed only by Sorted.
type Set map[string]struct{}

// NewSet returns an empty username set.
func NewSet() Set { return make(Set) }

// Add inserts a username into the set.
func (s Set) Add(username string) { s[username] = struct{}{} }

// Merge inserts every member of other into the set.
func (s Set) Merge(other Set) {
	for username := range other {
		s[username] = struct{}{}
	}
}

// Contains reports whether username is a member of the set.
func (s Set) Contains(username string) bool {
	_, ok := s[username]
	return ok
}

// Sorted returns the members in lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for username := range s {
		out = append(out, username)
	}
	sort.Strings(out)
	return out
}
