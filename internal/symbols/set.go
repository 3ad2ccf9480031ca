package symbols

import (
	"slices"
	"strings"
)

// Set is a collection of unicode scalar values with set semantics.
// The zero value is an empty set ready to use.
type Set struct {
	m map[rune]struct{}
}

// NewSet returns a set holding every rune of s.
func NewSet(s string) *Set {
	set := &Set{}
	set.AddString(s)
	return set
}

// AddString adds each rune of s. Runes already present are ignored.
func (s *Set) AddString(str string) {
	if s.m == nil {
		s.m = make(map[rune]struct{}, len(str))
	}
	for _, r := range str {
		s.m[r] = struct{}{}
	}
}

// RemoveString removes each rune of str. Absent runes are ignored.
func (s *Set) RemoveString(str string) {
	for _, r := range str {
		delete(s.m, r)
	}
}

// Contains reports whether r is in the set.
func (s *Set) Contains(r rune) bool {
	_, ok := s.m[r]
	return ok
}

// Len returns the number of distinct runes.
func (s *Set) Len() int { return len(s.m) }

// Runes returns the members sorted by code point. The ordering is stable
// across calls, which lets callers index into it.
func (s *Set) Runes() []rune {
	out := make([]rune, 0, len(s.m))
	for r := range s.m {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// String renders the sorted members as one string.
func (s *Set) String() string {
	var sb strings.Builder
	for _, r := range s.Runes() {
		sb.WriteRune(r)
	}
	return sb.String()
}
