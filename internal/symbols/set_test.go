package symbols

import (
	"testing"
	"unicode/utf8"
)

func TestGroupsDeclarationOrder(t *testing.T) {
	want := []string{LatinUpper, LatinLower, Digits, Special}
	groups := Groups()
	if len(groups) != len(want) {
		t.Fatalf("Groups() returned %d groups, want %d", len(groups), len(want))
	}
	for i, g := range groups {
		if g.Name() != want[i] {
			t.Errorf("Groups()[%d] = %q, want %q", i, g.Name(), want[i])
		}
	}
}

func TestGroupsIsACopy(t *testing.T) {
	groups := Groups()
	groups[0] = Group{name: "tampered", chars: "x"}

	g, ok := Lookup(LatinUpper)
	if !ok {
		t.Fatal("Lookup() did not find latin-upper after caller mutated its copy")
	}
	if g.Chars() != "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		t.Errorf("catalog was modified through Groups(): %q", g.Chars())
	}
}

func TestGroupSizes(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{LatinUpper, 26},
		{LatinLower, 26},
		{Digits, 10},
		{Special, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.name)
			}
			if n := NewSet(g.Chars()).Len(); n != tt.want {
				t.Errorf("group %q has %d distinct symbols, want %d", tt.name, n, tt.want)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("cyrillic"); ok {
		t.Error("Lookup() found a group that is not in the catalog")
	}
}

func TestSetCollapsesDuplicates(t *testing.T) {
	s := NewSet("abc")
	s.AddString("cba")
	s.AddString("a")

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if s.String() != "abc" {
		t.Errorf("String() = %q, want %q", s.String(), "abc")
	}
}

func TestSetRemove(t *testing.T) {
	s := NewSet("abc")
	s.RemoveString("bz")

	if s.Contains('b') {
		t.Error("Contains('b') = true after removal")
	}
	if s.String() != "ac" {
		t.Errorf("String() = %q, want %q", s.String(), "ac")
	}
}

func TestSetZeroValue(t *testing.T) {
	var s Set
	s.RemoveString("abc")
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	s.AddString("z")
	if !s.Contains('z') {
		t.Error("zero-value Set did not accept AddString")
	}
}

func TestSetSplitsCombiningSequences(t *testing.T) {
	// "e" followed by U+0301 COMBINING ACUTE ACCENT.
	s := NewSet("e\u0301")
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 scalar values", s.Len())
	}
	if !s.Contains('e') || !s.Contains('\u0301') {
		t.Errorf("set %q does not hold both scalar values", s.String())
	}
}

func TestSetRunesSorted(t *testing.T) {
	s := NewSet("z\u00e91A")
	runes := s.Runes()
	for i := 1; i < len(runes); i++ {
		if runes[i-1] >= runes[i] {
			t.Fatalf("Runes() not sorted: %q", string(runes))
		}
	}
	if utf8.RuneCountInString(s.String()) != 4 {
		t.Errorf("String() = %q, want 4 runes", s.String())
	}
}
