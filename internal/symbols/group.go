// Package symbols defines the built-in symbol groups and the set used to
// accumulate a password alphabet.
package symbols

// Group is a named, fixed run of characters that can be toggled as a whole.
type Group struct {
	name  string
	chars string
}

// Name returns the group's identifier, e.g. "digits".
func (g Group) Name() string { return g.name }

// Chars returns the group's characters in declaration order.
func (g Group) Chars() string { return g.chars }

const (
	LatinUpper = "latin-upper"
	LatinLower = "latin-lower"
	Digits     = "digits"
	Special    = "special"
)

var catalog = [...]Group{
	{name: LatinUpper, chars: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
	{name: LatinLower, chars: "abcdefghijklmnopqrstuvwxyz"},
	{name: Digits, chars: "0123456789"},
	{name: Special, chars: "`~!@#$%^&*()-_=+[]{}\\|;:'\",<.>/?"},
}

// Groups returns the built-in catalog in declaration order. The returned
// slice is a fresh copy; the catalog itself cannot be modified.
func Groups() []Group {
	out := make([]Group, len(catalog))
	copy(out, catalog[:])
	return out
}

// Lookup finds a built-in group by name.
func Lookup(name string) (Group, bool) {
	for _, g := range catalog {
		if g.name == name {
			return g, true
		}
	}
	return Group{}, false
}
