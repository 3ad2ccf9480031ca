// Package alphabet turns generator options into the final set of symbols a
// password is drawn from.
//
// Accumulation runs in a fixed order: enabled built-in groups in catalog
// order, then allow strings in input order, then deny strings in input
// order. Deny therefore always wins.
package alphabet

import (
	"errors"
	"fmt"
	"slices"

	"github.com/genpass/genpass-go/internal/model"
	"github.com/genpass/genpass-go/internal/symbols"
)

var (
	ErrEmptyUserSet  = errors.New("symbols set can't be empty")
	ErrEmptyAlphabet = errors.New("no symbols are allowed to generate password with")
)

// Build computes the alphabet for opts. A nil observer is treated as
// NopObserver.
func Build(opts model.Options, obs Observer) (*symbols.Set, error) {
	if obs == nil {
		obs = NopObserver{}
	}

	for i, s := range opts.Allow {
		if s == "" {
			return nil, fmt.Errorf("allow #%d: %w", i+1, ErrEmptyUserSet)
		}
	}
	for i, s := range opts.Deny {
		if s == "" {
			return nil, fmt.Errorf("deny #%d: %w", i+1, ErrEmptyUserSet)
		}
	}

	set := &symbols.Set{}

	for _, g := range symbols.Groups() {
		if slices.Contains(opts.Disabled, g.Name()) {
			continue
		}
		set.AddString(g.Chars())
		obs.GroupAdded(g.Name(), g.Chars())
	}

	for _, s := range opts.Allow {
		set.AddString(s)
		obs.AllowAdded(s)
	}

	for _, s := range opts.Deny {
		set.RemoveString(s)
	}

	if set.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}

	obs.Built(set)
	return set, nil
}
