package filter

import (
	"pkg.world.dev/archon/types"
)

// Not returns the logical negation of the given predicate. The result is
// memoized by the input's identity, so Not called twice with the same
// predicate returns the identical instance.
func (r *Registry) Not(p *Predicate) *Predicate {
	return r.negations.GetOrCreate(p, func() *Predicate {
		return &Predicate{
			key: "not(" + p.key + ")",
			test: func(e *types.Entity) bool {
				return !p.Matches(e)
			},
		}
	})
}
