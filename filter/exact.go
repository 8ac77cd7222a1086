package filter

import (
	"pkg.world.dev/archon/types"
)

// Exact returns a predicate that is true iff the entity holds exactly the
// listed components and no others.
func (r *Registry) Exact(names ...string) *Predicate {
	canonical := canonicalNames(names)
	return r.memoize(keyFor("exact", canonical), func(e *types.Entity) bool {
		if len(e.ComponentNames()) != len(canonical) {
			return false
		}
		for _, name := range canonical {
			if !e.Has(name) {
				return false
			}
		}
		return true
	})
}
