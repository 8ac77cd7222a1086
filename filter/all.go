package filter

import (
	"pkg.world.dev/archon/types"
)

// All returns a predicate that is true iff every listed component is present.
// With no names it matches every entity.
func (r *Registry) All(names ...string) *Predicate {
	canonical := canonicalNames(names)
	return r.memoize(keyFor("all", canonical), func(e *types.Entity) bool {
		for _, name := range canonical {
			if !e.Has(name) {
				return false
			}
		}
		return true
	})
}
