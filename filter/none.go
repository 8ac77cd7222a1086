package filter

import (
	"pkg.world.dev/archon/types"
)

// None returns a predicate that is true iff none of the listed components are
// present.
func (r *Registry) None(names ...string) *Predicate {
	canonical := canonicalNames(names)
	return r.memoize(keyFor("none", canonical), func(e *types.Entity) bool {
		for _, name := range canonical {
			if e.Has(name) {
				return false
			}
		}
		return true
	})
}
