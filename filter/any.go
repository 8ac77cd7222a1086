package filter

import (
	"pkg.world.dev/archon/types"
)

// Any returns a predicate that is true iff at least one listed component is
// present.
func (r *Registry) Any(names ...string) *Predicate {
	canonical := canonicalNames(names)
	return r.memoize(keyFor("any", canonical), func(e *types.Entity) bool {
		for _, name := range canonical {
			if e.Has(name) {
				return true
			}
		}
		return false
	})
}
