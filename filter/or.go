package filter

import (
	"strings"

	"pkg.world.dev/archon/types"
)

// Or returns a predicate that is true iff at least one given predicate
// matches.
func (r *Registry) Or(predicates ...*Predicate) *Predicate {
	keys := make([]string, 0, len(predicates))
	for _, p := range predicates {
		keys = append(keys, p.key)
	}
	key := "or(" + strings.Join(keys, ";") + ")"
	return r.byKey.GetOrCreate(key, func() *Predicate {
		operands := append([]*Predicate(nil), predicates...)
		return &Predicate{
			key: key,
			test: func(e *types.Entity) bool {
				for _, p := range operands {
					if p.Matches(e) {
						return true
					}
				}
				return false
			},
		}
	})
}
