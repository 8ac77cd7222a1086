package filter

import (
	"strings"

	"pkg.world.dev/archon/types"
)

// And returns a predicate that is true iff every given predicate matches.
// Operand keys are stable, so the conjunction is memoized like any other
// combinator.
func (r *Registry) And(predicates ...*Predicate) *Predicate {
	keys := make([]string, 0, len(predicates))
	for _, p := range predicates {
		keys = append(keys, p.key)
	}
	key := "and(" + strings.Join(keys, ";") + ")"
	return r.byKey.GetOrCreate(key, func() *Predicate {
		operands := append([]*Predicate(nil), predicates...)
		return &Predicate{
			key: key,
			test: func(e *types.Entity) bool {
				for _, p := range operands {
					if !p.Matches(e) {
						return false
					}
				}
				return true
			},
		}
	})
}
