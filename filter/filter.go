// Package filter provides memoized boolean classifiers over entity component
// presence. Predicates built from the same logical inputs are the identical
// instance, so they can be rebuilt every pass, compared by reference, and used
// as cache keys.
package filter

import (
	"pkg.world.dev/archon/memo"
	"pkg.world.dev/archon/types"
)

// Predicate is a pure classifier from entity to boolean. Predicates are
// stateless and operate directly on component presence, independent of any
// archetype index.
type Predicate struct {
	key  string
	test func(*types.Entity) bool
}

// Matches returns true if the entity matches the predicate.
func (p *Predicate) Matches(e *types.Entity) bool {
	return p.test(e)
}

func (p *Predicate) String() string {
	return p.key
}

// Registry owns the memoization caches for predicate construction. Each
// registry is independent; predicates from different registries are never
// the same instance even when structurally equal.
type Registry struct {
	byKey     *memo.Cache[string, *Predicate]
	negations *memo.Cache[*Predicate, *Predicate]
}

func NewRegistry() *Registry {
	return &Registry{
		byKey:     memo.New[string, *Predicate](),
		negations: memo.New[*Predicate, *Predicate](),
	}
}

func (r *Registry) memoize(key string, test func(*types.Entity) bool) *Predicate {
	return r.byKey.GetOrCreate(key, func() *Predicate {
		return &Predicate{key: key, test: test}
	})
}
