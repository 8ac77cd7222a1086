package filter_test

import (
	"testing"

	"pkg.world.dev/archon/assert"
	"pkg.world.dev/archon/filter"
	"pkg.world.dev/archon/types"
)

type Position struct {
	X, Y float64
}

func (Position) Name() string {
	return "position"
}

type Velocity struct {
	DX, DY float64
}

func (Velocity) Name() string {
	return "velocity"
}

// named is a component whose name is chosen per test case.
type named struct {
	name string
}

func (n named) Name() string {
	return n.name
}

func TestAllMatchesWhenEveryComponentPresent(t *testing.T) {
	r := filter.NewRegistry()
	both := types.NewEntity(Position{}, Velocity{})
	posOnly := types.NewEntity(Position{})

	p := r.All("position", "velocity")
	assert.True(t, p.Matches(both))
	assert.False(t, p.Matches(posOnly))

	// All of nothing matches everything.
	assert.True(t, r.All().Matches(types.NewEntity()))
}

func TestAnyMatchesWhenAtLeastOnePresent(t *testing.T) {
	r := filter.NewRegistry()
	posOnly := types.NewEntity(Position{})
	empty := types.NewEntity()

	p := r.Any("position", "velocity")
	assert.True(t, p.Matches(posOnly))
	assert.False(t, p.Matches(empty))
	assert.False(t, r.Any().Matches(posOnly))
}

func TestNoneMatchesWhenNonePresent(t *testing.T) {
	r := filter.NewRegistry()
	posOnly := types.NewEntity(Position{})
	empty := types.NewEntity()

	p := r.None("position", "velocity")
	assert.False(t, p.Matches(posOnly))
	assert.True(t, p.Matches(empty))
}

func TestExactMatchesExactComponentSet(t *testing.T) {
	r := filter.NewRegistry()
	both := types.NewEntity(Position{}, Velocity{})
	posOnly := types.NewEntity(Position{})

	p := r.Exact("position", "velocity")
	assert.True(t, p.Matches(both))
	assert.False(t, p.Matches(posOnly))
	assert.False(t, r.Exact("position").Matches(both))
}

func TestNotNegates(t *testing.T) {
	r := filter.NewRegistry()
	posOnly := types.NewEntity(Position{})

	p := r.Not(r.All("velocity"))
	assert.True(t, p.Matches(posOnly))
	assert.False(t, p.Matches(types.NewEntity(Velocity{})))
}

func TestStructurallyEqualCallsShareOneInstance(t *testing.T) {
	r := filter.NewRegistry()

	assert.Same(t, r.All("x", "y"), r.All("y", "x"))
	assert.Same(t, r.All("x", "y"), r.All("x", "y", "y", ""))
	assert.Same(t, r.Any("a", "b"), r.Any("b", "a"))
	assert.Same(t, r.None("a"), r.None("a", "", "a"))
	assert.Same(t, r.Exact("a", "b"), r.Exact("b", "a"))

	p := r.All("x")
	assert.Same(t, r.Not(p), r.Not(p))

	// Different combinators never collide even over the same names.
	assert.NotSame(t, r.All("a"), r.Any("a"))
	assert.NotSame(t, r.Any("a"), r.None("a"))
}

func TestNamesContainingTheSeparatorDoNotCollide(t *testing.T) {
	r := filter.NewRegistry()

	joined := r.All("a,b")
	split := r.All("a", "b")
	assert.NotSame(t, joined, split)

	both := types.NewEntity(named{"a"}, named{"b"})
	assert.True(t, split.Matches(both))
	assert.False(t, joined.Matches(both))

	odd := types.NewEntity(named{"a,b"})
	assert.True(t, joined.Matches(odd))
	assert.False(t, split.Matches(odd))
}

func TestAndOrComposition(t *testing.T) {
	r := filter.NewRegistry()
	both := types.NewEntity(Position{}, Velocity{})
	posOnly := types.NewEntity(Position{})
	empty := types.NewEntity()

	conjunction := r.And(r.All("position"), r.All("velocity"))
	assert.True(t, conjunction.Matches(both))
	assert.False(t, conjunction.Matches(posOnly))

	disjunction := r.Or(r.All("position"), r.All("velocity"))
	assert.True(t, disjunction.Matches(posOnly))
	assert.False(t, disjunction.Matches(empty))

	assert.Same(t, conjunction, r.And(r.All("position"), r.All("velocity")))
	assert.Same(t, disjunction, r.Or(r.All("position"), r.All("velocity")))
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := filter.NewRegistry()
	b := filter.NewRegistry()
	assert.NotSame(t, a.All("x"), b.All("x"))
}

func TestPredicatesWorkOnOwnedAndUnownedEntities(t *testing.T) {
	r := filter.NewRegistry()
	e := types.NewEntity(Position{})

	p := r.All("position")
	assert.True(t, p.Matches(e))

	e.Unset("position")
	assert.False(t, p.Matches(e))
}
