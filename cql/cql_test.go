package cql_test

import (
	"testing"

	"pkg.world.dev/archon/assert"
	"pkg.world.dev/archon/cql"
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

type Health struct {
	HP int
}

func (Health) Name() string {
	return "health"
}

func mustParse(t *testing.T, text string, r *filter.Registry) *filter.Predicate {
	t.Helper()
	p, err := cql.Parse(text, r)
	assert.NilError(t, err)
	return p
}

func TestContainsMatchesSupersets(t *testing.T) {
	r := filter.NewRegistry()
	p := mustParse(t, "CONTAINS(position, velocity)", r)

	assert.True(t, p.Matches(types.NewEntity(Position{}, Velocity{}, Health{})))
	assert.False(t, p.Matches(types.NewEntity(Position{})))
}

func TestExactMatchesOnlyTheExactSet(t *testing.T) {
	r := filter.NewRegistry()
	p := mustParse(t, "EXACT(position, velocity)", r)

	assert.True(t, p.Matches(types.NewEntity(Position{}, Velocity{})))
	assert.False(t, p.Matches(types.NewEntity(Position{}, Velocity{}, Health{})))
}

func TestAnyAndNone(t *testing.T) {
	r := filter.NewRegistry()

	anyOf := mustParse(t, "ANY(position, velocity)", r)
	assert.True(t, anyOf.Matches(types.NewEntity(Velocity{})))
	assert.False(t, anyOf.Matches(types.NewEntity(Health{})))

	noneOf := mustParse(t, "NONE(position, velocity)", r)
	assert.False(t, noneOf.Matches(types.NewEntity(Velocity{})))
	assert.True(t, noneOf.Matches(types.NewEntity(Health{})))
}

func TestAllMatchesEverything(t *testing.T) {
	r := filter.NewRegistry()
	p := mustParse(t, "ALL()", r)

	assert.True(t, p.Matches(types.NewEntity()))
	assert.True(t, p.Matches(types.NewEntity(Position{})))
}

func TestNotAndCompositeExpressions(t *testing.T) {
	r := filter.NewRegistry()

	notDead := mustParse(t, "!EXACT(health)", r)
	assert.True(t, notDead.Matches(types.NewEntity(Position{})))
	assert.False(t, notDead.Matches(types.NewEntity(Health{})))

	p := mustParse(t, "CONTAINS(position) & !CONTAINS(health)", r)
	assert.True(t, p.Matches(types.NewEntity(Position{})))
	assert.False(t, p.Matches(types.NewEntity(Position{}, Health{})))

	q := mustParse(t, "EXACT(position) | EXACT(velocity)", r)
	assert.True(t, q.Matches(types.NewEntity(Velocity{})))
	assert.False(t, q.Matches(types.NewEntity(Health{})))

	grouped := mustParse(t, "(CONTAINS(position) | CONTAINS(velocity)) & NONE(health)", r)
	assert.True(t, grouped.Matches(types.NewEntity(Velocity{})))
	assert.False(t, grouped.Matches(types.NewEntity(Velocity{}, Health{})))
}

func TestRepeatedParsesShareMemoizedPredicates(t *testing.T) {
	r := filter.NewRegistry()

	first := mustParse(t, "CONTAINS(position, velocity)", r)
	second := mustParse(t, "CONTAINS(velocity, position)", r)
	assert.Same(t, first, second)

	// Query predicates and programmatic predicates share one identity space.
	assert.Same(t, first, r.All("position", "velocity"))

	composite := mustParse(t, "CONTAINS(position) & CONTAINS(velocity)", r)
	assert.Same(t, composite, mustParse(t, "CONTAINS(position) & CONTAINS(velocity)", r))
}

func TestZeroParameterOperatorsAreRejected(t *testing.T) {
	r := filter.NewRegistry()

	for _, text := range []string{"EXACT()", "CONTAINS()", "ANY()", "NONE()"} {
		_, err := cql.Parse(text, r)
		assert.Assert(t, err != nil, "expected %q to fail", text)
	}
}

func TestMalformedQueriesFail(t *testing.T) {
	r := filter.NewRegistry()

	for _, text := range []string{"", "&", "CONTAINS(position", "BOGUS(position)"} {
		_, err := cql.Parse(text, r)
		assert.Assert(t, err != nil, "expected %q to fail", text)
	}
}
