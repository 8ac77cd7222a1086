package component_test

import (
	"fmt"
	"testing"

	"pkg.world.dev/archon/assert"
	"pkg.world.dev/archon/component"
	"pkg.world.dev/archon/types"
)

func TestResolveAssignsIDsInRegistrationOrder(t *testing.T) {
	r := component.NewRegistry()

	pos, err := r.Resolve("position")
	assert.NilError(t, err)
	vel, err := r.Resolve("velocity")
	assert.NilError(t, err)

	assert.Equal(t, pos, types.ComponentID(0))
	assert.Equal(t, vel, types.ComponentID(1))

	again, err := r.Resolve("position")
	assert.NilError(t, err)
	assert.Equal(t, again, pos)
	assert.Equal(t, r.Len(), 2)
}

func TestLookupDoesNotRegister(t *testing.T) {
	r := component.NewRegistry()

	_, ok := r.Lookup("position")
	assert.False(t, ok)
	assert.Equal(t, r.Len(), 0)

	id, err := r.Resolve("position")
	assert.NilError(t, err)
	got, ok := r.Lookup("position")
	assert.True(t, ok)
	assert.Equal(t, got, id)
}

func TestNameOfRoundTrips(t *testing.T) {
	r := component.NewRegistry()
	id, err := r.Resolve("health")
	assert.NilError(t, err)

	name, ok := r.NameOf(id)
	assert.True(t, ok)
	assert.Equal(t, name, "health")

	_, ok = r.NameOf(types.ComponentID(99))
	assert.False(t, ok)
}

func TestMaskOfRegistersAndCombines(t *testing.T) {
	r := component.NewRegistry()
	m, err := r.MaskOf([]string{"position", "velocity"})
	assert.NilError(t, err)

	pos, _ := r.Lookup("position")
	vel, _ := r.Lookup("velocity")
	assert.True(t, m.Has(pos))
	assert.True(t, m.Has(vel))
	assert.DeepEqual(t, r.Names(), []string{"position", "velocity"})
}

func TestRegistryCapacityIsBounded(t *testing.T) {
	r := component.NewRegistry()
	for i := 0; i < types.MaxComponentKinds; i++ {
		_, err := r.Resolve(fmt.Sprintf("component_%d", i))
		assert.NilError(t, err)
	}

	_, err := r.Resolve("one_too_many")
	assert.ErrorIs(t, err, component.ErrTooManyComponents)
}
