package store_test

import (
	"testing"

	"pkg.world.dev/archon/assert"
	"pkg.world.dev/archon/store"
	"pkg.world.dev/archon/types"
)

func TestQueueKeepsEnqueueOrder(t *testing.T) {
	q := store.NewCommandQueue()
	e := types.NewEntity()

	q.AddEntity(e)
	q.AddComponent(e, Position{})
	q.RemoveComponent(e, "position", "velocity")
	q.RemoveEntity(e)

	pending := q.Pending()
	assert.Len(t, pending, 4)
	assert.Equal(t, store.CommandAddEntity, pending[0].Kind)
	assert.Equal(t, store.CommandAddComponent, pending[1].Kind)
	assert.Equal(t, store.CommandRemoveComponent, pending[2].Kind)
	assert.Equal(t, store.CommandRemoveEntity, pending[3].Kind)
	assert.Equal(t, "add_component(position)", pending[1].String())
	assert.Equal(t, "remove_component(position,velocity)", pending[2].String())
}

func TestPendingReturnsACopy(t *testing.T) {
	q := store.NewCommandQueue()
	q.AddEntity(types.NewEntity())

	pending := q.Pending()
	pending[0] = store.Command{Kind: store.CommandRemoveEntity}
	assert.Equal(t, store.CommandAddEntity, q.Pending()[0].Kind)
}

func TestDrainEmptiesQueue(t *testing.T) {
	q := store.NewCommandQueue()
	q.AddEntity(types.NewEntity())
	q.AddEntity(types.NewEntity())

	drained := q.Drain()
	assert.Len(t, drained, 2)
	assert.Equal(t, 0, q.Len())
	assert.Len(t, q.Drain(), 0)
}

func TestClearDiscardsWithoutExecuting(t *testing.T) {
	s := newStoreForTest(t)
	q := store.NewCommandQueue()
	e := types.NewEntity(Position{})
	q.AddEntity(e)

	q.Clear()
	assert.Equal(t, 0, q.Len())
	assert.Len(t, s.Entities(), 0)
	_, owned := e.ID()
	assert.False(t, owned)
}

func TestApplyExecutesCommandsAgainstStore(t *testing.T) {
	s := newStoreForTest(t)
	posVel, err := s.CreateArchetype("position", "velocity")
	assert.NilError(t, err)

	e := types.NewEntity(Position{})
	assert.NilError(t, s.Apply(store.Command{Kind: store.CommandAddEntity, Entity: e}))
	assert.NilError(t, s.Apply(store.Command{Kind: store.CommandAddComponent, Entity: e, Component: Velocity{}}))
	assert.Len(t, s.Get(posVel), 1)

	assert.NilError(t, s.Apply(store.Command{Kind: store.CommandRemoveComponent, Entity: e, Names: []string{"velocity"}}))
	assert.Len(t, s.Get(posVel), 0)

	assert.NilError(t, s.Apply(store.Command{Kind: store.CommandRemoveEntity, Entity: e}))
	assert.Len(t, s.Entities(), 0)

	// Replaying an add against an already-owned entity surfaces the error.
	_, err = s.AddEntity(e)
	assert.NilError(t, err)
	err = s.Apply(store.Command{Kind: store.CommandAddEntity, Entity: e})
	assert.ErrorIs(t, err, store.ErrDuplicateIdentifier)
}
