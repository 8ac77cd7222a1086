package store

import (
	"pkg.world.dev/archon/types"
)

// Archetype is the canonical identity of a duplicate-free, order-independent
// component-name set, together with the live index of entities that satisfy
// it. Two equivalent name sets always resolve to the identical *Archetype, so
// archetypes can be compared by reference and used as map keys.
type Archetype struct {
	id        types.ArchetypeID
	names     []string
	mask      types.Mask
	entities  []*types.Entity
	rows      map[types.EntityID]int
	listeners *ListenerList
}

func newArchetype(id types.ArchetypeID, names []string, mask types.Mask) *Archetype {
	return &Archetype{
		id:        id,
		names:     names,
		mask:      mask,
		rows:      make(map[types.EntityID]int),
		listeners: NewListenerList(),
	}
}

func (a *Archetype) ID() types.ArchetypeID {
	return a.id
}

// Components returns the canonical (sorted, deduplicated) component names.
func (a *Archetype) Components() []string {
	names := make([]string, len(a.names))
	copy(names, a.names)
	return names
}

// Mask returns the archetype's component presence mask.
func (a *Archetype) Mask() types.Mask {
	return a.mask
}

func (a *Archetype) Len() int {
	return len(a.entities)
}

// Entities returns the index contents as a borrowed view of the backing
// storage. The slice is only valid until the next mutation or flush; callers
// must not modify or retain it.
func (a *Archetype) Entities() []*types.Entity {
	return a.entities
}

// Listeners returns the change-listener list for this archetype. Listeners
// fire once per observed membership change on the index.
func (a *Archetype) Listeners() *ListenerList {
	return a.listeners
}

// Iterator returns an iterator over the current index contents. Like
// Entities, the iterator borrows the backing storage and is invalidated by
// the next mutation or flush.
func (a *Archetype) Iterator() EntityIterator {
	return EntityIterator{values: a.entities}
}

func (a *Archetype) contains(id types.EntityID) bool {
	_, ok := a.rows[id]
	return ok
}

func (a *Archetype) add(e *types.Entity) bool {
	id, owned := e.ID()
	if !owned || a.contains(id) {
		return false
	}
	a.rows[id] = len(a.entities)
	a.entities = append(a.entities, e)
	return true
}

// remove drops the entity from the index with a swap-remove. Index order is
// not preserved across removals.
func (a *Archetype) remove(id types.EntityID) bool {
	row, ok := a.rows[id]
	if !ok {
		return false
	}
	lastRow := len(a.entities) - 1
	if row < lastRow {
		moved := a.entities[lastRow]
		a.entities[row] = moved
		if movedID, ok := moved.ID(); ok {
			a.rows[movedID] = row
		}
	}
	a.entities = a.entities[:lastRow]
	delete(a.rows, id)
	return true
}

func (a *Archetype) reset() {
	a.entities = nil
	a.rows = make(map[types.EntityID]int)
	a.listeners.Clear()
}

// EntityIterator walks an archetype index in storage order.
type EntityIterator struct {
	current int
	values  []*types.Entity
}

func (it *EntityIterator) HasNext() bool {
	return it.current < len(it.values)
}

func (it *EntityIterator) Next() *types.Entity {
	val := it.values[it.current]
	it.current++
	return val
}
