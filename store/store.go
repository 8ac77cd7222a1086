// Package store owns the authoritative entity list and the incrementally
// maintained archetype indices. All mutation operations here are immediate:
// indices and listeners are updated within the same call. Deferred mutation
// is layered on top via the CommandQueue.
package store

import (
	"sort"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"pkg.world.dev/archon/component"
	archonlog "pkg.world.dev/archon/log"
	"pkg.world.dev/archon/memo"
	"pkg.world.dev/archon/types"
)

// ErrDuplicateIdentifier is returned by AddEntity when the entity already
// carries an identifier, meaning it is already owned by a store.
var ErrDuplicateIdentifier = eris.New("entity already carries an identifier")

// Store is an in-memory entity/component data store. It is single-threaded:
// no operation suspends, and nothing here is safe for concurrent use.
type Store struct {
	logger *zerolog.Logger

	components *component.Registry

	entities   []*types.Entity
	entityRows map[types.EntityID]int
	ids        identifierSequence

	archetypes *memo.Cache[types.Mask, *Archetype]
	archList   []*Archetype
	nextArchID types.ArchetypeID
}

func New(logger *zerolog.Logger) *Store {
	return &Store{
		logger:     logger,
		components: component.NewRegistry(),
		entityRows: make(map[types.EntityID]int),
		archetypes: memo.New[types.Mask, *Archetype](),
	}
}

// ComponentRegistry returns the store's name-to-ComponentID registry.
func (s *Store) ComponentRegistry() *component.Registry {
	return s.components
}

// AddEntity admits the entity: it is assigned the next identifier, appended
// to the master list, and inserted into every registered archetype index it
// satisfies, firing each affected index's listeners. The same entity is
// returned, now carrying an identifier.
func (s *Store) AddEntity(e *types.Entity) (*types.Entity, error) {
	if id, owned := e.ID(); owned {
		return nil, eris.Wrapf(ErrDuplicateIdentifier, "entity %d", id)
	}
	id := s.ids.next()
	if err := e.Adopt(id, s.components); err != nil {
		return nil, err
	}
	s.entityRows[id] = len(s.entities)
	s.entities = append(s.entities, e)

	mask := e.Mask()
	for _, arch := range s.archList {
		if !arch.mask.IsZero() && !arch.mask.Intersects(mask) {
			continue
		}
		if mask.ContainsAll(arch.mask) && arch.add(e) {
			arch.listeners.Invoke()
		}
	}
	archonlog.Entity(s.logger, zerolog.DebugLevel, id, e.ComponentNames())
	return e, nil
}

// RemoveEntity removes the entity from every archetype index currently
// containing it (firing listeners for each), clears its identifier, and
// removes it from the master list by identity. Removing an entity this store
// does not own is a no-op.
func (s *Store) RemoveEntity(e *types.Entity) {
	id, owned := e.ID()
	if !owned {
		return
	}
	row, ok := s.entityRows[id]
	if !ok || s.entities[row] != e {
		// Identifier sequences are per store, so an id match alone does not
		// prove ownership.
		return
	}

	mask := e.Mask()
	for _, arch := range s.archList {
		if !arch.mask.IsZero() && !arch.mask.Intersects(mask) {
			continue
		}
		if arch.remove(id) {
			arch.listeners.Invoke()
		}
	}

	lastRow := len(s.entities) - 1
	if row < lastRow {
		moved := s.entities[lastRow]
		s.entities[row] = moved
		if movedID, ok := moved.ID(); ok {
			s.entityRows[movedID] = row
		}
	}
	s.entities = s.entities[:lastRow]
	delete(s.entityRows, id)

	e.Release()
	archonlog.EntityRemoved(s.logger, zerolog.DebugLevel, id)
}

// AddComponent sets the component payload on the entity. Setting a component
// can only cause the entity to gain index memberships, so only archetypes
// referencing the component's name are re-tested. If the entity is not owned
// by this store the payload is staged on the entity without touching any
// index.
func (s *Store) AddComponent(e *types.Entity, c types.Component) error {
	id, owned := e.ID()
	if !owned {
		return e.Set(c)
	}
	if row, ok := s.entityRows[id]; !ok || s.entities[row] != e {
		return eris.Errorf("entity %d is owned by another store", id)
	}

	hadComponent := e.Has(c.Name())
	if err := e.Set(c); err != nil {
		return err
	}
	if hadComponent {
		// Payload update only; membership cannot change.
		return nil
	}

	bit, _ := s.components.Lookup(c.Name())
	mask := e.Mask()
	for _, arch := range s.archList {
		if !arch.mask.Has(bit) {
			continue
		}
		if mask.ContainsAll(arch.mask) && arch.add(e) {
			arch.listeners.Invoke()
		}
	}
	return nil
}

// RemoveComponent deletes the named components from the entity. Deleting a
// component can only cause the entity to lose index memberships, so only
// archetypes referencing a deleted name are re-tested; each affected index's
// listeners fire exactly once. Names the entity does not hold are ignored.
func (s *Store) RemoveComponent(e *types.Entity, names ...string) {
	id, owned := e.ID()
	if !owned {
		e.Unset(names...)
		return
	}
	if row, ok := s.entityRows[id]; !ok || s.entities[row] != e {
		return
	}

	var removed types.Mask
	for _, name := range names {
		if bit, ok := s.components.Lookup(name); ok && e.Mask().Has(bit) {
			removed.Set(bit)
		}
	}
	e.Unset(names...)
	if removed.IsZero() {
		return
	}

	mask := e.Mask()
	for _, arch := range s.archList {
		if !arch.mask.Intersects(removed) {
			continue
		}
		if !mask.ContainsAll(arch.mask) && arch.remove(id) {
			arch.listeners.Invoke()
		}
	}
}

// CreateArchetype canonicalizes the name list and returns the archetype
// identity for it, creating the index (one scan of the current entity list)
// and an empty listener set on first use. Repeated calls with an equivalent
// name set return the identical archetype and do no further work.
func (s *Store) CreateArchetype(names ...string) (*Archetype, error) {
	canonical := canonicalNames(names)
	mask, err := s.components.MaskOf(canonical)
	if err != nil {
		return nil, err
	}
	arch := s.archetypes.GetOrCreate(mask, func() *Archetype {
		arch := newArchetype(s.nextArchID, canonical, mask)
		s.nextArchID++
		for _, e := range s.entities {
			if e.Mask().ContainsAll(mask) {
				arch.add(e)
			}
		}
		s.archList = append(s.archList, arch)
		archonlog.Archetype(s.logger, zerolog.DebugLevel, arch.id, canonical)
		return arch
	})
	return arch, nil
}

// Get returns the archetype's index contents as a borrowed view, valid until
// the next mutation or flush.
func (s *Store) Get(arch *Archetype) []*types.Entity {
	if arch == nil {
		return nil
	}
	return arch.Entities()
}

// GetOne returns the first entity in the archetype's index. The second
// return value is false if the index is empty.
func (s *Store) GetOne(arch *Archetype) (*types.Entity, bool) {
	if arch == nil || len(arch.entities) == 0 {
		return nil, false
	}
	return arch.entities[0], true
}

// GetWith resolves or creates the archetype for the given names and returns
// its index. The first use of a previously unseen combination pays one scan
// over the entity list; the index is maintained incrementally afterwards.
func (s *Store) GetWith(names ...string) ([]*types.Entity, error) {
	arch, err := s.CreateArchetype(names...)
	if err != nil {
		return nil, err
	}
	return arch.Entities(), nil
}

// Entities returns the master entity list as a borrowed view, valid until
// the next mutation or flush. Order is not preserved across removals.
func (s *Store) Entities() []*types.Entity {
	return s.entities
}

func (s *Store) EntityCount() int {
	return len(s.entities)
}

func (s *Store) ArchetypeCount() int {
	return len(s.archList)
}

// Clear releases every entity and resets the store: master list, archetype
// registry, listener registrations, component registry, and the identifier
// counter. Previously handed-out archetype references read as empty
// afterwards. Intended for full store teardown.
func (s *Store) Clear() {
	for _, e := range s.entities {
		e.Release()
	}
	for _, arch := range s.archList {
		arch.reset()
	}
	s.entities = nil
	s.entityRows = make(map[types.EntityID]int)
	s.archetypes.Clear()
	s.archList = nil
	s.nextArchID = 0
	s.components = component.NewRegistry()
	s.ids.reset()
}

func canonicalNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
