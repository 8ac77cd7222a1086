package types

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// EntityID is the unique identifier a store assigns to an entity on
// admission. IDs are monotonically increasing and never reused within a
// store's lifetime.
type EntityID uint64

// Entity is a record holding a set of named components. An entity carries an
// identifier if and only if it is currently owned by exactly one store.
//
// While owned, component presence is tracked in a bitmask and payloads live in
// ComponentID-indexed slots. While unowned, components are held in a staged
// list keyed by name. Only the owning store's mutation API may change
// component membership in ways that must be reflected in archetype indices;
// writing payloads in place through Set while owned bypasses index maintenance
// and is the caller's responsibility.
type Entity struct {
	id       EntityID
	owned    bool
	resolver ComponentResolver
	mask     Mask
	slots    []any
	staged   []stagedComponent
}

type stagedComponent struct {
	name string
	data any
}

// NewEntity returns an unowned entity holding the given components. Later
// components overwrite earlier ones with the same name.
func NewEntity(comps ...Component) *Entity {
	e := &Entity{}
	for _, c := range comps {
		e.stage(c.Name(), c)
	}
	return e
}

// ID returns the entity's identifier. The second return value is false if the
// entity is not currently owned by a store.
func (e *Entity) ID() (EntityID, bool) {
	return e.id, e.owned
}

// Has reports whether the entity currently holds a component with the given
// name.
func (e *Entity) Has(name string) bool {
	if !e.owned {
		for _, s := range e.staged {
			if s.name == name {
				return true
			}
		}
		return false
	}
	id, ok := e.resolver.Lookup(name)
	if !ok {
		return false
	}
	return e.mask.Has(id)
}

// Component returns the payload stored under the given name. The second
// return value is false if the component is absent.
func (e *Entity) Component(name string) (any, bool) {
	if !e.owned {
		for _, s := range e.staged {
			if s.name == name {
				return s.data, true
			}
		}
		return nil, false
	}
	id, ok := e.resolver.Lookup(name)
	if !ok || !e.mask.Has(id) {
		return nil, false
	}
	return e.slots[id], true
}

// ComponentNames returns the names of all components the entity currently
// holds. While owned the names are in ComponentID order; while unowned they
// are in the order the components were staged.
func (e *Entity) ComponentNames() []string {
	if !e.owned {
		names := make([]string, 0, len(e.staged))
		for _, s := range e.staged {
			names = append(names, s.name)
		}
		return names
	}
	ids := e.mask.Bits()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name, ok := e.resolver.NameOf(id)
		if !ok {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Set stores the component payload on the entity. While owned this writes the
// payload slot directly and does not update any archetype index; store
// mutation operations must be used when index consistency matters.
func (e *Entity) Set(c Component) error {
	name := c.Name()
	if !e.owned {
		e.stage(name, c)
		return nil
	}
	id, err := e.resolver.Resolve(name)
	if err != nil {
		return err
	}
	e.setSlot(id, c)
	return nil
}

// Unset removes the named components from the entity. Removing a component
// the entity does not have is a no-op. The same index caveat as Set applies.
func (e *Entity) Unset(names ...string) {
	for _, name := range names {
		if !e.owned {
			e.unstage(name)
			continue
		}
		id, ok := e.resolver.Lookup(name)
		if !ok || !e.mask.Has(id) {
			continue
		}
		e.mask.Unset(id)
		e.slots[id] = nil
	}
}

// Mask returns the entity's component presence mask. The mask is only
// meaningful while the entity is owned by a store.
func (e *Entity) Mask() Mask {
	return e.mask
}

// Adopt assigns the entity an identifier and moves staged components into
// resolved slots. It is called by a store on admission and must not be called
// directly.
func (e *Entity) Adopt(id EntityID, resolver ComponentResolver) error {
	if e.owned {
		return eris.Errorf("entity %d is already owned by a store", e.id)
	}
	// Resolve every staged name before mutating, so a failed adoption leaves
	// the entity unowned and intact.
	resolved := make([]ComponentID, len(e.staged))
	for i, s := range e.staged {
		compID, err := resolver.Resolve(s.name)
		if err != nil {
			return err
		}
		resolved[i] = compID
	}
	e.id = id
	e.owned = true
	e.resolver = resolver
	for i, s := range e.staged {
		e.setSlot(resolved[i], s.data)
	}
	e.staged = nil
	return nil
}

// Release clears the entity's identifier and converts resolved slots back to
// staged components, so the entity keeps its data after removal from a store.
// It is called by a store and must not be called directly.
func (e *Entity) Release() {
	if !e.owned {
		return
	}
	for _, id := range e.mask.Bits() {
		name, ok := e.resolver.NameOf(id)
		if !ok {
			continue
		}
		e.staged = append(e.staged, stagedComponent{name: name, data: e.slots[id]})
	}
	e.id = 0
	e.owned = false
	e.resolver = nil
	e.mask = Mask{}
	e.slots = nil
}

func (e *Entity) stage(name string, data any) {
	for i := range e.staged {
		if e.staged[i].name == name {
			e.staged[i].data = data
			return
		}
	}
	e.staged = append(e.staged, stagedComponent{name: name, data: data})
}

func (e *Entity) unstage(name string) {
	for i := range e.staged {
		if e.staged[i].name == name {
			e.staged = append(e.staged[:i], e.staged[i+1:]...)
			return
		}
	}
}

func (e *Entity) setSlot(id ComponentID, data any) {
	if int(id) >= len(e.slots) {
		grown := make([]any, int(id)+1)
		copy(grown, e.slots)
		e.slots = grown
	}
	e.slots[id] = data
	e.mask.Set(id)
}

type EntityStateResponse []EntityStateElement

type EntityStateElement struct {
	ID         EntityID                   `json:"id"`
	Components map[string]json.RawMessage `json:"components"`
}
