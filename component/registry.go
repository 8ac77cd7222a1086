// Package component assigns small integer identifiers to component names.
// Every store owns one Registry; IDs are handed out once, in registration
// order, and are never reused, which keeps bitmask-based archetype matching
// stable for the store's lifetime.
package component

import (
	"github.com/rotisserie/eris"

	"pkg.world.dev/archon/memo"
	"pkg.world.dev/archon/types"
)

var ErrTooManyComponents = eris.Errorf(
	"cannot register more than %d component kinds", types.MaxComponentKinds)

var _ types.ComponentResolver = &Registry{}

type Registry struct {
	nameToID *memo.Cache[string, types.ComponentID]
	idToName []string
}

func NewRegistry() *Registry {
	return &Registry{
		nameToID: memo.New[string, types.ComponentID](),
	}
}

// Resolve returns the ComponentID assigned to name, assigning the next free
// ID if name has not been seen before.
func (r *Registry) Resolve(name string) (types.ComponentID, error) {
	if id, ok := r.nameToID.Get(name); ok {
		return id, nil
	}
	if len(r.idToName) >= types.MaxComponentKinds {
		return 0, eris.Wrapf(ErrTooManyComponents, "registering %q", name)
	}
	id := types.ComponentID(len(r.idToName))
	r.nameToID.Set(name, id)
	r.idToName = append(r.idToName, name)
	return id, nil
}

// Lookup returns the ComponentID for name without registering it.
func (r *Registry) Lookup(name string) (types.ComponentID, bool) {
	return r.nameToID.Get(name)
}

// NameOf returns the name assigned the given ID.
func (r *Registry) NameOf(id types.ComponentID) (string, bool) {
	if int(id) < 0 || int(id) >= len(r.idToName) {
		return "", false
	}
	return r.idToName[id], true
}

// Names returns all registered component names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.idToName))
	copy(names, r.idToName)
	return names
}

func (r *Registry) Len() int {
	return len(r.idToName)
}

// MaskOf resolves every name and returns the combined presence mask,
// registering names that have not been seen before.
func (r *Registry) MaskOf(names []string) (types.Mask, error) {
	var m types.Mask
	for _, name := range names {
		id, err := r.Resolve(name)
		if err != nil {
			return m, err
		}
		m.Set(id)
	}
	return m, nil
}
