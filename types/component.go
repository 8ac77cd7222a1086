package types

// ComponentID is the small integer identifier a store assigns to a component
// name. IDs are assigned once per store and never reused, which lets archetype
// membership be tested with bitmask intersection instead of comparing name
// lists.
type ComponentID int

// ArchetypeID identifies a canonical component-name set within a store.
type ArchetypeID int

// Component is the interface that the user needs to implement to create a new
// component type. The payload's internal structure is opaque to the store;
// only presence or absence of the name participates in archetype matching.
type Component interface {
	// Name returns the name of the component.
	Name() string
}

// ComponentResolver translates between component names and the ComponentIDs a
// store has assigned to them. It is implemented by the store's component
// registry and handed to entities on admission.
type ComponentResolver interface {
	// Resolve returns the ComponentID for the given name, assigning a new ID
	// if the name has not been seen before.
	Resolve(name string) (ComponentID, error)
	// Lookup returns the ComponentID for the given name. The second return
	// value is false if the name has never been registered.
	Lookup(name string) (ComponentID, bool)
	// NameOf returns the name that was assigned the given ComponentID.
	NameOf(id ComponentID) (string, bool)
}
