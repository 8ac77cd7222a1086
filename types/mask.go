package types

const (
	bitsPerWord = 64
	maskWords   = 4

	// MaxComponentKinds is the maximum number of distinct component names a
	// single store can register.
	MaxComponentKinds = maskWords * bitsPerWord
)

// Mask is a fixed-width bitmask over ComponentIDs. A set bit means the
// component is present. Masks are comparable and can be used as map keys,
// which makes them a natural canonical identity for archetypes.
type Mask [maskWords]uint64

// Has checks if the mask has a specific component ID.
func (m Mask) Has(id ComponentID) bool {
	word := int(id) / bitsPerWord
	if word < 0 || word >= maskWords {
		return false
	}
	bit := uint(int(id) % bitsPerWord)
	return (m[word] & (1 << bit)) != 0
}

// Set adds a component ID to the mask.
func (m *Mask) Set(id ComponentID) {
	word := int(id) / bitsPerWord
	bit := uint(int(id) % bitsPerWord)
	m[word] |= 1 << bit
}

// Unset removes a component ID from the mask.
func (m *Mask) Unset(id ComponentID) {
	word := int(id) / bitsPerWord
	if word < 0 || word >= maskWords {
		return
	}
	bit := uint(int(id) % bitsPerWord)
	m[word] &^= 1 << bit
}

// ContainsAll reports whether every bit set in other is also set in m.
func (m Mask) ContainsAll(other Mask) bool {
	for i := 0; i < maskWords; i++ {
		if m[i]&other[i] != other[i] {
			return false
		}
	}
	return true
}

// Intersects reports whether m and other share at least one set bit.
func (m Mask) Intersects(other Mask) bool {
	for i := 0; i < maskWords; i++ {
		if m[i]&other[i] != 0 {
			return true
		}
	}
	return false
}

// IsZero reports whether no bits are set.
func (m Mask) IsZero() bool {
	for i := 0; i < maskWords; i++ {
		if m[i] != 0 {
			return false
		}
	}
	return true
}

// Bits returns the component IDs of all set bits in ascending order.
func (m Mask) Bits() []ComponentID {
	ids := make([]ComponentID, 0)
	for word := 0; word < maskWords; word++ {
		if m[word] == 0 {
			continue
		}
		for bit := 0; bit < bitsPerWord; bit++ {
			if m[word]&(1<<uint(bit)) != 0 {
				ids = append(ids, ComponentID(word*bitsPerWord+bit))
			}
		}
	}
	return ids
}

// MakeMask creates a mask from a slice of component IDs.
func MakeMask(ids []ComponentID) Mask {
	var m Mask
	for _, id := range ids {
		m.Set(id)
	}
	return m
}
