package store

import (
	"pkg.world.dev/archon/types"
)

// identifierSequence produces monotonically increasing entity identifiers.
// Identifiers are never reused for the store's lifetime, so a stale external
// reference can never silently match a newly admitted entity. The sequence
// resets only on full store teardown.
type identifierSequence struct {
	last types.EntityID
}

func (s *identifierSequence) next() types.EntityID {
	s.last++
	return s.last
}

func (s *identifierSequence) reset() {
	s.last = 0
}
