package archon

import (
	"github.com/rs/zerolog"
)

// WorldOption represents an option that can be used to augment how the World
// will be created.
type WorldOption func(*World)

// WithLogger overrides the environment-configured logger. The world id field
// is still attached to the given logger.
func WithLogger(logger zerolog.Logger) WorldOption {
	return func(w *World) {
		w.logger = &logger
	}
}

// WithInstanceID overrides the generated world instance id. Useful for tests
// and for correlating logs across restarts.
func WithInstanceID(id string) WorldOption {
	return func(w *World) {
		w.instanceID = id
	}
}
