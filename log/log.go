package log

import (
	"sort"

	"github.com/rs/zerolog"

	"pkg.world.dev/archon/types"
)

type Loggable interface {
	GetRegisteredComponents() []string
	GetRegisteredArchetypes() int
}

func loadComponentIntoArrayLogger(name string, arrayLogger *zerolog.Array) *zerolog.Array {
	return arrayLogger.Str(name)
}

func loadComponentsToEvent(zeroLoggerEvent *zerolog.Event, target Loggable) *zerolog.Event {
	components := target.GetRegisteredComponents()
	sort.Strings(components)
	zeroLoggerEvent.Int("total_components", len(components))
	arrayLogger := zerolog.Arr()
	for _, name := range components {
		arrayLogger = loadComponentIntoArrayLogger(name, arrayLogger)
	}
	return zeroLoggerEvent.Array("components", arrayLogger)
}

// Components logs all component names registered with the store.
func Components(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent = loadComponentsToEvent(zeroLoggerEvent, target)
	zeroLoggerEvent.Send()
}

// Entity logs the admission of an entity and the components it holds.
func Entity(logger *zerolog.Logger, level zerolog.Level, entityID types.EntityID, componentNames []string) {
	arrayLogger := zerolog.Arr()
	for _, name := range componentNames {
		arrayLogger = loadComponentIntoArrayLogger(name, arrayLogger)
	}
	logger.WithLevel(level).
		Array("components", arrayLogger).
		Uint64("entity_id", uint64(entityID)).
		Send()
}

// EntityRemoved logs the removal of an entity from the store.
func EntityRemoved(logger *zerolog.Logger, level zerolog.Level, entityID types.EntityID) {
	logger.WithLevel(level).
		Uint64("entity_id", uint64(entityID)).
		Bool("removed", true).
		Send()
}

// Archetype logs the creation of an archetype index.
func Archetype(logger *zerolog.Logger, level zerolog.Level, archID types.ArchetypeID, componentNames []string) {
	arrayLogger := zerolog.Arr()
	for _, name := range componentNames {
		arrayLogger = loadComponentIntoArrayLogger(name, arrayLogger)
	}
	logger.WithLevel(level).
		Array("components", arrayLogger).
		Int("archetype_id", int(archID)).
		Send()
}

// CreateWorldLogger creates a sub logger with the entry {"world_id": worldID}.
func CreateWorldLogger(logger *zerolog.Logger, worldID string) *zerolog.Logger {
	newLogger := logger.With().Str("world_id", worldID).Logger()
	return &newLogger
}

// CreateTraceLogger creates a trace logger. Using a single id you can use this
// logger to follow and log a data path.
func CreateTraceLogger(logger *zerolog.Logger, traceID string) *zerolog.Logger {
	newLogger := logger.With().Str("trace_id", traceID).Logger()
	return &newLogger
}
