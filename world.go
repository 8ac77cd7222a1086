// Package archon is an in-memory entity/component data store with live,
// incrementally maintained archetype indices and a deferred-mutation queue.
// Callers attach and detach named components on entities and retrieve all
// entities currently holding a given component combination without rescanning
// the world on every query.
package archon

import (
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"pkg.world.dev/archon/codec"
	"pkg.world.dev/archon/filter"
	archonlog "pkg.world.dev/archon/log"
	"pkg.world.dev/archon/statsd"
	"pkg.world.dev/archon/store"
	"pkg.world.dev/archon/types"
)

// World is the public surface of a store instance. The default mutation
// surface is deferred: AddEntity, RemoveEntity, AddComponent and
// RemoveComponent enqueue commands that have no observable effect until
// Flush. The Immediately surface applies the same operations synchronously.
//
// A World is single-threaded; nothing here is safe for concurrent use.
type World struct {
	instanceID string
	logger     *zerolog.Logger

	store     *store.Store
	queue     *store.CommandQueue
	filters   *filter.Registry
	immediate *ImmediateAPI
}

var _ archonlog.Loggable = &World{}

// NewWorld creates a World configured from the environment (see WorldConfig)
// and the given options.
func NewWorld(opts ...WorldOption) (*World, error) {
	cfg, err := GetWorldConfig()
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, eris.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	baseLogger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
	if cfg.LogPretty {
		baseLogger = baseLogger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	w := &World{
		instanceID: uuid.NewString(),
		logger:     &baseLogger,
		queue:      store.NewCommandQueue(),
		filters:    filter.NewRegistry(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = archonlog.CreateWorldLogger(w.logger, w.instanceID)
	w.store = store.New(w.logger)
	w.immediate = &ImmediateAPI{world: w}

	if cfg.StatsdAddress != "" {
		if err := statsd.Init(cfg.StatsdAddress, []string{"world_id:" + w.instanceID}); err != nil {
			w.logger.Warn().Err(err).Msg("failed to init statsd client")
		}
	}

	w.logger.Info().Msg("world created")
	return w, nil
}

// InstanceID returns the unique id assigned to this world instance. It tags
// every log line and metric the world emits.
func (w *World) InstanceID() string {
	return w.instanceID
}

func (w *World) Logger() *zerolog.Logger {
	return w.logger
}

// AddEntity queues the entity for admission at the next Flush.
func (w *World) AddEntity(e *types.Entity) {
	w.queue.AddEntity(e)
}

// RemoveEntity queues the entity for removal at the next Flush.
func (w *World) RemoveEntity(e *types.Entity) {
	w.queue.RemoveEntity(e)
}

// AddComponent queues setting the component on the entity at the next Flush.
func (w *World) AddComponent(e *types.Entity, c types.Component) {
	w.queue.AddComponent(e, c)
}

// RemoveComponent queues deleting the named components from the entity at the
// next Flush.
func (w *World) RemoveComponent(e *types.Entity, names ...string) {
	w.queue.RemoveComponent(e, names...)
}

// Immediately returns the synchronous mutation surface. Operations on it
// mutate the store and all affected indices within the same call.
func (w *World) Immediately() *ImmediateAPI {
	return w.immediate
}

// CreateArchetype canonicalizes the names and returns the stable archetype
// identity for the set, creating its index on first use. Idempotent.
func (w *World) CreateArchetype(names ...string) (*store.Archetype, error) {
	return w.store.CreateArchetype(names...)
}

// Get returns the archetype's index contents as a borrowed view. The slice
// is valid until the next mutation or flush; it is not an isolated snapshot.
func (w *World) Get(arch *store.Archetype) []*types.Entity {
	return w.store.Get(arch)
}

// GetOne returns the first entity in the archetype's index, or false if the
// index is empty.
func (w *World) GetOne(arch *store.Archetype) (*types.Entity, bool) {
	return w.store.GetOne(arch)
}

// GetWith resolves or creates the archetype for the names and returns its
// index as a borrowed view.
func (w *World) GetWith(names ...string) ([]*types.Entity, error) {
	return w.store.GetWith(names...)
}

// Flush applies all queued commands in enqueue order, then empties the queue.
// On the first failing command, Flush stops and returns the error; commands
// after the failing one are discarded.
func (w *World) Flush() error {
	start := time.Now()
	commands := w.queue.Drain()
	for _, cmd := range commands {
		if err := w.store.Apply(cmd); err != nil {
			return eris.Wrapf(err, "flush failed applying %s", cmd)
		}
	}
	statsd.EmitFlushStat(start, len(commands))
	statsd.EmitStoreGauges(w.store.EntityCount(), w.store.ArchetypeCount())
	return nil
}

// Clear discards the pending queue without executing it and resets the store:
// entities, indices, listener registrations, the component registry, and the
// identifier counter. Intended for world teardown.
func (w *World) Clear() {
	w.queue.Clear()
	w.store.Clear()
	w.logger.Info().Msg("world cleared")
}

// Entities returns the full entity list as a borrowed read view, valid until
// the next mutation or flush.
func (w *World) Entities() []*types.Entity {
	return w.store.Entities()
}

// Listeners returns the change-listener registry for the given archetype.
func (w *World) Listeners(arch *store.Archetype) *store.ListenerList {
	if arch == nil {
		return nil
	}
	return arch.Listeners()
}

// Filters returns the world's predicate combinator registry.
func (w *World) Filters() *filter.Registry {
	return w.filters
}

// Pending returns a copy of the queued deferred commands in enqueue order.
func (w *World) Pending() []store.Command {
	return w.queue.Pending()
}

// State returns a JSON-encodable snapshot of every entity and its component
// payloads, for introspection and the debug server.
func (w *World) State() (types.EntityStateResponse, error) {
	entities := w.store.Entities()
	result := make(types.EntityStateResponse, 0, len(entities))
	for _, e := range entities {
		id, _ := e.ID()
		elem := types.EntityStateElement{
			ID:         id,
			Components: make(map[string]json.RawMessage),
		}
		for _, name := range e.ComponentNames() {
			payload, _ := e.Component(name)
			bz, err := codec.Encode(payload)
			if err != nil {
				return nil, err
			}
			elem.Components[name] = bz
		}
		result = append(result, elem)
	}
	return result, nil
}

// GetRegisteredComponents returns every component name the store has assigned
// an ID to, in registration order.
func (w *World) GetRegisteredComponents() []string {
	return w.store.ComponentRegistry().Names()
}

func (w *World) GetRegisteredArchetypes() int {
	return w.store.ArchetypeCount()
}

// ImmediateAPI is the synchronous mutation surface of a World.
type ImmediateAPI struct {
	world *World
}

// AddEntity admits the entity synchronously. It fails with
// store.ErrDuplicateIdentifier if the entity already carries an identifier.
func (api *ImmediateAPI) AddEntity(e *types.Entity) (*types.Entity, error) {
	return api.world.store.AddEntity(e)
}

// RemoveEntity removes the entity synchronously, updating every index that
// contained it.
func (api *ImmediateAPI) RemoveEntity(e *types.Entity) {
	api.world.store.RemoveEntity(e)
}

// AddComponent sets the component synchronously, updating affected indices.
func (api *ImmediateAPI) AddComponent(e *types.Entity, c types.Component) error {
	return api.world.store.AddComponent(e, c)
}

// RemoveComponent deletes the named components synchronously, updating
// affected indices.
func (api *ImmediateAPI) RemoveComponent(e *types.Entity, names ...string) {
	api.world.store.RemoveComponent(e, names...)
}
