package store

import (
	"strings"

	"github.com/rotisserie/eris"

	"pkg.world.dev/archon/types"
)

// CommandKind tags a deferred mutation. Commands are explicit tagged variants
// rather than opaque closures, so a queue can be inspected, logged, and
// replayed deterministically.
type CommandKind int

const (
	CommandAddEntity CommandKind = iota
	CommandRemoveEntity
	CommandAddComponent
	CommandRemoveComponent
)

func (k CommandKind) String() string {
	switch k {
	case CommandAddEntity:
		return "add_entity"
	case CommandRemoveEntity:
		return "remove_entity"
	case CommandAddComponent:
		return "add_component"
	case CommandRemoveComponent:
		return "remove_component"
	}
	return "unknown"
}

// Command is a captured deferred operation with its operands.
type Command struct {
	Kind      CommandKind
	Entity    *types.Entity
	Component types.Component
	Names     []string
}

func (c Command) String() string {
	switch c.Kind {
	case CommandAddComponent:
		return c.Kind.String() + "(" + c.Component.Name() + ")"
	case CommandRemoveComponent:
		return c.Kind.String() + "(" + strings.Join(c.Names, ",") + ")"
	default:
		return c.Kind.String()
	}
}

// CommandQueue is a FIFO buffer of deferred mutations. Enqueued commands have
// no observable effect until they are drained and applied at a flush point.
type CommandQueue struct {
	commands []Command
}

func NewCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

func (q *CommandQueue) AddEntity(e *types.Entity) {
	q.commands = append(q.commands, Command{Kind: CommandAddEntity, Entity: e})
}

func (q *CommandQueue) RemoveEntity(e *types.Entity) {
	q.commands = append(q.commands, Command{Kind: CommandRemoveEntity, Entity: e})
}

func (q *CommandQueue) AddComponent(e *types.Entity, c types.Component) {
	q.commands = append(q.commands, Command{Kind: CommandAddComponent, Entity: e, Component: c})
}

func (q *CommandQueue) RemoveComponent(e *types.Entity, names ...string) {
	q.commands = append(q.commands, Command{Kind: CommandRemoveComponent, Entity: e, Names: names})
}

func (q *CommandQueue) Len() int {
	return len(q.commands)
}

// Pending returns a copy of the queued commands in enqueue order.
func (q *CommandQueue) Pending() []Command {
	out := make([]Command, len(q.commands))
	copy(out, q.commands)
	return out
}

// Drain empties the queue and returns the commands in enqueue order.
func (q *CommandQueue) Drain() []Command {
	commands := q.commands
	q.commands = nil
	return commands
}

// Clear empties the queue without executing it. Reserved for full store
// teardown, not error recovery.
func (q *CommandQueue) Clear() {
	q.commands = nil
}

// Apply executes a single drained command against the store's immediate
// mutation surface.
func (s *Store) Apply(cmd Command) error {
	switch cmd.Kind {
	case CommandAddEntity:
		_, err := s.AddEntity(cmd.Entity)
		return err
	case CommandRemoveEntity:
		s.RemoveEntity(cmd.Entity)
		return nil
	case CommandAddComponent:
		return s.AddComponent(cmd.Entity, cmd.Component)
	case CommandRemoveComponent:
		s.RemoveComponent(cmd.Entity, cmd.Names...)
		return nil
	}
	return eris.Errorf("unknown command kind %d", cmd.Kind)
}
