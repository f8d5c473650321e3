package command

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	errs "github.com/manav03panchal/commandkit/internal/errors"
	"github.com/manav03panchal/commandkit/internal/logging"
)

// Kind identifies a family of commands. The active registry keeps at most
// one live command per Kind.
type Kind string

// Action is the state mutation a concrete command supplies.
//
// Execute applies the mutation, Undo reverses it and Redo re-applies it
// without the command being recorded a second time.
type Action interface {
	Kind() Kind
	Execute() Result
	Undo() Result
	Redo() Result
}

// Canceler is implemented by actions that can discard an in-progress,
// not yet committed change.
type Canceler interface {
	Cancel()
}

// Disposer is implemented by actions that hold resources to release when
// the command is evicted from the registry or the registry is cleared.
type Disposer interface {
	Dispose()
}

// Describer is implemented by actions with a human-readable description.
type Describer interface {
	Description() string
}

// Command binds one Action to one Storage.
type Command struct {
	id        string
	kind      Kind
	action    Action
	storage   *Storage
	createdAt time.Time

	disposeOnce sync.Once
	disposed    atomic.Bool
	completions atomic.Int32
}

// New creates a command for action bound to storage and registers it in the
// storage's active registry, disposing any live command of the same kind.
func New(storage *Storage, action Action) (*Command, error) {
	if storage == nil {
		return nil, errs.ErrNilStorage
	}
	if action == nil {
		return nil, errs.ErrNilAction
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errs.Wrap(err, "generate command id")
	}

	c := &Command{
		id:        id.String(),
		kind:      action.Kind(),
		action:    action,
		storage:   storage,
		createdAt: time.Now(),
	}
	storage.addCommand(c)
	return c, nil
}

// ID returns the unique identifier of this command instance.
func (c *Command) ID() string { return c.id }

// Kind returns the registry key of this command.
func (c *Command) Kind() Kind { return c.kind }

// Action returns the wrapped action.
func (c *Command) Action() Action { return c.action }

// Storage returns the storage the command is bound to.
func (c *Command) Storage() *Storage { return c.storage }

// CreatedAt returns when the command was constructed.
func (c *Command) CreatedAt() time.Time { return c.createdAt }

// Description returns the action's description, or its kind.
func (c *Command) Description() string {
	if d, ok := c.action.(Describer); ok {
		if desc := d.Description(); desc != "" {
			return desc
		}
	}
	return string(c.kind)
}

// Execute applies the action. A successful execution is appended to the
// storage history; unless the action is still in progress the command is
// then done and leaves the active registry. Both happen atomically.
// A Failed result is never recorded, so it can't be undone later.
//
// Execute is meant to be called once per command.
func (c *Command) Execute() Result {
	res := c.action.Execute()
	if res.IsInProgress() {
		c.log("command in progress")
		return res
	}

	c.storage.complete(c, res.IsSuccess())
	c.completions.Add(1)
	c.log("command executed", logging.KeyStatus, res.Status.String())
	return res
}

// Undo reverses the action and marks the command done.
// The history cursor is not moved; use Storage.UndoCommand for that.
func (c *Command) Undo() Result {
	res := c.action.Undo()
	if !res.IsInProgress() {
		c.done()
	}
	return res
}

// Redo re-applies the action and marks the command done.
// The command is not appended to history again.
func (c *Command) Redo() Result {
	res := c.action.Redo()
	if !res.IsInProgress() {
		c.done()
	}
	return res
}

// Cancel discards an in-progress action, if the action supports it, and
// marks the command done.
func (c *Command) Cancel() {
	if canceler, ok := c.action.(Canceler); ok {
		canceler.Cancel()
	}
	c.done()
	c.log("command cancelled")
}

// Dispose releases the action's resources. Only the first call reaches the
// action; it is safe on a command that was never executed.
func (c *Command) Dispose() {
	c.disposeOnce.Do(func() {
		if disposer, ok := c.action.(Disposer); ok {
			disposer.Dispose()
		}
		c.disposed.Store(true)
		c.log("command disposed")
	})
}

// Disposed reports whether Dispose has run.
func (c *Command) Disposed() bool { return c.disposed.Load() }

// Completions returns how many times the command has been done.
func (c *Command) Completions() int { return int(c.completions.Load()) }

// done deregisters the command from the active registry.
func (c *Command) done() {
	c.storage.removeCommand(c)
	c.completions.Add(1)
}

func (c *Command) log(msg string, args ...any) {
	c.storage.logger.Debug(msg, append([]any{
		logging.KeyCommandID, c.id,
		logging.KeyKind, string(c.kind),
	}, args...)...)
}
