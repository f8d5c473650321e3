// Package command provides a reusable undo/redo command framework.
//
// A Command binds a concrete Action (the state mutation) to a Storage for
// its whole life. The Storage owns two independent structures:
//
// # Active registry
//
// At most one live command per Kind. Constructing a command registers it,
// disposing any previous instance of the same kind. When a command is done
// (after Execute, Undo, Redo or Cancel) it is deregistered again:
//
//	storage := command.NewStorage()
//	cmd, err := command.New(storage, move)   // registered as "move"
//	cmd.Execute()                            // recorded, then deregistered
//
// # History
//
// An ordered sequence of executed commands plus a cursor. The cursor points
// one past the most recently applied entry. Executing a new command after
// one or more undos discards the redo branch:
//
//	storage.UndoCommand() // Undo on the entry before the cursor, cursor-1
//	storage.RedoCommand() // cursor+1, Redo on the entry before the cursor
//
// Undo past the start and Redo past the end are no-ops, never errors.
//
// # Concurrency
//
// A Storage is safe to inspect from several goroutines, but whole operations
// are expected to be serialized by the caller. Action hooks run without the
// storage lock held and may call back into the storage. A Redo hook sees the
// cursor already advanced. An Undo hook that changes the history keeps the
// cursor it leaves behind; UndoCommand only steps back over an unchanged
// history.
package command
