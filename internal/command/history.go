package command

import (
	"time"

	"github.com/manav03panchal/commandkit/internal/logging"
)

// Entry describes one history entry.
type Entry struct {
	ID          string
	Kind        Kind
	Description string
	RecordedAt  time.Time
	// Applied is true for entries before the cursor.
	Applied bool
}

// addToHistory appends cmd at the cursor, discarding the redo branch.
func (s *Storage) addToHistory(cmd *Command) {
	desc := cmd.Description()

	s.mu.Lock()
	s.addToHistoryLocked(cmd, desc)
	cursor, n := s.cursor, len(s.history)
	s.mu.Unlock()

	s.logHistory("command recorded", cmd, cursor, n)
}

// addToHistoryLocked appends cmd without acquiring the lock.
func (s *Storage) addToHistoryLocked(cmd *Command, desc string) {
	if s.cursor < len(s.history) {
		// Drop references so discarded commands can be collected.
		for i := s.cursor; i < len(s.history); i++ {
			s.history[i] = historyEntry{}
		}
		s.history = s.history[:s.cursor]
	}
	s.history = append(s.history, historyEntry{
		command:     cmd,
		description: desc,
		recordedAt:  time.Now(),
	})
	s.cursor++
}

// complete records cmd (when record is set) and deregisters it in a single
// critical section, so observers never see one without the other.
func (s *Storage) complete(cmd *Command, record bool) {
	var desc string
	if record {
		desc = cmd.Description()
	}

	s.mu.Lock()
	if record {
		s.addToHistoryLocked(cmd, desc)
	}
	s.removeLocked(cmd)
	cursor, n := s.cursor, len(s.history)
	s.mu.Unlock()

	if record {
		s.logHistory("command recorded", cmd, cursor, n)
	}
}

// UndoCommand undoes the entry before the cursor and moves the cursor back.
// With nothing to undo it is a no-op returning a successful result.
// The result of the command's Undo is returned unchanged.
//
// If the Undo hook itself changes the history, for example by executing a
// new command, the cursor is left where the hook put it.
func (s *Storage) UndoCommand() Result {
	s.mu.Lock()
	if len(s.history) == 0 || s.cursor == 0 {
		s.mu.Unlock()
		s.logger.Debug("nothing to undo")
		return Success(nil)
	}
	cursor, n := s.cursor, len(s.history)
	cmd := s.history[cursor-1].command
	s.mu.Unlock()

	res := cmd.Undo()

	s.mu.Lock()
	if s.cursor == cursor && len(s.history) == n && s.history[cursor-1].command == cmd {
		s.cursor--
	}
	cursor, n = s.cursor, len(s.history)
	s.mu.Unlock()

	s.logHistory("command undone", cmd, cursor, n, logging.KeyStatus, res.Status.String())
	return res
}

// RedoCommand advances the cursor and redoes the entry now before it.
// With nothing to redo it is a no-op returning a successful result.
// The cursor moves before Redo runs, so the action observes the new cursor.
func (s *Storage) RedoCommand() Result {
	s.mu.Lock()
	if len(s.history) == 0 || s.cursor == len(s.history) {
		s.mu.Unlock()
		s.logger.Debug("nothing to redo")
		return Success(nil)
	}
	s.cursor++
	cmd := s.history[s.cursor-1].command
	cursor, n := s.cursor, len(s.history)
	s.mu.Unlock()

	res := cmd.Redo()

	s.logHistory("command redone", cmd, cursor, n, logging.KeyStatus, res.Status.String())
	return res
}

// ClearHistory drops every history entry and resets the cursor.
// The active registry is left untouched.
func (s *Storage) ClearHistory() {
	s.mu.Lock()
	n := len(s.history)
	s.history = nil
	s.cursor = 0
	s.mu.Unlock()

	s.logger.Debug("history cleared", logging.KeyCount, n)
}

// Cursor returns the history cursor.
func (s *Storage) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Len returns the number of history entries, including the redo branch.
func (s *Storage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// CanUndo returns true if undo is available.
func (s *Storage) CanUndo() bool {
	return s.Cursor() > 0
}

// CanRedo returns true if redo is available.
func (s *Storage) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor < len(s.history)
}

// History returns the recorded commands in order.
func (s *Storage) History() []*Command {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmds := make([]*Command, len(s.history))
	for i, entry := range s.history {
		cmds[i] = entry.command
	}
	return cmds
}

// Entries returns a description of every history entry.
func (s *Storage) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Entry, len(s.history))
	for i := range s.history {
		result[i] = s.entryLocked(i)
	}
	return result
}

// PeekUndo returns the entry the next UndoCommand would undo.
func (s *Storage) PeekUndo() (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor == 0 {
		return Entry{}, false
	}
	return s.entryLocked(s.cursor - 1), true
}

// PeekRedo returns the entry the next RedoCommand would redo.
func (s *Storage) PeekRedo() (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor >= len(s.history) {
		return Entry{}, false
	}
	return s.entryLocked(s.cursor), true
}

func (s *Storage) entryLocked(i int) Entry {
	entry := s.history[i]
	return Entry{
		ID:          entry.command.id,
		Kind:        entry.command.kind,
		Description: entry.description,
		RecordedAt:  entry.recordedAt,
		Applied:     i < s.cursor,
	}
}

func (s *Storage) logHistory(msg string, cmd *Command, cursor, n int, args ...any) {
	s.logger.Debug(msg, append([]any{
		logging.KeyCommandID, cmd.id,
		logging.KeyKind, string(cmd.kind),
		logging.KeyCursor, cursor,
		logging.KeyHistoryLen, n,
	}, args...)...)
}
