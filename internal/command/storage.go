package command

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/manav03panchal/commandkit/internal/logging"
)

// historyEntry wraps a recorded command with metadata.
type historyEntry struct {
	command     *Command
	description string
	recordedAt  time.Time
}

// Storage owns the active-command registry and the undo/redo history of
// one undo scope, such as one document or one scene.
type Storage struct {
	mu sync.Mutex

	// Active registry: at most one live command per kind.
	active map[Kind]*Command

	// History: executed commands and the cursor one past the last applied entry.
	history []historyEntry
	cursor  int

	logger *slog.Logger
}

// NewStorage creates an empty storage.
func NewStorage(opts ...Option) *Storage {
	s := &Storage{
		active: make(map[Kind]*Command),
		logger: logging.With(logging.KeyComponent, "command_storage"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// addCommand registers cmd under its kind. A different live command of the
// same kind is replaced and disposed; the newest instance always wins.
func (s *Storage) addCommand(cmd *Command) {
	s.mu.Lock()
	prev := s.active[cmd.kind]
	if prev == cmd {
		s.mu.Unlock()
		return
	}
	s.active[cmd.kind] = cmd
	s.mu.Unlock()

	if prev != nil {
		prev.Dispose()
		s.logger.Debug("command replaced",
			logging.KeyKind, string(cmd.kind),
			"replaced_id", prev.id,
			logging.KeyCommandID, cmd.id,
		)
		return
	}
	s.logger.Debug("command registered",
		logging.KeyKind, string(cmd.kind),
		logging.KeyCommandID, cmd.id,
	)
}

// removeCommand deregisters cmd if it is the live command of its kind.
// Removing an absent or already replaced command is a no-op.
func (s *Storage) removeCommand(cmd *Command) bool {
	s.mu.Lock()
	removed := s.removeLocked(cmd)
	s.mu.Unlock()

	if removed {
		s.logger.Debug("command deregistered",
			logging.KeyKind, string(cmd.kind),
			logging.KeyCommandID, cmd.id,
		)
	}
	return removed
}

// removeLocked deregisters cmd without acquiring the lock.
func (s *Storage) removeLocked(cmd *Command) bool {
	current, ok := s.active[cmd.kind]
	if !ok || current != cmd {
		return false
	}
	delete(s.active, cmd.kind)
	return true
}

// ClearAll disposes every active command and empties the registry.
// History is left untouched.
func (s *Storage) ClearAll() {
	s.mu.Lock()
	cmds := make([]*Command, 0, len(s.active))
	for _, cmd := range s.active {
		cmds = append(cmds, cmd)
	}
	s.active = make(map[Kind]*Command)
	s.mu.Unlock()

	sort.Slice(cmds, func(i, j int) bool { return cmds[i].kind < cmds[j].kind })
	for _, cmd := range cmds {
		cmd.Dispose()
	}

	s.logger.Debug("active commands cleared", logging.KeyCount, len(cmds))
}

// Active returns the live command registered for kind.
func (s *Storage) Active(kind Kind) (*Command, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cmd, ok := s.active[kind]
	return cmd, ok
}

// IsActive reports whether cmd is the live command of its kind.
func (s *Storage) IsActive(cmd *Command) bool {
	if cmd == nil {
		return false
	}
	current, ok := s.Active(cmd.kind)
	return ok && current == cmd
}

// ActiveCount returns the number of live commands.
func (s *Storage) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// ActiveKinds returns the kinds with a live command, sorted.
func (s *Storage) ActiveKinds() []Kind {
	s.mu.Lock()
	kinds := make([]Kind, 0, len(s.active))
	for kind := range s.active {
		kinds = append(kinds, kind)
	}
	s.mu.Unlock()

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
