package command

import "log/slog"

// Option configures a Storage.
type Option func(*Storage)

// WithLogger sets the logger used for storage and command diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Storage) {
		if logger != nil {
			s.logger = logger
		}
	}
}
