// Package runtime provides application runtime context for commandkit.
package runtime

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/manav03panchal/commandkit/internal/command"
	"github.com/manav03panchal/commandkit/internal/commands"
	"github.com/manav03panchal/commandkit/internal/config"
	"github.com/manav03panchal/commandkit/internal/logging"
	"github.com/manav03panchal/commandkit/internal/output"
	"github.com/manav03panchal/commandkit/internal/script"
	"github.com/manav03panchal/commandkit/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter
	Config    *config.RuntimeConfig

	ObjectRepo *storage.ObjectRepo

	// Storage is the one command storage for this session. Every command
	// the factory creates is bound to it.
	Storage *command.Storage
	Factory *commands.Factory

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	// Config overrides environment-based configuration when set.
	Config    *config.RuntimeConfig
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Load(); err != nil {
			return nil, err
		}
	}

	level := cfg.LogLevel()
	if opts.Debug {
		level = slog.LevelDebug
	}
	logging.Init(logging.Config{Level: level, JSON: cfg.Log.JSON, Output: os.Stderr})

	db, err := storage.Open(cfg.StorageOptions())
	if err != nil {
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	repo := storage.NewObjectRepo(db)
	cmdStorage := command.NewStorage()

	return &Context{
		DB:         db,
		Formatter:  formatter,
		Config:     cfg,
		ObjectRepo: repo,
		Storage:    cmdStorage,
		Factory:    commands.NewFactory(cmdStorage, repo, formatter),
		Debug:      opts.Debug,
	}, nil
}

// Runner returns a script runner using the configured scene defaults.
func (c *Context) Runner() *script.Runner {
	return script.NewRunner(c.Factory, script.Defaults{
		Object:   c.Config.Scene.DefaultObject,
		Distance: c.Config.Scene.DefaultDistance,
	})
}

// Close disposes any pending commands and closes the database.
func (c *Context) Close() error {
	if c.Storage != nil {
		c.Storage.ClearAll()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Debugf prints a muted diagnostic line under --debug. JSON output never
// carries these lines.
func (c *Context) Debugf(format string, args ...any) {
	if !c.Debug || c.IsJSON() {
		return
	}
	c.CLIFormatter().Muted("debug: " + fmt.Sprintf(format, args...))
}
