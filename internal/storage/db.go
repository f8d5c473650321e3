// Package storage provides the database layer for the scene that commands act on.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v4"

	errs "github.com/manav03panchal/commandkit/internal/errors"
)

const (
	// AppName is the application name used for data directories.
	AppName = "commandkit"
)

// DB wraps a Badger database connection.
type DB struct {
	db   *badger.DB
	path string
}

// Options configures the database connection.
type Options struct {
	// Path is the database directory path. Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
}

// DefaultPath returns the default database path under the XDG data home.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// Open opens or creates a database at the given path.
func Open(opts Options) (*DB, error) {
	var badgerOpts badger.Options
	path := ""

	if opts.InMemory || opts.Path == "" {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := CheckDiskSpace(opts.Path, MinFreeSpace); err != nil {
			return nil, err
		}
		if err := os.MkdirAll(opts.Path, 0755); err != nil {
			return nil, errs.NewSystemErrorWithOp("open database", "cannot create data directory", err)
		}
		badgerOpts = badger.DefaultOptions(opts.Path)
		path = opts.Path
	}

	// Reduce logging noise
	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, openError(err)
	}

	return &DB{db: db, path: path}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the database directory, or "" for in-memory databases.
func (d *DB) Path() string {
	return d.path
}

// Badger returns the underlying Badger database for advanced operations.
func (d *DB) Badger() *badger.DB {
	return d.db
}

// openError classifies a badger.Open failure.
func openError(err error) error {
	switch {
	case IsDiskFullError(err):
		return errs.NewSystemErrorWithOp("open database", errs.ErrDiskFull.Error(),
			fmt.Errorf("%w: %w", errs.ErrDiskFull, err))
	case strings.Contains(err.Error(), "Cannot acquire directory lock"):
		// Badger holds a directory lock for the lifetime of the DB.
		return errs.NewSystemErrorWithOp("open database", errs.ErrDatabaseLocked.Error(),
			fmt.Errorf("%w: %w", errs.ErrDatabaseLocked, err))
	default:
		return errs.NewSystemErrorWithOp("open database", errs.ErrDatabase.Error(),
			fmt.Errorf("%w: %w", errs.ErrDatabase, err))
	}
}
