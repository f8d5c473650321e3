// Package commands provides the concrete scene actions that run through the
// command core, and the factory that binds them to a session's storage.
package commands

import (
	"github.com/manav03panchal/commandkit/internal/command"
	"github.com/manav03panchal/commandkit/internal/model"
)

// Command kinds. The active registry keeps one live command per kind.
const (
	KindMove  command.Kind = "move"
	KindLabel command.Kind = "label"
)

// ObjectStore is the persistence the actions mutate.
// *storage.ObjectRepo satisfies it.
type ObjectStore interface {
	Get(name string) (*model.Object, error)
	GetOrCreate(name string) (*model.Object, bool, error)
	Update(obj *model.Object) error
}

// Display shows an object's label to the user.
type Display interface {
	Show(objectName, text string)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(objectName, text string)

// Show calls f(objectName, text).
func (f DisplayFunc) Show(objectName, text string) { f(objectName, text) }

type nopDisplay struct{}

func (nopDisplay) Show(string, string) {}
