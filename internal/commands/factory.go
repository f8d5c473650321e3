package commands

import (
	"github.com/manav03panchal/commandkit/internal/command"
	"github.com/manav03panchal/commandkit/internal/model"
	"github.com/manav03panchal/commandkit/internal/validate"
)

// Factory creates commands bound to one session's storage.
type Factory struct {
	storage *command.Storage
	store   ObjectStore
	display Display
}

// NewFactory creates a factory. A nil display discards label output.
func NewFactory(storage *command.Storage, store ObjectStore, display Display) *Factory {
	if display == nil {
		display = nopDisplay{}
	}
	return &Factory{storage: storage, store: store, display: display}
}

// Storage returns the command storage the factory registers with.
func (f *Factory) Storage() *command.Storage { return f.storage }

// NewMove validates its input and returns a registered move command.
func (f *Factory) NewMove(object string, direction model.Vector, distance float64) (*command.Command, error) {
	if err := validate.ObjectName(object); err != nil {
		return nil, err
	}
	if err := validate.Distance(distance); err != nil {
		return nil, err
	}
	return command.New(f.storage, NewMoveAction(f.store, object, direction, distance))
}

// NewLabel validates its input and returns a registered label command.
func (f *Factory) NewLabel(object, text string) (*command.Command, error) {
	if err := validate.ObjectName(object); err != nil {
		return nil, err
	}
	text = validate.SanitizeLabel(text)
	if err := validate.Label(text); err != nil {
		return nil, err
	}
	return command.New(f.storage, NewLabelAction(f.store, f.display, object, text))
}
