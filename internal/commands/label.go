package commands

import (
	"fmt"

	"github.com/manav03panchal/commandkit/internal/command"
	"github.com/manav03panchal/commandkit/internal/model"
)

// Label sets the text shown above an object.
type Label struct {
	store   ObjectStore
	display Display
	object  string
	text    string

	previous string
	executed bool
}

// NewLabelAction creates a label action. A nil display discards output.
func NewLabelAction(store ObjectStore, display Display, object, text string) *Label {
	if display == nil {
		display = nopDisplay{}
	}
	return &Label{
		store:   store,
		display: display,
		object:  object,
		text:    text,
	}
}

// Kind returns KindLabel.
func (l *Label) Kind() command.Kind { return KindLabel }

// Execute remembers the current label, then sets and shows the new one.
func (l *Label) Execute() command.Result {
	obj, _, err := l.store.GetOrCreate(l.object)
	if err != nil {
		return command.Failed(err)
	}
	l.previous = obj.Label
	l.executed = true
	return l.set(obj, l.text)
}

// Undo restores the label seen by Execute.
func (l *Label) Undo() command.Result {
	if !l.executed {
		return command.Failedf("label %s was never applied", l.object)
	}
	return l.load(l.previous)
}

// Redo sets the new label again.
func (l *Label) Redo() command.Result {
	return l.load(l.text)
}

// Description returns e.g. `label crate "hello"`.
func (l *Label) Description() string {
	return fmt.Sprintf("label %s %q", l.object, l.text)
}

func (l *Label) load(text string) command.Result {
	obj, err := l.store.Get(l.object)
	if err != nil {
		return command.Failed(err)
	}
	return l.set(obj, text)
}

func (l *Label) set(obj *model.Object, text string) command.Result {
	obj.Label = text
	if err := l.store.Update(obj); err != nil {
		return command.Failed(err)
	}
	l.display.Show(obj.Name, text)
	return command.Success(text)
}
