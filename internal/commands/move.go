package commands

import (
	"fmt"
	"strconv"

	"github.com/manav03panchal/commandkit/internal/command"
	"github.com/manav03panchal/commandkit/internal/model"
)

// Move displaces an object by direction*distance.
type Move struct {
	store     ObjectStore
	object    string
	direction model.Vector
	distance  float64
}

// NewMoveAction creates a move action. Most callers want Factory.NewMove.
func NewMoveAction(store ObjectStore, object string, direction model.Vector, distance float64) *Move {
	return &Move{
		store:     store,
		object:    object,
		direction: direction,
		distance:  distance,
	}
}

// Kind returns KindMove.
func (m *Move) Kind() command.Kind { return KindMove }

// Delta returns the displacement applied by Execute and Redo.
func (m *Move) Delta() model.Vector {
	return m.direction.Scale(m.distance)
}

// Execute moves the object, creating it at the origin on first use.
// The result body is the new position.
func (m *Move) Execute() command.Result {
	obj, _, err := m.store.GetOrCreate(m.object)
	if err != nil {
		return command.Failed(err)
	}
	return m.shift(obj, m.Delta())
}

// Undo moves the object back.
func (m *Move) Undo() command.Result {
	return m.apply(m.Delta().Neg())
}

// Redo moves the object again.
func (m *Move) Redo() command.Result {
	return m.apply(m.Delta())
}

// Description returns e.g. "move crate north 1".
func (m *Move) Description() string {
	return fmt.Sprintf("move %s %s %s", m.object, model.DirectionName(m.direction),
		strconv.FormatFloat(m.distance, 'f', -1, 64))
}

func (m *Move) apply(delta model.Vector) command.Result {
	obj, err := m.store.Get(m.object)
	if err != nil {
		return command.Failed(err)
	}
	return m.shift(obj, delta)
}

func (m *Move) shift(obj *model.Object, delta model.Vector) command.Result {
	obj.Position = obj.Position.Add(delta)
	if err := m.store.Update(obj); err != nil {
		return command.Failed(err)
	}
	return command.Success(obj.Position)
}
