package script

import (
	"context"
	"log/slog"

	"github.com/manav03panchal/commandkit/internal/command"
	"github.com/manav03panchal/commandkit/internal/commands"
	errs "github.com/manav03panchal/commandkit/internal/errors"
	"github.com/manav03panchal/commandkit/internal/logging"
)

// Outcome is the result of one step and the history state right after it.
type Outcome struct {
	Step       Step
	Result     command.Result
	Cursor     int
	HistoryLen int
}

// Defaults fill in steps that leave the object or distance unset.
type Defaults struct {
	Object   string
	Distance float64
}

// Runner plays steps against one session's command storage.
type Runner struct {
	factory  *commands.Factory
	storage  *command.Storage
	defaults Defaults
	logger   *slog.Logger
}

// NewRunner creates a runner that builds commands with factory.
func NewRunner(factory *commands.Factory, defaults Defaults) *Runner {
	if defaults.Distance == 0 {
		defaults.Distance = 1
	}
	return &Runner{
		factory:  factory,
		storage:  factory.Storage(),
		defaults: defaults,
		logger:   logging.With(logging.KeyComponent, "script"),
	}
}

// Run plays steps in order. A step whose command fails is reported in its
// Outcome and the run continues; invalid input or cancellation of ctx stops
// the run and returns the outcomes so far.
func (r *Runner) Run(ctx context.Context, steps []Step) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(steps))
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		step = r.withDefaults(step)
		res, err := r.play(step)
		if err != nil {
			return outcomes, errs.Wrapf(err, "step %d", i+1)
		}

		out := Outcome{
			Step:       step,
			Result:     res,
			Cursor:     r.storage.Cursor(),
			HistoryLen: r.storage.Len(),
		}
		outcomes = append(outcomes, out)

		r.logger.Debug("step played",
			logging.KeyStep, step.String(),
			logging.KeyStatus, res.Status.String(),
			logging.KeyCursor, out.Cursor,
			logging.KeyHistoryLen, out.HistoryLen,
		)
	}
	return outcomes, nil
}

func (r *Runner) withDefaults(step Step) Step {
	if step.Op != OpMove && step.Op != OpLabel {
		return step
	}
	if step.Object == "" {
		step.Object = r.defaults.Object
	}
	if step.Op == OpMove && step.Distance == 0 {
		step.Distance = r.defaults.Distance
	}
	return step
}

func (r *Runner) play(step Step) (command.Result, error) {
	switch step.Op {
	case OpMove:
		cmd, err := r.factory.NewMove(step.Object, step.Direction, step.Distance)
		if err != nil {
			return command.Result{}, err
		}
		return cmd.Execute(), nil
	case OpLabel:
		cmd, err := r.factory.NewLabel(step.Object, step.Text)
		if err != nil {
			return command.Result{}, err
		}
		return cmd.Execute(), nil
	case OpUndo:
		return r.storage.UndoCommand(), nil
	case OpRedo:
		return r.storage.RedoCommand(), nil
	case OpClear:
		r.storage.ClearHistory()
		return command.Success(nil), nil
	default:
		return command.Result{}, errs.InvalidValue(errs.ErrUnknownStep, "op", string(step.Op))
	}
}
