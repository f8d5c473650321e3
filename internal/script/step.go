// Package script turns user input into steps and drives them through the
// command core: it decides when to execute a new command and when to undo
// or redo history.
package script

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/manav03panchal/commandkit/internal/errors"
	"github.com/manav03panchal/commandkit/internal/model"
)

// Op is the kind of a step.
type Op string

// Step operations.
const (
	OpMove  Op = "move"
	OpLabel Op = "label"
	OpUndo  Op = "undo"
	OpRedo  Op = "redo"
	OpClear Op = "clear"
)

// Step is one scripted input.
type Step struct {
	Op        Op           `json:"op"`
	Object    string       `json:"object,omitempty"`
	Direction model.Vector `json:"direction,omitzero"`
	// Distance of zero means the runner's default distance.
	Distance float64 `json:"distance,omitempty"`
	Text     string  `json:"text,omitempty"`
}

// String renders the step the way ParseToken accepts it.
func (s Step) String() string {
	switch s.Op {
	case OpMove:
		tok := model.DirectionName(s.Direction)
		if s.Distance != 0 {
			tok += ":" + strconv.FormatFloat(s.Distance, 'f', -1, 64)
		}
		return withObject(s.Object, tok)
	case OpLabel:
		return withObject(s.Object, "label="+s.Text)
	default:
		return string(s.Op)
	}
}

func withObject(object, tok string) string {
	if object == "" {
		return tok
	}
	return object + "." + tok
}

// ParseToken parses one inline step.
//
//	north, w, arrowup       move one default distance
//	up:2, crate.east:0.5    move a given distance, optionally naming the object
//	crate.v2.north          object names may contain dots
//	label=hello             set a label
//	undo, redo, clear       history control
func ParseToken(token string) (Step, error) {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return Step{}, errs.InvalidValue(errs.ErrUnknownStep, "step", token)
	}

	switch Op(strings.ToLower(tok)) {
	case OpUndo, "z":
		return Step{Op: OpUndo}, nil
	case OpRedo, "y":
		return Step{Op: OpRedo}, nil
	case OpClear:
		return Step{Op: OpClear}, nil
	}

	object := ""
	// Object names may contain dots, so the object prefix ends at the last
	// '.' before any '=' or ':'.
	head := tok
	if i := strings.IndexAny(tok, "=:"); i >= 0 {
		head = tok[:i]
	}
	if i := strings.LastIndexByte(head, '.'); i > 0 {
		object, tok = tok[:i], tok[i+1:]
	}

	if text, ok := strings.CutPrefix(tok, "label="); ok {
		return Step{Op: OpLabel, Object: object, Text: text}, nil
	}

	name, dist, hasDist := strings.Cut(tok, ":")
	dir, ok := model.ParseDirection(name)
	if !ok {
		return Step{}, errs.InvalidValue(errs.ErrUnknownStep, "step", token)
	}
	step := Step{Op: OpMove, Object: object, Direction: dir}
	if hasDist {
		d, err := strconv.ParseFloat(dist, 64)
		if err != nil || !(d > 0) || math.IsInf(d, 0) {
			return Step{}, errs.InvalidValue(errs.ErrInvalidDistance, "distance", dist)
		}
		step.Distance = d
	}
	return step, nil
}

// ParseArgs parses each argument with ParseToken.
func ParseArgs(args []string) ([]Step, error) {
	if len(args) == 0 {
		return nil, &errs.UserError{
			Message:    "no steps given",
			Suggestion: "Pass steps like 'north east undo'.",
			Cause:      errs.ErrEmptyScript,
		}
	}
	steps := make([]Step, 0, len(args))
	for i, arg := range args {
		step, err := ParseToken(arg)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}
