package script

import (
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	errs "github.com/manav03panchal/commandkit/internal/errors"
	"github.com/manav03panchal/commandkit/internal/model"
)

// Scenario is a YAML script file:
//
//	object: crate
//	distance: 1
//	steps:
//	  - north
//	  - east:2
//	  - undo
//	  - label: hello
//	  - {op: move, object: player, direction: up, distance: 3}
type Scenario struct {
	Object   string  `yaml:"object"`
	Distance float64 `yaml:"distance"`
	Steps    []Step  `yaml:"steps"`
}

// stepMapping is the long form of a step.
type stepMapping struct {
	Op        string  `yaml:"op"`
	Object    string  `yaml:"object"`
	Direction string  `yaml:"direction"`
	Distance  float64 `yaml:"distance"`
	Text      string  `yaml:"text"`
	Label     *string `yaml:"label"`
	Move      string  `yaml:"move"`
}

// UnmarshalYAML accepts a step token or a mapping.
func (s *Step) UnmarshalYAML(unmarshal func(any) error) error {
	var tok string
	if err := unmarshal(&tok); err == nil {
		step, err := ParseToken(tok)
		if err != nil {
			return err
		}
		*s = step
		return nil
	}

	var m stepMapping
	if err := unmarshal(&m); err != nil {
		return err
	}
	step, err := m.step()
	if err != nil {
		return err
	}
	*s = step
	return nil
}

func (m stepMapping) step() (Step, error) {
	op := Op(strings.ToLower(m.Op))
	text := m.Text
	direction := m.Direction
	switch {
	case m.Label != nil:
		op, text = OpLabel, *m.Label
	case m.Move != "":
		op, direction = OpMove, m.Move
	case op == "" && direction != "":
		op = OpMove
	}

	switch op {
	case OpUndo, OpRedo, OpClear:
		return Step{Op: op}, nil
	case OpLabel:
		return Step{Op: OpLabel, Object: m.Object, Text: text}, nil
	case OpMove:
		dir, ok := model.ParseDirection(direction)
		if !ok {
			return Step{}, errs.InvalidValue(errs.ErrInvalidDirection, "direction", direction)
		}
		if m.Distance < 0 {
			return Step{}, errs.InvalidValue(errs.ErrInvalidDistance, "distance", "negative")
		}
		return Step{Op: OpMove, Object: m.Object, Direction: dir, Distance: m.Distance}, nil
	default:
		return Step{}, errs.InvalidValue(errs.ErrUnknownStep, "op", m.Op)
	}
}

// Parse decodes a scenario and fills each step's object and distance from
// the scenario-level defaults.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, errs.Wrap(err, "parse scenario")
	}
	if len(sc.Steps) == 0 {
		return nil, errs.InvalidValue(errs.ErrEmptyScript, "steps", "")
	}
	for i := range sc.Steps {
		st := &sc.Steps[i]
		if st.Op != OpMove && st.Op != OpLabel {
			continue
		}
		if st.Object == "" {
			st.Object = sc.Object
		}
		if st.Op == OpMove && st.Distance == 0 {
			st.Distance = sc.Distance
		}
	}
	return &sc, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewSystemErrorWithOp("read scenario", "cannot read "+path, err)
	}
	return Parse(data)
}
