package output

import (
	"time"

	"github.com/manav03panchal/commandkit/internal/command"
	errs "github.com/manav03panchal/commandkit/internal/errors"
	"github.com/manav03panchal/commandkit/internal/model"
	"github.com/manav03panchal/commandkit/internal/script"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// OutcomeOutput represents one played step in JSON output.
type OutcomeOutput struct {
	Step       string `json:"step"`
	Op         string `json:"op"`
	Status     string `json:"status"`
	Body       any    `json:"body,omitempty"`
	Error      string `json:"error,omitempty"`
	Cursor     int    `json:"cursor"`
	HistoryLen int    `json:"history_len"`
}

// NewOutcomeOutput creates an OutcomeOutput from an Outcome.
func NewOutcomeOutput(o script.Outcome) *OutcomeOutput {
	out := &OutcomeOutput{
		Step:       o.Step.String(),
		Op:         string(o.Step.Op),
		Status:     o.Result.Status.String(),
		Cursor:     o.Cursor,
		HistoryLen: o.HistoryLen,
	}
	if err := o.Result.Err(); err != nil {
		out.Error = err.Error()
	} else {
		out.Body = o.Result.Body
	}
	return out
}

// EntryOutput represents a history entry in JSON output.
type EntryOutput struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	RecordedAt  string `json:"recorded_at"`
	Applied     bool   `json:"applied"`
}

// HistoryOutput represents the history and its cursor.
type HistoryOutput struct {
	Cursor  int            `json:"cursor"`
	CanUndo bool           `json:"can_undo"`
	CanRedo bool           `json:"can_redo"`
	Entries []*EntryOutput `json:"entries"`
}

// NewHistoryOutput creates a HistoryOutput from storage entries.
func NewHistoryOutput(entries []command.Entry, cursor int) *HistoryOutput {
	out := &HistoryOutput{
		Cursor:  cursor,
		CanUndo: cursor > 0,
		CanRedo: cursor < len(entries),
		Entries: make([]*EntryOutput, len(entries)),
	}
	for i, e := range entries {
		out.Entries[i] = &EntryOutput{
			ID:          e.ID,
			Kind:        string(e.Kind),
			Description: e.Description,
			RecordedAt:  e.RecordedAt.Format(time.RFC3339Nano),
			Applied:     e.Applied,
		}
	}
	return out
}

// ObjectOutput represents a scene object in JSON output.
type ObjectOutput struct {
	Name      string       `json:"name"`
	Position  model.Vector `json:"position"`
	Label     string       `json:"label,omitempty"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at"`
}

// NewObjectOutput creates an ObjectOutput from an Object.
func NewObjectOutput(obj *model.Object) *ObjectOutput {
	return &ObjectOutput{
		Name:      obj.Name,
		Position:  obj.Position,
		Label:     obj.Label,
		CreatedAt: obj.CreatedAt.Format(time.RFC3339),
		UpdatedAt: obj.UpdatedAt.Format(time.RFC3339),
	}
}

// RunResponse represents the output of a do or run command in JSON.
// Error is set when the run stopped early; Outcomes then holds the steps
// played before it stopped.
type RunResponse struct {
	Status     string           `json:"status"`
	Error      string           `json:"error,omitempty"`
	Suggestion string           `json:"suggestion,omitempty"`
	Outcomes   []*OutcomeOutput `json:"outcomes"`
	History    *HistoryOutput   `json:"history"`
	Active     []string         `json:"active"`
	Objects    []*ObjectOutput  `json:"objects"`
}

// ObjectsResponse represents the scene listing in JSON.
type ObjectsResponse struct {
	Objects []*ObjectOutput `json:"objects"`
}

// ObjectResponse represents a single object change in JSON.
type ObjectResponse struct {
	Status string        `json:"status"`
	Object *ObjectOutput `json:"object,omitempty"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

func newObjectOutputs(objs []*model.Object) []*ObjectOutput {
	out := make([]*ObjectOutput, len(objs))
	for i, obj := range objs {
		out[i] = NewObjectOutput(obj)
	}
	return out
}

// PrintRun outputs a run in JSON format. A non-nil runErr marks the run
// as stopped early.
func (j *JSONFormatter) PrintRun(outcomes []script.Outcome, entries []command.Entry, cursor int, active []command.Kind, objs []*model.Object, runErr error) error {
	resp := RunResponse{
		Status:   "ok",
		Outcomes: make([]*OutcomeOutput, len(outcomes)),
		History:  NewHistoryOutput(entries, cursor),
		Active:   make([]string, len(active)),
		Objects:  newObjectOutputs(objs),
	}
	for i, o := range outcomes {
		resp.Outcomes[i] = NewOutcomeOutput(o)
	}
	for i, k := range active {
		resp.Active[i] = string(k)
	}
	if runErr != nil {
		resp.Status = "error"
		resp.Error = runErr.Error()
		resp.Suggestion = errs.GetSuggestion(runErr)
	}
	return j.JSON(resp)
}

// PrintObjects outputs the scene in JSON format.
func (j *JSONFormatter) PrintObjects(objs []*model.Object) error {
	return j.JSON(ObjectsResponse{Objects: newObjectOutputs(objs)})
}

// PrintObject outputs a single object change in JSON format.
func (j *JSONFormatter) PrintObject(status string, obj *model.Object) error {
	resp := ObjectResponse{Status: status}
	if obj != nil {
		resp.Object = NewObjectOutput(obj)
	}
	return j.JSON(resp)
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(errMsg, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     "error",
		Error:      errMsg,
		Suggestion: suggestion,
	})
}
