package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrNilStorage:       "Construct commands through a Factory bound to a command storage.",
	ErrNilAction:        "Pass a concrete action such as a move or a label.",
	ErrObjectNotFound:   "Use 'commandkit scene' to list objects or 'commandkit scene add <name>' to create one.",
	ErrObjectExists:     "Pick another name or use 'commandkit scene reset <name>'.",
	ErrInvalidName:      "Object names are 1-32 characters: letters, digits, dashes, underscores or periods.",
	ErrInvalidDirection: "Use north, south, east, west, up, down, w/a/s/d or the arrow names.",
	ErrInvalidDistance:  "Distances are numbers from 0 to 1000000, e.g. 'north:2' or --distance 0.5.",
	ErrUnknownStep:      "Steps are directions, 'undo', 'redo', 'clear' or 'label=<text>'.",
	ErrEmptyScript:      "Add at least one entry under 'steps:' in the scenario file.",
	ErrDatabase:         "Check permissions of the data directory or set COMMANDKIT_DATABASE=:memory:.",
	ErrDatabaseLocked:   "Wait for the other commandkit command to finish, or point COMMANDKIT_DATABASE elsewhere.",
	ErrDiskFull:         "Free up disk space and try again.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}
