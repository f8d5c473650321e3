// Package validate provides input validation helpers for commandkit.
package validate

import (
	"math"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/manav03panchal/commandkit/internal/errors"
)

const (
	// MaxObjectNameLength is the maximum length for an object name.
	MaxObjectNameLength = 32
	// MaxLabelLength is the maximum length for an object label.
	MaxLabelLength = 256
	// MaxDistance bounds a single move so positions stay well inside float range.
	MaxDistance = 1e6
)

// nameRegex validates object names (alphanumeric, dashes, underscores, periods).
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ObjectName validates an object name.
func ObjectName(name string) error {
	if name == "" {
		return errors.NewUserError("Object name cannot be empty", "Provide an object name like 'crate'")
	}
	if len(name) > MaxObjectNameLength {
		return &errors.UserError{
			Message:    "Object name too long",
			Suggestion: "Object names must be 32 characters or fewer",
			Field:      "object",
			Value:      name,
			Cause:      errors.ErrInvalidName,
		}
	}
	if !nameRegex.MatchString(name) {
		return &errors.UserError{
			Message:    "Invalid object name",
			Suggestion: "Names must start with a letter or number and contain only letters, numbers, dashes, underscores, or periods",
			Field:      "object",
			Value:      name,
			Cause:      errors.ErrInvalidName,
		}
	}
	return nil
}

// Distance validates a move distance. Zero is allowed and moves nothing.
func Distance(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return errors.InvalidValue(errors.ErrInvalidDistance, "distance", strconv.FormatFloat(d, 'g', -1, 64))
	}
	if d < 0 || d > MaxDistance {
		return errors.InvalidValue(errors.ErrInvalidDistance, "distance", strconv.FormatFloat(d, 'g', -1, 64))
	}
	return nil
}

// Label validates an object label. Empty clears the label.
func Label(label string) error {
	if utf8.RuneCountInString(label) > MaxLabelLength {
		return errors.NewUserErrorWithField("label", TruncateString(label, 16),
			"Label too long",
			"Labels must be 256 characters or fewer")
	}
	return nil
}
