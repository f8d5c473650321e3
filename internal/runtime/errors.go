package runtime

import (
	"errors"
	"fmt"
	"io"

	errs "github.com/manav03panchal/commandkit/internal/errors"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitError  = 1
	ExitSystem = 2
)

// ExitCode maps an error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errs.Classify(err) == errs.CategorySystem {
		return ExitSystem
	}
	return ExitError
}

// WriteError writes err and its suggestion as plain text.
func WriteError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", errs.FormatByCategory(err))
}

// reportedError is an error whose JSON document was already written as
// part of a command's own output.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// Reported marks err as already present in the command's JSON output, so
// ReportError only affects the exit code.
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err}
}

// ReportError writes err in the context's output format. JSON output goes
// to the formatter so scripts get a parseable document; everything else goes
// to errWriter.
func (c *Context) ReportError(errWriter io.Writer, err error) {
	if err == nil {
		return
	}
	if c.IsJSON() {
		var reported reportedError
		if errors.As(err, &reported) {
			return
		}
		_ = c.JSONFormatter().PrintError(err.Error(), errs.GetSuggestion(err))
		return
	}
	WriteError(errWriter, err)
}
