package command

import "fmt"

// Status is the outcome class of a command operation.
type Status int

const (
	// StatusSuccess means the operation completed.
	StatusSuccess Status = iota
	// StatusInProgress means the operation started but has not committed yet.
	StatusInProgress
	// StatusFailed means the action could not complete.
	StatusFailed
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInProgress:
		return "in_progress"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result describes the outcome of Execute, Undo or Redo.
// Body is opaque to the framework and is handed back to the caller as is.
type Result struct {
	Status Status
	Body   any
}

// Success returns a successful result carrying body.
func Success(body any) Result {
	return Result{Status: StatusSuccess, Body: body}
}

// InProgress returns a pending result carrying body.
func InProgress(body any) Result {
	return Result{Status: StatusInProgress, Body: body}
}

// Failed returns a failed result carrying body.
func Failed(body any) Result {
	return Result{Status: StatusFailed, Body: body}
}

// Failedf returns a failed result whose body is a formatted error.
func Failedf(format string, args ...any) Result {
	return Failed(fmt.Errorf(format, args...))
}

// IsSuccess reports whether the result is a success.
func (r Result) IsSuccess() bool { return r.Status == StatusSuccess }

// IsInProgress reports whether the result is still pending.
func (r Result) IsInProgress() bool { return r.Status == StatusInProgress }

// IsFailed reports whether the result is a failure.
func (r Result) IsFailed() bool { return r.Status == StatusFailed }

// Err returns the failure as an error, or nil for non-failed results.
// An error body is returned unchanged so callers can use errors.Is on it.
func (r Result) Err() error {
	if !r.IsFailed() {
		return nil
	}
	switch body := r.Body.(type) {
	case error:
		return body
	case nil:
		return fmt.Errorf("command failed")
	default:
		return fmt.Errorf("command failed: %v", body)
	}
}
