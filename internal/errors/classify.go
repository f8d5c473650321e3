package errors

import (
	"errors"
	"io/fs"
	"syscall"
)

// Category represents the type of error for display and handling purposes.
type Category int

const (
	// CategoryUnknown is the default for unclassified errors.
	CategoryUnknown Category = iota
	// CategoryUser indicates an error the user can fix (bad input, missing args).
	CategoryUser
	// CategorySystem indicates a system-level error (database, file system).
	CategorySystem
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategorySystem:
		return "system"
	default:
		return "unknown"
	}
}

// Classify determines the category of an error.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	// Typed errors first
	if IsUserError(err) {
		return CategoryUser
	}
	if IsSystemError(err) {
		return CategorySystem
	}

	if isUserSentinel(err) {
		return CategoryUser
	}
	if isSystemLevel(err) {
		return CategorySystem
	}

	return CategoryUnknown
}

// isUserSentinel checks for sentinels produced by bad input.
func isUserSentinel(err error) bool {
	for _, sentinel := range []error{
		ErrObjectNotFound,
		ErrObjectExists,
		ErrInvalidName,
		ErrInvalidDirection,
		ErrInvalidDistance,
		ErrUnknownStep,
		ErrEmptyScript,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// isSystemLevel checks if an error is a system-level error.
func isSystemLevel(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOSPC, syscall.EACCES, syscall.EPERM, syscall.EIO, syscall.EROFS:
			return true
		}
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return true
	}

	return errors.Is(err, ErrDatabase) ||
		errors.Is(err, ErrDatabaseLocked) ||
		errors.Is(err, ErrDiskFull)
}

// FormatByCategory returns a user-appropriate error message based on category.
func FormatByCategory(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	switch Classify(err) {
	case CategoryUser:
		if suggestion := GetSuggestion(err); suggestion != "" {
			return msg + "\n\nTry: " + suggestion
		}
		return msg

	case CategorySystem:
		if suggestion := GetSuggestion(err); suggestion != "" {
			return "System error: " + msg + "\n\n" + suggestion
		}
		return "System error: " + msg

	default:
		return msg
	}
}
