package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// UserError Tests
// =============================================================================

func TestNewUserError(t *testing.T) {
	err := NewUserError("invalid input", "try again")
	assert.NotNil(t, err)
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "try again", err.Suggestion)
}

func TestUserErrorError(t *testing.T) {
	t.Run("without_field", func(t *testing.T) {
		err := NewUserError("invalid input", "")
		assert.Equal(t, "invalid input", err.Error())
	})

	t.Run("with_field", func(t *testing.T) {
		err := NewUserErrorWithField("direction", "nowhere", "invalid direction", "")
		assert.Equal(t, "invalid direction: 'nowhere'", err.Error())
	})
}

func TestInvalidValue(t *testing.T) {
	err := InvalidValue(ErrInvalidDistance, "distance", "-1")

	assert.Equal(t, "invalid distance: '-1'", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidDistance))
	assert.Equal(t, Suggestions[ErrInvalidDistance], err.Suggestion)
}

func TestIsUserError(t *testing.T) {
	t.Run("user_error", func(t *testing.T) {
		assert.True(t, IsUserError(NewUserError("test", "")))
	})

	t.Run("wrapped_user_error", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", NewUserError("test", ""))
		assert.True(t, IsUserError(wrapped))
	})

	t.Run("not_user_error", func(t *testing.T) {
		assert.False(t, IsUserError(errors.New("plain error")))
	})

	t.Run("nil_error", func(t *testing.T) {
		assert.False(t, IsUserError(nil))
	})
}

// =============================================================================
// SystemError Tests
// =============================================================================

func TestSystemError(t *testing.T) {
	cause := errors.New("badger: closed")

	t.Run("without_op", func(t *testing.T) {
		err := NewSystemError("database unavailable", cause)
		assert.Equal(t, "database unavailable", err.Error())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("with_op", func(t *testing.T) {
		err := NewSystemErrorWithOp("save object", "database unavailable", cause)
		assert.Equal(t, "database unavailable during save object", err.Error())
		assert.True(t, IsSystemError(err))

		se, ok := AsSystemError(err)
		assert.True(t, ok)
		assert.Equal(t, "save object", se.Op)
	})
}

// =============================================================================
// Wrap Tests
// =============================================================================

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, Wrapf(nil, "ignored %d", 1))

	err := Wrapf(ErrObjectNotFound, "load %q", "crate")
	assert.Equal(t, `load "crate": object not found`, err.Error())
	assert.True(t, Is(err, ErrObjectNotFound))
}

// =============================================================================
// Classification Tests
// =============================================================================

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"nil", nil, CategoryUnknown},
		{"user_error", NewUserError("bad", ""), CategoryUser},
		{"user_sentinel", Wrap(ErrUnknownStep, "parse"), CategoryUser},
		{"system_error", NewSystemError("db", nil), CategorySystem},
		{"path_error", &os.PathError{Op: "open", Path: "x", Err: os.ErrNotExist}, CategorySystem},
		{"database_sentinel", Wrap(ErrDatabase, "open"), CategorySystem},
		{"locked_sentinel", Wrap(ErrDatabaseLocked, "open"), CategorySystem},
		{"disk_full_sentinel", Wrap(ErrDiskFull, "sync"), CategorySystem},
		{"plain", errors.New("plain"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "user", CategoryUser.String())
	assert.Equal(t, "system", CategorySystem.String())
	assert.Equal(t, "unknown", CategoryUnknown.String())
}

func TestFormatByCategory(t *testing.T) {
	assert.Equal(t, "", FormatByCategory(nil))

	msg := FormatByCategory(ErrInvalidDirection)
	assert.Contains(t, msg, "invalid direction")
	assert.Contains(t, msg, "Try: ")

	msg = FormatByCategory(NewSystemError("disk gone", nil))
	assert.Contains(t, msg, "System error: disk gone")

	assert.Equal(t, "plain", FormatByCategory(errors.New("plain")))
}

// =============================================================================
// Suggestion Tests
// =============================================================================

func TestGetSuggestion(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, GetSuggestion(nil))
	})

	t.Run("sentinel", func(t *testing.T) {
		assert.Equal(t, Suggestions[ErrObjectNotFound], GetSuggestion(Wrap(ErrObjectNotFound, "get")))
	})

	t.Run("user_error_suggestion_wins", func(t *testing.T) {
		err := NewUserError("nope", "do this instead")
		assert.Equal(t, "do this instead", GetSuggestion(err))
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Empty(t, GetSuggestion(errors.New("mystery")))
	})
}
