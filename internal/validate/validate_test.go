package validate

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manav03panchal/commandkit/internal/errors"
)

// =============================================================================
// ObjectName Tests
// =============================================================================

func TestObjectName(t *testing.T) {
	tests := []struct {
		name    string
		object  string
		wantErr bool
	}{
		{"simple", "crate", false},
		{"with_numbers", "crate2", false},
		{"with_dash", "big-crate", false},
		{"with_underscore", "big_crate", false},
		{"with_period", "crate.v2", false},
		{"single_char", "a", false},
		{"max_length", strings.Repeat("a", MaxObjectNameLength), false},

		{"empty", "", true},
		{"too_long", strings.Repeat("a", MaxObjectNameLength+1), true},
		{"starts_with_dash", "-crate", true},
		{"with_space", "big crate", true},
		{"with_colon", "object:crate", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ObjectName(tt.object)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsUserError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestObjectNameUnwrapsSentinel(t *testing.T) {
	assert.ErrorIs(t, ObjectName("no spaces"), errors.ErrInvalidName)
}

// =============================================================================
// Distance Tests
// =============================================================================

func TestDistance(t *testing.T) {
	tests := []struct {
		name    string
		d       float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"fraction", 0.5, false},
		{"max", MaxDistance, false},

		{"negative", -1, true},
		{"too_far", MaxDistance + 1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Distance(tt.d)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrInvalidDistance)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Label Tests
// =============================================================================

func TestLabel(t *testing.T) {
	assert.NoError(t, Label(""))
	assert.NoError(t, Label("hello"))
	assert.NoError(t, Label(strings.Repeat("é", MaxLabelLength)))
	assert.Error(t, Label(strings.Repeat("a", MaxLabelLength+1)))
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"crate", "crate"},
		{"  crate  ", "crate"},
		{"big crate", "bigcrate"},
		{"object:crate", "objectcrate"},
		{"crate_v1.2", "crate_v1.2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeName(tt.input))
		})
	}
}

func TestSanitizeLabel(t *testing.T) {
	assert.Equal(t, "hello", SanitizeLabel("  hello  "))
	assert.Equal(t, "a b", SanitizeLabel("a\nb"))
	assert.Equal(t, "a b", SanitizeLabel("a\r\nb"))
	assert.Equal(t, "ab", SanitizeLabel("a\x00b"))
	assert.Equal(t, "ab", SanitizeLabel("a\x1bb"))
}

func TestStripControlChars(t *testing.T) {
	assert.Equal(t, "hello\nworld\t!", StripControlChars("hello\nworld\t!\x07"))
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateString(tt.input, tt.maxLen))
		})
	}
}
