package validate

import (
	"strings"
	"unicode"
)

// SanitizeName trims an object name and drops anything outside the name alphabet.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)

	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsNumber(r) ||
			r == '-' || r == '_' || r == '.' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// SanitizeLabel cleans a label for safe storage and display.
func SanitizeLabel(label string) string {
	label = strings.TrimSpace(label)

	// Remove null bytes (common injection attempt)
	label = strings.ReplaceAll(label, "\x00", "")

	// Labels are single-line
	label = strings.ReplaceAll(label, "\r\n", " ")
	label = strings.ReplaceAll(label, "\n", " ")
	label = strings.ReplaceAll(label, "\r", " ")

	return StripControlChars(label)
}

// StripControlChars removes all control characters from a string.
func StripControlChars(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if !unicode.IsControl(r) || r == '\n' || r == '\t' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// TruncateString truncates a string to the given length, adding "..." if truncated.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
