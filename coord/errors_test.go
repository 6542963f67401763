package coord

import (
	"errors"
	"fmt"
	"testing"
)

// TestKindString verifies the Kind String() method.
func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{InvalidArgument, "InvalidArgument"},
		{OutOfRange, "OutOfRange"},
		{TypeMismatch, "TypeMismatch"},
		{InvalidValue, "InvalidValue"},
		{Kind(999), "Unknown"},
	}

	for _, tt := range tests {
		result := tt.kind.String()
		if result != tt.expected {
			t.Errorf("Kind(%d).String() = %q; want %q", tt.kind, result, tt.expected)
		}
	}
}

// TestErrorFormatting verifies Error creation and formatting.
func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "Error with operation",
			err:      Errorf(OutOfRange, "get", "x (%d) out of range", 12),
			expected: "[OutOfRange] get: x (12) out of range",
		},
		{
			name:     "Error without operation",
			err:      &Error{Kind: InvalidValue, Issue: "empty cell value"},
			expected: "[InvalidValue] empty cell value",
		},
		{
			name:     "Sentinel",
			err:      ErrTypeMismatch,
			expected: "[TypeMismatch]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q; want %q", result, tt.expected)
			}
		})
	}
}

func TestErrorsIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Errorf(OutOfRange, "set", "too far"))
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected wrapped error to match ErrOutOfRange")
	}
	if errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected wrapped error not to match ErrInvalidValue")
	}
	if KindOf(Errorf(InvalidValue, "x", "y")) != InvalidValue {
		t.Errorf("expected KindOf to report InvalidValue")
	}
	if KindOf(errors.New("plain")) != 0 {
		t.Errorf("expected KindOf of a foreign error to be 0")
	}
}
