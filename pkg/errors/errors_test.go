package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidRoom, "unknown room type: %s", "garage")

	if err.Code != ErrCodeInvalidRoom {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidRoom)
	}
	if err.Message != "unknown room type: garage" {
		t.Errorf("Message = %q", err.Message)
	}
	if !strings.Contains(err.Error(), "INVALID_ROOM") {
		t.Errorf("Error() should contain code, got %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(ErrCodeInternal, cause, "writing artifact")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodePlacementExhausted, "bedroom on floor 1 cannot fit")

	if !Is(err, ErrCodePlacementExhausted) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInvalidInput) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}

	// Code survives wrapping in plain errors.
	wrapped := fmt.Errorf("generate: %w", err)
	if !Is(wrapped, ErrCodePlacementExhausted) {
		t.Error("Is should unwrap to find the code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidStyle, "bad")); got != ErrCodeInvalidStyle {
		t.Errorf("GetCode = %q", got)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFootprint, "width must be positive")
	if got := UserMessage(err); got != "width must be positive" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain failure")); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{ErrCodeInvalidInput, true},
		{ErrCodeInvalidStyle, true},
		{ErrCodeInvalidFormat, true},
		{ErrCodeInvalidFootprint, true},
		{ErrCodeInvalidRoom, true},
		{ErrCodePlacementExhausted, false},
		{ErrCodeInternal, false},
	}

	for _, tt := range tests {
		if got := IsValidation(New(tt.code, "x")); got != tt.want {
			t.Errorf("IsValidation(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
