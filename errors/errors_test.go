package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidContent, "unknown statement %q", "quote")

	if err.Code != ErrCodeInvalidContent {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidContent)
	}
	expected := `INVALID_CONTENT: unknown statement "quote"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeIO, cause, "write output")

	if GetCode(err) != ErrCodeIO {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), ErrCodeIO)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(ErrCodeIO, nil, "nothing"); err != nil {
		t.Fatalf("Wrap(nil) = %v, want nil", err)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeLayoutOverflow, "y=40"), ErrCodeLayoutOverflow, true},
		{"non-matching code", New(ErrCodeLayoutOverflow, "y=40"), ErrCodeIO, false},
		{"outer code", Wrap(ErrCodeRender, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeRender, true},
		{"inner code", Wrap(ErrCodeRender, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeInvalidInput, true},
		{"through fmt wrapping", fmt.Errorf("ctx: %w", New(ErrCodeInvalidConfig, "bad")), ErrCodeInvalidConfig, true},
		{"plain error", errors.New("plain"), ErrCodeIO, false},
		{"nil error", nil, ErrCodeIO, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "bad date")); got != "bad date" {
		t.Errorf("UserMessage() = %q, want %q", got, "bad date")
	}
	wrapped := Wrap(ErrCodeIO, errors.New("permission denied"), "write out.pdf")
	if got := UserMessage(wrapped); got != "write out.pdf: permission denied" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain")
	}
}
