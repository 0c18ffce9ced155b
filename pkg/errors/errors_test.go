package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMissingContainer, "%s has no container", "card")

	if err.Code != ErrCodeMissingContainer {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMissingContainer)
	}

	if err.Message != "card has no container" {
		t.Errorf("Message = %v, want %v", err.Message, "card has no container")
	}

	expected := "MISSING_CONTAINER: card has no container"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidScene, cause, "apply rules")

	if err.Code != ErrCodeInvalidScene {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidScene)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeDivisionByZero, "test"),
			code:     ErrCodeDivisionByZero,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeDivisionByZero, "test"),
			code:     ErrCodeMissingContainer,
			expected: false,
		},
		{
			name:     "outer code",
			err:      Wrap(ErrCodeInvalidScene, New(ErrCodeMissingContainer, "inner"), "outer"),
			code:     ErrCodeInvalidScene,
			expected: true,
		},
		{
			name:     "inner code",
			err:      Wrap(ErrCodeInvalidScene, New(ErrCodeMissingContainer, "inner"), "outer"),
			code:     ErrCodeMissingContainer,
			expected: true,
		},
		{
			name:     "inner code behind fmt wrap",
			err:      fmt.Errorf("make card: %w", New(ErrCodeMissingContainer, "inner")),
			code:     ErrCodeMissingContainer,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidConstraint, "test"), ErrCodeInvalidConstraint},
		{"wrapped keeps outer", Wrap(ErrCodeInvalidScene, New(ErrCodeNotFound, "x"), "y"), ErrCodeInvalidScene},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "friendly message")); got != "friendly message" {
		t.Errorf("UserMessage() = %v, want %v", got, "friendly message")
	}
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage() = %v, want %v", got, "plain error")
	}

	chained := Wrap(ErrCodeInvalidScene, fmt.Errorf("configure card: %w", New(ErrCodeMissingContainer, "card has no container")), "load login.toml")
	want := "load login.toml: card has no container"
	if got := UserMessage(chained); got != want {
		t.Errorf("UserMessage() = %v, want %v", got, want)
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeMissingContainer,
		ErrCodeDivisionByZero,
		ErrCodeInvalidConstraint,
		ErrCodeInvalidAttribute,
		ErrCodeInvalidInput,
		ErrCodeInvalidScene,
		ErrCodeInvalidFormat,
		ErrCodeInvalidName,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
