package service

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Matching(t *testing.T) {
	err := fmt.Errorf("request: %w", newError(NotNumeric, "principal: bad"))

	if !errors.Is(err, ErrNotNumeric) {
		t.Errorf("expected wrapped error to match ErrNotNumeric")
	}
	if errors.Is(err, ErrNonPositiveValue) {
		t.Errorf("did not expect match with ErrNonPositiveValue")
	}
	if KindOf(err) != NotNumeric {
		t.Errorf("expected kind NotNumeric, got %v", KindOf(err))
	}
	if KindOf(errors.New("boom")) != Unexpected {
		t.Errorf("plain errors should be unexpected")
	}
}

func TestErrorKind_Message(t *testing.T) {
	tests := map[ErrorKind]string{
		NonPositiveValue: "All values must be greater than zero",
		NotNumeric:       "Please enter valid numeric values",
		Unexpected:       "An error occurred during calculation",
	}
	for kind, want := range tests {
		if got := kind.Message(); got != want {
			t.Errorf("%v: got %q, want %q", kind, got, want)
		}
	}

	err := newError(Unexpected, "secret detail")
	if err.Message() != "An error occurred during calculation" {
		t.Errorf("message must not carry the cause, got %q", err.Message())
	}
}
