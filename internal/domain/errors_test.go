package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{"empty", &ValidationError{}, "validation failed"},
		{"single", NewValidationError("title", "required"), "validation: title: required"},
		{
			"several",
			NewValidationErrors([]FieldError{
				{Field: "title", Message: "required"},
				{Field: "cards", Message: "at least 2 cards required"},
			}),
			"validation: 2 errors: title: required; cards: at least 2 cards required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrValidation) {
				t.Error("errors.Is(err, ErrValidation) = false")
			}
		})
	}
}

func TestValidationError_Has(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{{Field: "cards[1].term", Message: "required"}})
	if !err.Has("cards[1].term") {
		t.Error("Has should find a rejected field")
	}
	if err.Has("title") {
		t.Error("Has should not report an accepted field")
	}
}

func TestValidationError_ThroughWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("create set: %w", NewValidationError("cards[0].term", "required"))

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("errors.As should find *ValidationError through wrapping")
	}
	if ve.Errors[0].Field != "cards[0].term" {
		t.Fatalf("unexpected field: %q", ve.Errors[0].Field)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("wrapped error should still match ErrValidation")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("validation error must not match ErrNotFound")
	}
}
