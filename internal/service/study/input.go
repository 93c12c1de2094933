package study

import (
	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
)

// StartLearnInput holds the parameters for starting a learn session.
type StartLearnInput struct {
	SetID uuid.UUID
	Scope domain.Scope
}

// Validate checks all fields and collects all errors.
func (i *StartLearnInput) Validate() error {
	var errs []domain.FieldError

	if i.SetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "set_id", Message: "required"})
	}
	if !i.Scope.IsValid() {
		errs = append(errs, domain.FieldError{Field: "scope", Message: "must be all or missed"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GradeLearnInput holds the parameters for grading the current card of a session.
type GradeLearnInput struct {
	Session *domain.LearnSession
	Known   bool
}

// Validate checks all fields and collects all errors.
func (i *GradeLearnInput) Validate() error {
	if i.Session == nil {
		return domain.NewValidationError("session", "required")
	}
	return nil
}
