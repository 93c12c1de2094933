package quiz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
)

// StartTestInput holds the parameters for generating a test.
type StartTestInput struct {
	SetID  uuid.UUID
	Scope  domain.Scope
	Count  int
	Config domain.TestConfig
}

// Validate checks all fields and collects all errors.
func (i *StartTestInput) Validate(maxCount int) error {
	var errs []domain.FieldError

	if i.SetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "set_id", Message: "required"})
	}
	if !i.Scope.IsValid() {
		errs = append(errs, domain.FieldError{Field: "scope", Message: "must be all or missed"})
	}
	if i.Count < 1 || i.Count > maxCount {
		errs = append(errs, domain.FieldError{Field: "count", Message: fmt.Sprintf("must be between 1 and %d", maxCount)})
	}
	if len(i.Config.EnabledTypes()) == 0 {
		errs = append(errs, domain.FieldError{Field: "config", Message: "at least one question type must be enabled"})
	}
	if !i.Config.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "config.direction", Message: "must be term_to_def or def_to_term"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SubmitAnswerInput holds a response to the current question of a test.
type SubmitAnswerInput struct {
	Session  *domain.TestSession
	Response domain.Response
}

// Validate checks all fields and collects all errors.
func (i *SubmitAnswerInput) Validate() error {
	if i.Session == nil {
		return domain.NewValidationError("session", "required")
	}
	return nil
}

// validateResponse rejects a response that lacks the field the question type reads.
// An empty written answer is a legitimate wrong answer and passes.
func validateResponse(q domain.Question, resp domain.Response) error {
	switch q.Type {
	case domain.QuestionTrueFalse:
		if resp.Truth == nil {
			return domain.NewValidationError("truth", "required for true/false questions")
		}
	case domain.QuestionMultipleChoice:
		if resp.Option == "" {
			return domain.NewValidationError("option", "required for multiple choice questions")
		}
	}
	return nil
}
