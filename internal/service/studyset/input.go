package studyset

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxCardTextLength    = 1000
	MaxCards             = 2000
)

// CreateSetInput holds the parameters for creating a set.
type CreateSetInput struct {
	Title       string
	Description string
	Cards       []domain.CardInput
}

// Validate checks all fields and collects all errors.
func (i *CreateSetInput) Validate() error {
	errs := validateHeader(i.Title, i.Description)
	errs = append(errs, validateCards(i.Cards)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateSetInput replaces title, description and cards of a set.
// Cards carrying the ID of an existing card keep that ID and its progress.
type UpdateSetInput struct {
	ID          uuid.UUID
	Title       string
	Description string
	Cards       []domain.CardInput
}

// Validate checks all fields and collects all errors.
func (i *UpdateSetInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateHeader(i.Title, i.Description)...)
	errs = append(errs, validateCards(i.Cards)...)

	seen := make(map[uuid.UUID]bool)
	for idx, c := range i.Cards {
		if c.ID == nil {
			continue
		}
		if seen[*c.ID] {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("cards[%d].id", idx), Message: "duplicate card id"})
		}
		seen[*c.ID] = true
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddCardInput holds the parameters for appending a card to a set.
type AddCardInput struct {
	SetID      uuid.UUID
	Term       string
	Definition string
}

// Validate checks all fields and collects all errors.
func (i *AddCardInput) Validate() error {
	var errs []domain.FieldError

	if i.SetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "set_id", Message: "required"})
	}
	errs = append(errs, validateCardText("", i.Term, i.Definition)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EditCardInput holds the parameters for changing one card.
type EditCardInput struct {
	SetID      uuid.UUID
	CardID     uuid.UUID
	Term       string
	Definition string
}

// Validate checks all fields and collects all errors.
func (i *EditCardInput) Validate() error {
	var errs []domain.FieldError

	if i.SetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "set_id", Message: "required"})
	}
	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	errs = append(errs, validateCardText("", i.Term, i.Definition)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeleteCardInput identifies a card to remove.
type DeleteCardInput struct {
	SetID  uuid.UUID
	CardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *DeleteCardInput) Validate() error {
	var errs []domain.FieldError

	if i.SetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "set_id", Message: "required"})
	}
	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validateHeader(title, description string) []domain.FieldError {
	var errs []domain.FieldError

	title = domain.CleanText(title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len([]rune(title)) > MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", MaxTitleLength)})
	}
	if len([]rune(description)) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", MaxDescriptionLength)})
	}
	return errs
}

// validateCards checks the non-blank rows; fully blank rows are ignored.
func validateCards(cards []domain.CardInput) []domain.FieldError {
	var errs []domain.FieldError

	filled := 0
	for idx, c := range cards {
		if c.IsBlank() {
			continue
		}
		filled++
		errs = append(errs, validateCardText(fmt.Sprintf("cards[%d].", idx), c.Term, c.Definition)...)
	}
	if filled < domain.MinCards {
		errs = append(errs, domain.FieldError{Field: "cards", Message: fmt.Sprintf("at least %d cards required", domain.MinCards)})
	}
	if filled > MaxCards {
		errs = append(errs, domain.FieldError{Field: "cards", Message: fmt.Sprintf("max %d cards", MaxCards)})
	}
	return errs
}

func validateCardText(prefix, term, definition string) []domain.FieldError {
	var errs []domain.FieldError

	if domain.CleanText(term) == "" {
		errs = append(errs, domain.FieldError{Field: prefix + "term", Message: "required"})
	} else if len([]rune(term)) > MaxCardTextLength {
		errs = append(errs, domain.FieldError{Field: prefix + "term", Message: fmt.Sprintf("max %d characters", MaxCardTextLength)})
	}
	if domain.CleanText(definition) == "" {
		errs = append(errs, domain.FieldError{Field: prefix + "definition", Message: "required"})
	} else if len([]rune(definition)) > MaxCardTextLength {
		errs = append(errs, domain.FieldError{Field: prefix + "definition", Message: fmt.Sprintf("max %d characters", MaxCardTextLength)})
	}
	return errs
}
