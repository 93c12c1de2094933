package studyset

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
)

// AddCard appends a card with a fresh ID to the end of the set.
func (s *Service) AddCard(ctx context.Context, input AddCardInput) (*domain.StudySet, domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, domain.Card{}, err
	}

	set, err := s.load(ctx, input.SetID)
	if err != nil {
		return nil, domain.Card{}, err
	}
	if len(set.Cards) >= MaxCards {
		return nil, domain.Card{}, domain.NewValidationError("cards", fmt.Sprintf("max %d cards", MaxCards))
	}

	card := domain.Card{
		ID:         uuid.New(),
		Term:       domain.CleanText(input.Term),
		Definition: domain.CleanText(input.Definition),
	}
	set.Cards = append(set.Cards, card)

	if err := s.save(ctx, set); err != nil {
		return nil, domain.Card{}, err
	}

	s.log.InfoContext(ctx, "card added",
		slog.String("set_id", set.ID.String()),
		slog.String("card_id", card.ID.String()),
	)
	return set, card, nil
}

// EditCard changes the text of a card. Its ID and progress stay.
func (s *Service) EditCard(ctx context.Context, input EditCardInput) (*domain.StudySet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	set, err := s.load(ctx, input.SetID)
	if err != nil {
		return nil, err
	}
	idx := set.CardIndex(input.CardID)
	if idx < 0 {
		return nil, fmt.Errorf("card %s: %w", input.CardID, domain.ErrNotFound)
	}

	set.Cards[idx].Term = domain.CleanText(input.Term)
	set.Cards[idx].Definition = domain.CleanText(input.Definition)

	if err := s.save(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

// DeleteCard removes a card. Its progress entries are left in place.
func (s *Service) DeleteCard(ctx context.Context, input DeleteCardInput) (*domain.StudySet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	set, err := s.load(ctx, input.SetID)
	if err != nil {
		return nil, err
	}
	idx := set.CardIndex(input.CardID)
	if idx < 0 {
		return nil, fmt.Errorf("card %s: %w", input.CardID, domain.ErrNotFound)
	}
	if len(set.Cards) <= domain.MinCards {
		return nil, domain.NewValidationError("cards", fmt.Sprintf("a set needs at least %d cards", domain.MinCards))
	}

	set.Cards = slices.Delete(set.Cards, idx, idx+1)

	if err := s.save(ctx, set); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card deleted",
		slog.String("set_id", set.ID.String()),
		slog.String("card_id", input.CardID.String()),
	)
	return set, nil
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (*domain.StudySet, error) {
	set, err := s.sets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get set: %w", err)
	}
	set.Normalize()
	return set, nil
}

func (s *Service) save(ctx context.Context, set *domain.StudySet) error {
	set.UpdatedAt = s.clock()
	if err := s.sets.UpdateContent(ctx, set.ID, set.Title, set.Description, set.Cards); err != nil {
		return fmt.Errorf("update set content: %w", err)
	}
	return nil
}
