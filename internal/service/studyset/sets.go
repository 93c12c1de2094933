package studyset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
)

// List returns all sets, newest first.
func (s *Service) List(ctx context.Context) ([]domain.StudySet, error) {
	sets, err := s.sets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	for i := range sets {
		sets[i].Normalize()
	}
	return sets, nil
}

// Get returns one set with its progress initialized.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.StudySet, error) {
	set, err := s.sets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get set: %w", err)
	}
	set.Normalize()
	return set, nil
}

// Create validates the input, drops blank card rows and stores a new set
// with empty progress.
func (s *Service) Create(ctx context.Context, input CreateSetInput) (*domain.StudySet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock()
	set := &domain.StudySet{
		ID:          uuid.New(),
		Title:       domain.CleanText(input.Title),
		Description: input.Description,
		Cards:       buildCards(nil, input.Cards),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	set.Normalize()

	created, err := s.sets.Create(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("create set: %w", err)
	}

	s.log.InfoContext(ctx, "set created",
		slog.String("set_id", created.ID.String()),
		slog.Int("cards", len(created.Cards)),
	)

	return created, nil
}

// UpdateContent overwrites title, description and cards. Progress is left
// as it is, including entries of cards that no longer exist.
func (s *Service) UpdateContent(ctx context.Context, input UpdateSetInput) (*domain.StudySet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	set, err := s.sets.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get set: %w", err)
	}
	set.Normalize()

	set.Title = domain.CleanText(input.Title)
	set.Description = input.Description
	set.Cards = buildCards(set, input.Cards)
	set.UpdatedAt = s.clock()

	if err := s.sets.UpdateContent(ctx, set.ID, set.Title, set.Description, set.Cards); err != nil {
		return nil, fmt.Errorf("update set content: %w", err)
	}

	s.log.InfoContext(ctx, "set updated",
		slog.String("set_id", set.ID.String()),
		slog.Int("cards", len(set.Cards)),
	)

	return set, nil
}

// Delete removes a set and all of its progress.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.sets.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete set: %w", err)
	}

	s.log.InfoContext(ctx, "set deleted", slog.String("set_id", id.String()))
	return nil
}

// buildCards turns input rows into cards, skipping blank rows. A row keeps
// its ID only if that ID belongs to a card of existing.
func buildCards(existing *domain.StudySet, rows []domain.CardInput) []domain.Card {
	cards := make([]domain.Card, 0, len(rows))
	for _, r := range rows {
		if r.IsBlank() {
			continue
		}
		id := uuid.New()
		if r.ID != nil && existing != nil && existing.CardIndex(*r.ID) >= 0 {
			id = *r.ID
		}
		cards = append(cards, domain.Card{
			ID:         id,
			Term:       domain.CleanText(r.Term),
			Definition: domain.CleanText(r.Definition),
		})
	}
	return cards
}
