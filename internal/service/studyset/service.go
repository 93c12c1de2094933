package studyset

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
)

type setRepo interface {
	List(ctx context.Context) ([]domain.StudySet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySet, error)
	Create(ctx context.Context, set *domain.StudySet) (*domain.StudySet, error)
	UpdateContent(ctx context.Context, id uuid.UUID, title, description string, cards []domain.Card) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service provides study set and card management.
type Service struct {
	sets  setRepo
	log   *slog.Logger
	clock func() time.Time
}

// NewService creates a new StudySet service.
func NewService(
	log *slog.Logger,
	sets setRepo,
) *Service {
	return &Service{
		sets:  sets,
		log:   log.With("service", "studyset"),
		clock: time.Now,
	}
}
