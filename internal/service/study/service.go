package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
	"github.com/one393143/quizlet/internal/service/study/schedule"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type setRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySet, error)
}

type progressWriter interface {
	Enqueue(ctx context.Context, setID uuid.UUID, change domain.ProgressChange)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service runs learn sessions on top of the SRS engine.
type Service struct {
	sets     setRepo
	progress progressWriter
	strategy schedule.Strategy
	log      *slog.Logger
	clock    func() time.Time
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	sets setRepo,
	progress progressWriter,
	strategy schedule.Strategy,
) *Service {
	return &Service{
		sets:     sets,
		progress: progress,
		strategy: strategy,
		log:      log.With("service", "study"),
		clock:    time.Now,
	}
}

// Strategy returns the schedule strategy the service grades with.
func (s *Service) Strategy() schedule.Strategy { return s.strategy }

// StartLearnSession loads the set and builds a learn queue for the given scope.
func (s *Service) StartLearnSession(ctx context.Context, input StartLearnInput) (*domain.LearnSession, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	set, err := s.sets.GetByID(ctx, input.SetID)
	if err != nil {
		return nil, fmt.Errorf("get set: %w", err)
	}

	session := NewLearnSession(*set, input.Scope)
	if len(session.Queue) == 0 {
		return nil, domain.NewValidationError("scope", "no cards to study")
	}
	session.ID = uuid.New()
	session.StartedAt = s.clock()

	s.log.InfoContext(ctx, "learn session started",
		slog.String("session_id", session.ID.String()),
		slog.String("set_id", set.ID.String()),
		slog.String("scope", input.Scope.String()),
		slog.Int("queue", len(session.Queue)),
		slog.String("strategy", s.strategy.Name()),
	)

	return session, nil
}

// GradeLearnCard grades the current card of the session, requeues it when
// unknown and schedules a progress write. A failed write never fails the grade.
func (s *Service) GradeLearnCard(ctx context.Context, input GradeLearnInput) (*domain.LearnSession, GradeResult, error) {
	if err := input.Validate(); err != nil {
		return nil, GradeResult{}, err
	}

	session := input.Session
	if session.Done() {
		return nil, GradeResult{}, domain.NewValidationError("session", "session is finished")
	}
	if _, ok := session.Current(); !ok {
		return nil, GradeResult{}, fmt.Errorf("card %s: %w", session.Queue[session.Position], domain.ErrNotFound)
	}

	outcome, _ := Advance(session, input.Known, s.clock(), s.strategy)
	s.progress.Enqueue(ctx, session.Set.ID, outcome.Change)

	mastered, total, pct := Mastery(&session.Set)
	result := GradeResult{
		Outcome:        outcome,
		Done:           session.Done(),
		Remaining:      session.Remaining(),
		Mastered:       mastered,
		Total:          total,
		MasteryPercent: pct,
	}

	if result.Done {
		s.log.InfoContext(ctx, "learn session finished",
			slog.String("session_id", session.ID.String()),
			slog.String("set_id", session.Set.ID.String()),
			slog.Int("graded", session.Position),
			slog.Int("mastery_percent", pct),
		)
	}

	return session, result, nil
}
