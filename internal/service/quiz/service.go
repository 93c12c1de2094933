package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
	"github.com/one393143/quizlet/internal/service/study"
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

// Options tune test generation and written-answer matching. Zero values take the defaults.
type Options struct {
	DefaultCount int
	MaxCount     int
	MaxDistance  int
}

// DefaultOptions returns the defaults used when configuration leaves them unset.
func DefaultOptions() Options {
	return Options{DefaultCount: 10, MaxCount: 200, MaxDistance: DefaultMaxDistance}
}

// Service generates and scores tests.
type Service struct {
	sets     setRepo
	progress progressWriter
	opts     Options
	log      *slog.Logger
	clock    func() time.Time
	newRand  func() *rand.Rand
}

// NewService creates a new Quiz service.
func NewService(
	log *slog.Logger,
	sets setRepo,
	progress progressWriter,
	opts Options,
) *Service {
	def := DefaultOptions()
	if opts.DefaultCount <= 0 {
		opts.DefaultCount = def.DefaultCount
	}
	if opts.MaxCount <= 0 {
		opts.MaxCount = def.MaxCount
	}
	if opts.MaxDistance <= 0 {
		opts.MaxDistance = def.MaxDistance
	}
	return &Service{
		sets:     sets,
		progress: progress,
		opts:     opts,
		log:      log.With("service", "quiz"),
		clock:    time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

// StartTest loads the set and generates a test over the chosen scope.
// The missed scope takes only cards currently marked for review.
func (s *Service) StartTest(ctx context.Context, input StartTestInput) (*domain.TestSession, error) {
	if input.Count == 0 {
		input.Count = s.opts.DefaultCount
	}
	if input.Config.Direction == "" {
		input.Config.Direction = domain.DirectionTermToDef
	}
	if err := input.Validate(s.opts.MaxCount); err != nil {
		return nil, err
	}

	set, err := s.sets.GetByID(ctx, input.SetID)
	if err != nil {
		return nil, fmt.Errorf("get set: %w", err)
	}
	own := set.Clone()
	own.Normalize()

	ids := own.CardIDs()
	if input.Scope == domain.ScopeMissed {
		ids = ids[:0]
		for _, c := range own.Cards {
			if own.Status(c.ID) == domain.LearnStatusReview {
				ids = append(ids, c.ID)
			}
		}
	}
	if len(ids) == 0 {
		return nil, domain.NewValidationError("scope", "no cards to test")
	}

	questions, err := Generate(s.newRand(), &own, ids, input.Count, input.Config)
	if err != nil {
		return nil, err
	}

	session := &domain.TestSession{
		ID:        uuid.New(),
		Set:       own,
		Config:    input.Config,
		Questions: questions,
		Answers:   []domain.AnswerRecord{},
		StartedAt: s.clock(),
	}

	s.log.InfoContext(ctx, "test started",
		slog.String("session_id", session.ID.String()),
		slog.String("set_id", own.ID.String()),
		slog.String("scope", input.Scope.String()),
		slog.Int("questions", len(questions)),
	)

	return session, nil
}

// SubmitAnswer grades the current question, records the result on the
// session's set and schedules the same change for the store.
func (s *Service) SubmitAnswer(ctx context.Context, input SubmitAnswerInput) (*domain.TestSession, AnswerResult, error) {
	if err := input.Validate(); err != nil {
		return nil, AnswerResult{}, err
	}

	session := input.Session
	q, ok := session.Current()
	if !ok {
		return nil, AnswerResult{}, domain.NewValidationError("session", "test is finished")
	}
	if err := validateResponse(q, input.Response); err != nil {
		return nil, AnswerResult{}, err
	}

	correct := checkWithin(q, input.Response, session.Config.Strict, s.opts.MaxDistance)
	change := RecordAnswer(&session.Set, q.CardID, correct, s.clock())

	if correct {
		session.Score++
	}
	record := domain.AnswerRecord{
		CardID:   q.CardID,
		Type:     q.Type,
		Correct:  correct,
		Given:    given(q, input.Response),
		Expected: expected(q),
	}
	session.Answers = append(session.Answers, record)
	session.CurrentIndex++

	s.progress.Enqueue(ctx, session.Set.ID, change)

	score, total, pct := Score(session)
	result := AnswerResult{
		Answer:  record,
		Done:    session.Done(),
		Score:   score,
		Total:   total,
		Percent: pct,
	}

	if result.Done {
		s.log.InfoContext(ctx, "test finished",
			slog.String("session_id", session.ID.String()),
			slog.String("set_id", session.Set.ID.String()),
			slog.Int("score", score),
			slog.Int("total", total),
		)
	}

	return session, result, nil
}

// Score returns correct answers, question count and the rounded percentage.
func Score(session *domain.TestSession) (correct, total, percent int) {
	total = len(session.Questions)
	return session.Score, total, study.Percent(session.Score, total)
}
