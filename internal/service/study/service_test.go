package study

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/one393143/quizlet/internal/domain"
	"github.com/one393143/quizlet/internal/service/study/schedule"
)

func newTestService(t *testing.T, sets *setRepoMock, progress *progressWriterMock) *Service {
	t.Helper()
	svc := NewService(slog.Default(), sets, progress, schedule.NewLadder(time.Minute))
	svc.clock = func() time.Time { return testNow }
	return svc
}

func setsReturning(set *domain.StudySet) *setRepoMock {
	return &setRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.StudySet, error) {
			if id != set.ID {
				return nil, domain.ErrNotFound
			}
			c := set.Clone()
			return &c, nil
		},
	}
}

// ---------------------------------------------------------------------------
// StartLearnSession
// ---------------------------------------------------------------------------

func TestService_StartLearnSession_Success(t *testing.T) {
	t.Parallel()

	set := newSet(3)
	svc := newTestService(t, setsReturning(set), &progressWriterMock{})

	session, err := svc.StartLearnSession(context.Background(), StartLearnInput{SetID: set.ID, Scope: domain.ScopeAll})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, testNow, session.StartedAt)
	assert.Equal(t, set.CardIDs(), session.Queue)
	assert.Equal(t, 0, session.Position)
}

func TestService_StartLearnSession_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &setRepoMock{}, &progressWriterMock{})

	_, err := svc.StartLearnSession(context.Background(), StartLearnInput{Scope: "starred"})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 2)
}

func TestService_StartLearnSession_NotFound(t *testing.T) {
	t.Parallel()

	set := newSet(2)
	svc := newTestService(t, setsReturning(set), &progressWriterMock{})

	_, err := svc.StartLearnSession(context.Background(), StartLearnInput{SetID: uuid.New(), Scope: domain.ScopeAll})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_StartLearnSession_NothingMissed(t *testing.T) {
	t.Parallel()

	set := newSet(2)
	for _, id := range set.CardIDs() {
		set.Progress.Learn[id] = domain.LearnStatusMastered
	}
	svc := newTestService(t, setsReturning(set), &progressWriterMock{})

	_, err := svc.StartLearnSession(context.Background(), StartLearnInput{SetID: set.ID, Scope: domain.ScopeMissed})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---------------------------------------------------------------------------
// GradeLearnCard
// ---------------------------------------------------------------------------

func TestService_GradeLearnCard_UnknownRequeuesAndPersists(t *testing.T) {
	t.Parallel()

	set := newSet(2)
	progress := &progressWriterMock{}
	svc := newTestService(t, setsReturning(set), progress)
	ctx := context.Background()

	session, err := svc.StartLearnSession(ctx, StartLearnInput{SetID: set.ID, Scope: domain.ScopeAll})
	require.NoError(t, err)
	first := session.Queue[0]

	session, res, err := svc.GradeLearnCard(ctx, GradeLearnInput{Session: session, Known: false})
	require.NoError(t, err)

	assert.True(t, res.Outcome.Requeue)
	assert.False(t, res.Done)
	assert.Equal(t, 2, res.Remaining)
	assert.Equal(t, first, session.Queue[len(session.Queue)-1])

	calls := progress.EnqueueCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, set.ID, calls[0].SetID)
	change := calls[0].Change
	assert.Equal(t, first, change.CardID)
	assert.Equal(t, domain.LearnStatusReview, change.Status)
	require.NotNil(t, change.SRS)
	assert.Equal(t, res.Outcome.Record, *change.SRS)
	assert.Nil(t, change.Attempt)
	assert.Equal(t, domain.ModeLearn, change.Entry.Mode)
}

func TestService_GradeLearnCard_FinishesSession(t *testing.T) {
	t.Parallel()

	set := newSet(2)
	progress := &progressWriterMock{}
	svc := newTestService(t, setsReturning(set), progress)
	ctx := context.Background()

	session, err := svc.StartLearnSession(ctx, StartLearnInput{SetID: set.ID, Scope: domain.ScopeAll})
	require.NoError(t, err)

	var res GradeResult
	for !session.Done() {
		session, res, err = svc.GradeLearnCard(ctx, GradeLearnInput{Session: session, Known: true})
		require.NoError(t, err)
	}

	assert.True(t, res.Done)
	assert.Equal(t, 2, res.Mastered)
	assert.Equal(t, 100, res.MasteryPercent)
	assert.Len(t, progress.EnqueueCalls(), 2)

	_, _, err = svc.GradeLearnCard(ctx, GradeLearnInput{Session: session, Known: true})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_GradeLearnCard_NilSession(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &setRepoMock{}, &progressWriterMock{})

	_, _, err := svc.GradeLearnCard(context.Background(), GradeLearnInput{})

	assert.True(t, errors.Is(err, domain.ErrValidation))
}
