package analytics

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
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, sets []domain.StudySet, err error) *Service {
	t.Helper()
	svc := NewService(slog.Default(), &setListerMock{
		ListFunc: func(ctx context.Context) ([]domain.StudySet, error) {
			return sets, err
		},
	})
	svc.clock = func() time.Time { return testNow }
	return svc
}

func makeSet(title string, n int) domain.StudySet {
	s := domain.StudySet{ID: uuid.New(), Title: title}
	for i := range n {
		s.Cards = append(s.Cards, domain.Card{ID: uuid.New(), Term: title + string(rune('0'+i)), Definition: "d"})
	}
	s.Normalize()
	return s
}

func TestService_Overview(t *testing.T) {
	t.Parallel()

	a := makeSet("a", 5)
	b := makeSet("b", 2)
	ms := testNow.UnixMilli()

	a.Progress.Learn[a.Cards[0].ID] = domain.LearnStatusMastered
	a.Progress.Learn[a.Cards[1].ID] = domain.LearnStatusMastered
	a.Progress.SRS[a.Cards[0].ID] = domain.SRSRecord{DueDate: ms - 1}
	a.Progress.TestStats[a.Cards[2].ID] = domain.TestStat{TotalAttempts: 4, CorrectAttempts: 3}
	a.Progress.History = []domain.HistoryEntry{
		{CardID: a.Cards[0].ID, Result: domain.ResultCorrect, Mode: domain.ModeLearn, Timestamp: ms - 300},
		{CardID: a.Cards[1].ID, Result: domain.ResultWrong, Mode: domain.ModeTest, Timestamp: ms - 100},
	}
	b.Progress.SRS[b.Cards[0].ID] = domain.SRSRecord{DueDate: ms + 1}
	b.Progress.History = []domain.HistoryEntry{
		{CardID: b.Cards[1].ID, Result: domain.ResultCorrect, Mode: domain.ModeLearn, Timestamp: ms - 200},
	}

	svc := newTestService(t, []domain.StudySet{a, b}, nil)

	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, ov.TotalReviews)
	assert.Equal(t, 2, ov.Correct)
	assert.Equal(t, 67, ov.AccuracyPercent)

	require.Len(t, ov.Recent, 3)
	assert.Equal(t, []int64{ms - 100, ms - 200, ms - 300},
		[]int64{ov.Recent[0].Timestamp, ov.Recent[1].Timestamp, ov.Recent[2].Timestamp})
	assert.Equal(t, "b", ov.Recent[1].SetTitle)
	assert.Equal(t, b.Cards[1].Term, ov.Recent[1].Term)

	require.Len(t, ov.Recommendations, 1)
	assert.Equal(t, DueSet{SetID: a.ID, Title: "a", DueCount: 1}, ov.Recommendations[0])

	require.Len(t, ov.Sets, 2)
	assert.Equal(t, 40, ov.Sets[0].MasteryPercent)
	assert.Equal(t, 75, ov.Sets[0].TestAccuracyPercent)
	assert.Equal(t, 0, ov.Sets[1].TestAccuracyPercent)
}

func TestService_Overview_RecentIsCapped(t *testing.T) {
	t.Parallel()

	s := makeSet("big", 2)
	for i := range 30 {
		s.Progress.History = append(s.Progress.History, domain.HistoryEntry{
			CardID:    s.Cards[i%2].ID,
			Result:    domain.ResultCorrect,
			Mode:      domain.ModeLearn,
			Timestamp: int64(i),
		})
	}
	svc := newTestService(t, []domain.StudySet{s}, nil)

	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)

	require.Len(t, ov.Recent, RecentLimit)
	assert.Equal(t, int64(29), ov.Recent[0].Timestamp)
	assert.Equal(t, int64(10), ov.Recent[RecentLimit-1].Timestamp)
	assert.Equal(t, 30, ov.TotalReviews)
}

func TestService_Overview_Empty(t *testing.T) {
	t.Parallel()

	ov, err := newTestService(t, nil, nil).Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, ov.AccuracyPercent)
	assert.NotNil(t, ov.Recent)
	assert.NotNil(t, ov.Recommendations)
}

func TestService_DueSets_CountsOrphans(t *testing.T) {
	t.Parallel()

	s := makeSet("orphans", 2)
	s.Progress.SRS[uuid.New()] = domain.SRSRecord{DueDate: 0}

	due, err := newTestService(t, []domain.StudySet{s}, nil).DueSets(context.Background())
	require.NoError(t, err)

	require.Len(t, due, 1)
	assert.Equal(t, 1, due[0].DueCount)
}

func TestService_Overview_StoreError(t *testing.T) {
	t.Parallel()

	boom := errors.New("timeout")
	_, err := newTestService(t, nil, boom).Overview(context.Background())

	assert.ErrorIs(t, err, boom)
}
