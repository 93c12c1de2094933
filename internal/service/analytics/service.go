package analytics

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
	"github.com/one393143/quizlet/internal/service/study"
)

// RecentLimit is the number of history entries in an overview.
const RecentLimit = 20

type setLister interface {
	List(ctx context.Context) ([]domain.StudySet, error)
}

// Service computes study statistics across all sets.
type Service struct {
	sets  setLister
	log   *slog.Logger
	clock func() time.Time
}

// NewService creates a new Analytics service.
func NewService(log *slog.Logger, sets setLister) *Service {
	return &Service{
		sets:  sets,
		log:   log.With("service", "analytics"),
		clock: time.Now,
	}
}

// Activity is one history entry with the set and card it belongs to.
type Activity struct {
	SetID     uuid.UUID     `json:"setId"`
	SetTitle  string        `json:"setTitle"`
	CardID    uuid.UUID     `json:"cardId"`
	Term      string        `json:"term"`
	Result    domain.Result `json:"result"`
	Mode      domain.Mode   `json:"mode"`
	Timestamp int64         `json:"ts"`
}

// DueSet is a set with cards due for review.
type DueSet struct {
	SetID    uuid.UUID `json:"setId"`
	Title    string    `json:"title"`
	DueCount int       `json:"dueCount"`
}

// SetSummary holds per-set mastery and test statistics.
type SetSummary struct {
	SetID               uuid.UUID `json:"setId"`
	Title               string    `json:"title"`
	Cards               int       `json:"cards"`
	Mastered            int       `json:"mastered"`
	MasteryPercent      int       `json:"masteryPercent"`
	TestAttempts        int       `json:"testAttempts"`
	TestCorrect         int       `json:"testCorrect"`
	TestAccuracyPercent int       `json:"testAccuracyPercent"`
	DueCount            int       `json:"dueCount"`
}

// Overview aggregates every set.
type Overview struct {
	TotalReviews    int          `json:"totalReviews"`
	Correct         int          `json:"correct"`
	AccuracyPercent int          `json:"accuracyPercent"`
	Recent          []Activity   `json:"recent"`
	Recommendations []DueSet     `json:"recommendations"`
	Sets            []SetSummary `json:"sets"`
}

// Overview loads all sets and aggregates their history and schedules.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	sets, err := s.sets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	return Build(sets, s.clock()), nil
}

// DueSets returns the sets with at least one due card, in store order.
func (s *Service) DueSets(ctx context.Context) ([]DueSet, error) {
	sets, err := s.sets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	return dueSets(sets, s.clock()), nil
}

// Build computes an overview from already loaded sets.
func Build(sets []domain.StudySet, now time.Time) *Overview {
	out := &Overview{
		Recent:          []Activity{},
		Recommendations: dueSets(sets, now),
		Sets:            make([]SetSummary, 0, len(sets)),
	}

	for i := range sets {
		set := &sets[i]
		set.Normalize()
		for _, h := range set.Progress.History {
			out.TotalReviews++
			if h.Result == domain.ResultCorrect {
				out.Correct++
			}
			card, _ := set.Card(h.CardID)
			out.Recent = append(out.Recent, Activity{
				SetID:     set.ID,
				SetTitle:  set.Title,
				CardID:    h.CardID,
				Term:      card.Term,
				Result:    h.Result,
				Mode:      h.Mode,
				Timestamp: h.Timestamp,
			})
		}
		out.Sets = append(out.Sets, Summarize(set, now))
	}

	out.AccuracyPercent = study.Percent(out.Correct, out.TotalReviews)
	slices.SortStableFunc(out.Recent, func(a, b Activity) int {
		return cmp.Compare(b.Timestamp, a.Timestamp)
	})
	out.Recent = out.Recent[:min(RecentLimit, len(out.Recent))]
	return out
}

// Summarize computes mastery and test accuracy of one set.
func Summarize(set *domain.StudySet, now time.Time) SetSummary {
	set.Normalize()
	mastered, total, pct := study.Mastery(set)

	sum := SetSummary{
		SetID:          set.ID,
		Title:          set.Title,
		Cards:          total,
		Mastered:       mastered,
		MasteryPercent: pct,
		DueCount:       study.DueCount(set, now),
	}
	for _, st := range set.Progress.TestStats {
		sum.TestAttempts += st.TotalAttempts
		sum.TestCorrect += st.CorrectAttempts
	}
	sum.TestAccuracyPercent = study.Percent(sum.TestCorrect, sum.TestAttempts)
	return sum
}

func dueSets(sets []domain.StudySet, now time.Time) []DueSet {
	out := []DueSet{}
	for i := range sets {
		if n := study.DueCount(&sets[i], now); n > 0 {
			out = append(out, DueSet{SetID: sets[i].ID, Title: sets[i].Title, DueCount: n})
		}
	}
	return out
}
