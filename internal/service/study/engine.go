package study

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
	"github.com/one393143/quizlet/internal/service/study/schedule"
)

const msPerDay = int64(24 * time.Hour / time.Millisecond)

// GradeOutcome describes what a single learn-mode grade did to a card.
type GradeOutcome struct {
	CardID  uuid.UUID           `json:"cardId"`
	Known   bool                `json:"known"`
	Status  domain.LearnStatus  `json:"status"`
	Prior   domain.SRSRecord    `json:"prior"`
	Record  domain.SRSRecord    `json:"record"`
	Requeue bool                `json:"requeue"`
	Entry   domain.HistoryEntry `json:"entry"`

	Change domain.ProgressChange `json:"-"`
}

// Grade applies a known/unknown answer to a card of the set.
//
// Unknown marks the card for review, resets its schedule and makes it due
// after the strategy's relearn delay. Known marks it mastered and advances the
// interval. Either way one learn history entry is appended.
func Grade(set *domain.StudySet, cardID uuid.UUID, known bool, now time.Time, strategy schedule.Strategy) GradeOutcome {
	set.Normalize()

	prior, ok := set.Progress.SRS[cardID]
	if !ok {
		prior = strategy.Init()
	}

	next := strategy.Next(prior, known)
	status := domain.LearnStatusMastered
	if known {
		next.DueDate = now.UnixMilli() + int64(next.Interval)*msPerDay
	} else {
		status = domain.LearnStatusReview
		next.DueDate = now.Add(strategy.RelearnDelay()).UnixMilli()
	}

	entry := domain.HistoryEntry{
		CardID:    cardID,
		Result:    domain.ResultOf(known),
		Mode:      domain.ModeLearn,
		Timestamp: now.UnixMilli(),
	}

	change := domain.ProgressChange{CardID: cardID, Status: status, SRS: &next, Entry: entry}
	change.Apply(set)

	return GradeOutcome{
		CardID:  cardID,
		Known:   known,
		Status:  status,
		Prior:   prior,
		Record:  next,
		Requeue: !known,
		Entry:   entry,
		Change:  change,
	}
}

// Mastery counts mastered cards among the set's current cards.
// Percent is rounded to the nearest integer and 0 for an empty set.
func Mastery(set *domain.StudySet) (mastered, total, percent int) {
	total = len(set.Cards)
	for _, c := range set.Cards {
		if set.Status(c.ID) == domain.LearnStatusMastered {
			mastered++
		}
	}
	return mastered, total, Percent(mastered, total)
}

// DueCount is the number of SRS records due before now.
// Records of deleted cards are counted too.
func DueCount(set *domain.StudySet, now time.Time) int {
	n := 0
	for _, rec := range set.Progress.SRS {
		if rec.IsDue(now) {
			n++
		}
	}
	return n
}

// Percent returns round(part/whole*100), or 0 when whole is 0.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
