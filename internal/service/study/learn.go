package study

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
	"github.com/one393143/quizlet/internal/service/study/schedule"
)

// NewLearnSession builds the queue for a learn pass over set.
//
// ScopeAll takes every card; ScopeMissed takes every card that is not
// mastered. The queue is stably ordered review < new < mastered, so ties keep
// display order. The session keeps its own copy of the set.
func NewLearnSession(set domain.StudySet, scope domain.Scope) *domain.LearnSession {
	own := set.Clone()
	own.Normalize()

	queue := make([]uuid.UUID, 0, len(own.Cards))
	for _, c := range own.Cards {
		if scope == domain.ScopeMissed && own.Status(c.ID) == domain.LearnStatusMastered {
			continue
		}
		queue = append(queue, c.ID)
	}

	slices.SortStableFunc(queue, func(a, b uuid.UUID) int {
		return cmp.Compare(own.Status(a).Rank(), own.Status(b).Rank())
	})

	return &domain.LearnSession{
		Set:   own,
		Scope: scope,
		Queue: queue,
	}
}

// Advance grades the card under the cursor and moves the cursor forward.
// An unknown card is appended to the end of the queue so it comes back in
// the same session.
func Advance(session *domain.LearnSession, known bool, now time.Time, strategy schedule.Strategy) (GradeOutcome, bool) {
	if session.Done() {
		return GradeOutcome{}, false
	}

	cardID := session.Queue[session.Position]
	outcome := Grade(&session.Set, cardID, known, now, strategy)
	if outcome.Requeue {
		session.Queue = append(session.Queue, cardID)
	}
	session.Position++
	return outcome, true
}
