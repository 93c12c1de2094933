package schedule

import (
	"time"

	"github.com/one393143/quizlet/internal/domain"
)

// DefaultLadderDays are the fixed intervals a card climbs on each "known".
var DefaultLadderDays = []int{1, 3, 7, 14, 30}

// Ladder moves a card one rung up a fixed interval ladder per "known" and
// back to the bottom on "unknown". The top rung repeats forever.
type Ladder struct {
	Days    []int
	Relearn time.Duration
}

func NewLadder(relearn time.Duration) *Ladder {
	return &Ladder{Days: DefaultLadderDays, Relearn: relearnOrDefault(relearn)}
}

func (l *Ladder) Name() string { return NameLadder }

func (l *Ladder) RelearnDelay() time.Duration { return l.Relearn }

func (l *Ladder) Init() domain.SRSRecord {
	return domain.SRSRecord{}
}

func (l *Ladder) Next(prior domain.SRSRecord, known bool) domain.SRSRecord {
	next := prior
	if !known {
		next.Stage = 0
		next.Interval = 0
		return next
	}

	stage := max(prior.Stage, 0)
	if stage >= len(l.Days) {
		stage = len(l.Days) - 1
	}
	next.Interval = max(l.Days[stage], prior.Interval)
	if stage < len(l.Days)-1 {
		stage++
	}
	next.Stage = stage
	return next
}
