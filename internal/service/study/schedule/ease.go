package schedule

import (
	"math"
	"time"

	"github.com/one393143/quizlet/internal/domain"
)

// DefaultEaseFactor multiplies the interval once a card is past its first two reviews.
const DefaultEaseFactor = 2.5

// Ease grows intervals 1 → 3 → round(interval*factor) and resets to 0 on "unknown".
type Ease struct {
	Factor  float64
	Relearn time.Duration
}

func NewEase(factor float64, relearn time.Duration) *Ease {
	if factor < 1 {
		factor = DefaultEaseFactor
	}
	return &Ease{Factor: factor, Relearn: relearnOrDefault(relearn)}
}

func (e *Ease) Name() string { return NameEase }

func (e *Ease) RelearnDelay() time.Duration { return e.Relearn }

func (e *Ease) Init() domain.SRSRecord {
	return domain.SRSRecord{Ease: e.Factor}
}

func (e *Ease) Next(prior domain.SRSRecord, known bool) domain.SRSRecord {
	next := prior
	if next.Ease < 1 {
		next.Ease = e.Factor
	}
	if !known {
		next.Interval = 0
		return next
	}

	switch {
	case prior.Interval <= 0:
		next.Interval = 1
	case prior.Interval == 1:
		next.Interval = 3
	default:
		next.Interval = int(math.Round(float64(prior.Interval) * next.Ease))
	}
	return next
}
