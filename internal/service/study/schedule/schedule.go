// Package schedule holds the spaced-repetition interval policies used by the learn engine.
package schedule

import (
	"fmt"
	"time"

	"github.com/one393143/quizlet/internal/domain"
)

// Strategy names accepted in configuration.
const (
	NameLadder = "ladder"
	NameEase   = "ease"
)

// DefaultRelearnDelay is how long a card graded "unknown" waits before it is due again.
const DefaultRelearnDelay = time.Minute

// Strategy computes the next schedule of a card.
// Next never sets DueDate; the caller derives it from Interval.
// For known=true the returned Interval is never below the prior one.
type Strategy interface {
	Name() string
	Init() domain.SRSRecord
	Next(prior domain.SRSRecord, known bool) domain.SRSRecord
	RelearnDelay() time.Duration
}

// New builds the strategy registered under name.
func New(name string, easeFactor float64, relearn time.Duration) (Strategy, error) {
	switch name {
	case NameLadder, "":
		return NewLadder(relearn), nil
	case NameEase:
		return NewEase(easeFactor, relearn), nil
	default:
		return nil, fmt.Errorf("schedule: unknown strategy %q", name)
	}
}

func relearnOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultRelearnDelay
	}
	return d
}
