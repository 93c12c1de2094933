package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/one393143/quizlet/internal/domain"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "ladder", want: NameLadder},
		{name: "", want: NameLadder},
		{name: "ease", want: NameEase},
		{name: "fsrs", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := New(tt.name, 2.5, 0)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Name())
			assert.Equal(t, DefaultRelearnDelay, s.RelearnDelay())
		})
	}
}

func TestLadder_KnownTwice(t *testing.T) {
	t.Parallel()

	l := NewLadder(time.Minute)
	rec := l.Init()
	require.Equal(t, 0, rec.Interval)

	rec = l.Next(rec, true)
	assert.Equal(t, 1, rec.Interval)

	rec = l.Next(rec, true)
	assert.Equal(t, 3, rec.Interval)
}

func TestLadder_CapsAtTopRung(t *testing.T) {
	t.Parallel()

	l := NewLadder(0)
	rec := l.Init()
	var got []int
	for range 8 {
		rec = l.Next(rec, true)
		got = append(got, rec.Interval)
	}

	assert.Equal(t, []int{1, 3, 7, 14, 30, 30, 30, 30}, got)
	assert.Equal(t, len(DefaultLadderDays)-1, rec.Stage)
}

func TestLadder_UnknownResets(t *testing.T) {
	t.Parallel()

	l := NewLadder(0)
	rec := domain.SRSRecord{Interval: 14, Stage: 4, DueDate: 123}

	rec = l.Next(rec, false)

	assert.Equal(t, 0, rec.Interval)
	assert.Equal(t, 0, rec.Stage)
	assert.Equal(t, int64(123), rec.DueDate, "Next must not touch DueDate")

	rec = l.Next(rec, true)
	assert.Equal(t, 1, rec.Interval)
}

func TestEase_Progression(t *testing.T) {
	t.Parallel()

	e := NewEase(2.5, 0)
	rec := e.Init()
	var got []int
	for range 5 {
		rec = e.Next(rec, true)
		got = append(got, rec.Interval)
	}

	// 3*2.5 = 7.5 → 8, 8*2.5 = 20, 20*2.5 = 50.
	assert.Equal(t, []int{1, 3, 8, 20, 50}, got)
}

func TestEase_UnknownResetsInterval(t *testing.T) {
	t.Parallel()

	e := NewEase(2.5, 0)
	rec := e.Next(domain.SRSRecord{Interval: 20, Ease: 2.5}, false)

	assert.Equal(t, 0, rec.Interval)
	assert.Equal(t, 2.5, rec.Ease)
}

func TestEase_InvalidFactorFallsBack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultEaseFactor, NewEase(0.5, 0).Factor)
}

func TestStrategies_NeverDecreaseOnKnown(t *testing.T) {
	t.Parallel()

	for _, s := range []Strategy{NewLadder(0), NewEase(2.5, 0)} {
		t.Run(s.Name(), func(t *testing.T) {
			t.Parallel()
			rec := s.Init()
			for i := range 12 {
				next := s.Next(rec, true)
				if next.Interval < rec.Interval {
					t.Fatalf("step %d: interval decreased %d -> %d", i, rec.Interval, next.Interval)
				}
				rec = next
			}
		})
	}
}
