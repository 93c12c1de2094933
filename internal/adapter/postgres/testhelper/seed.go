package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/one393143/quizlet/internal/adapter/document"
	"github.com/one393143/quizlet/internal/domain"
)

// SeedSet inserts a study set with n generated cards and empty progress.
func SeedSet(t *testing.T, pool *pgxpool.Pool, title string, n int) domain.StudySet {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	set := domain.StudySet{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := range n {
		set.Cards = append(set.Cards, domain.Card{
			ID:         uuid.New(),
			Term:       "term " + uuid.NewString()[:8],
			Definition: "definition " + string(rune('a'+i%26)),
		})
	}
	set.Normalize()

	cards, err := document.EncodeCards(set.Cards)
	if err != nil {
		t.Fatalf("SeedSet: encode cards: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO study_sets (id, title, cards, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		set.ID, set.Title, cards, set.CreatedAt, set.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("SeedSet: insert: %v", err)
	}
	return set
}
