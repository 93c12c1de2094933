// Package studyset implements the study set repository using PostgreSQL.
// Cards and progress live in jsonb columns of a single study_sets row.
package studyset

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/adapter/document"
	postgres "github.com/one393143/quizlet/internal/adapter/postgres"
	"github.com/one393143/quizlet/internal/domain"
)

const table = "study_sets"

var columns = []string{
	"id", "title", "description",
	"cards", "learn", "srs", "test_stats", "history",
	"created_at", "updated_at",
}

// Repo provides study set persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new study set repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Cards       []byte    `db:"cards"`
	Learn       []byte    `db:"learn"`
	SRS         []byte    `db:"srs"`
	TestStats   []byte    `db:"test_stats"`
	History     []byte    `db:"history"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() (domain.StudySet, error) {
	set := domain.StudySet{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	err := document.Decode(&set, document.Columns{
		Cards:     r.Cards,
		Learn:     r.Learn,
		SRS:       r.SRS,
		TestStats: r.TestStats,
		History:   r.History,
	})
	if err != nil {
		return domain.StudySet{}, fmt.Errorf("study_set %s: %w", r.ID, err)
	}
	return set, nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// List returns every set, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.StudySet, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list study sets: %w", err)
	}

	sets := make([]domain.StudySet, 0, len(rows))
	for _, rw := range rows {
		set, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// GetByID returns a set by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySet, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, r.q, &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "study_set", id)
	}

	set, err := rw.toDomain()
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a set together with its progress.
func (r *Repo) Create(ctx context.Context, set *domain.StudySet) (*domain.StudySet, error) {
	cols, err := document.Encode(set)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			set.ID, set.Title, set.Description,
			cols.Cards, cols.Learn, cols.SRS, cols.TestStats, cols.History,
			set.CreatedAt, set.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, "study_set", set.ID)
	}

	out := set.Clone()
	return &out, nil
}

// UpdateContent overwrites title, description and cards, leaving progress untouched.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, title, description string, cards []domain.Card) error {
	raw, err := document.EncodeCards(cards)
	if err != nil {
		return err
	}

	query, args, err := postgres.Builder().
		Update(table).
		Set("title", title).
		Set("description", description).
		Set("cards", raw).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	return r.exec(ctx, id, query, args)
}

// UpdateProgress overwrites the progress columns present in patch.
// An empty patch is a no-op.
func (r *Repo) UpdateProgress(ctx context.Context, id uuid.UUID, patch domain.ProgressPatch) error {
	cols, err := document.EncodePatch(patch)
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		return nil
	}

	b := postgres.Builder().Update(table)
	for _, c := range cols {
		b = b.Set(c.Name, c.Value)
	}
	query, args, err := b.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build progress query: %w", err)
	}

	return r.exec(ctx, id, query, args)
}

// Delete removes a set and its progress.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	return r.exec(ctx, id, query, args)
}

// exec runs a single-row write and reports ErrNotFound when no row matched.
func (r *Repo) exec(ctx context.Context, id uuid.UUID, query string, args []any) error {
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "study_set", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("study_set %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
