package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/adapter/document"
	"github.com/one393143/quizlet/internal/domain"
)

const table = "study_sets"

var columns = []string{
	"id", "title", "description",
	"cards", "learn", "srs", "test_stats", "history",
	"created_at", "updated_at",
}

// Repo stores study sets in SQLite. Timestamps are unix milliseconds and
// the document columns hold JSON text.
type Repo struct {
	db    *sql.DB
	clock func() time.Time
}

// New creates a repository on an opened database.
func New(db *sql.DB) *Repo {
	return &Repo{db: db, clock: time.Now}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSet(s scanner) (domain.StudySet, error) {
	var (
		set                                   domain.StudySet
		cards, learn, srs, testStats, history string
		created, updated                      int64
	)
	err := s.Scan(
		&set.ID, &set.Title, &set.Description,
		&cards, &learn, &srs, &testStats, &history,
		&created, &updated,
	)
	if err != nil {
		return domain.StudySet{}, err
	}

	set.CreatedAt = time.UnixMilli(created).UTC()
	set.UpdatedAt = time.UnixMilli(updated).UTC()
	err = document.Decode(&set, document.Columns{
		Cards:     []byte(cards),
		Learn:     []byte(learn),
		SRS:       []byte(srs),
		TestStats: []byte(testStats),
		History:   []byte(history),
	})
	if err != nil {
		return domain.StudySet{}, fmt.Errorf("study_set %s: %w", set.ID, err)
	}
	return set, nil
}

// List returns every set, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.StudySet, error) {
	query, args, err := builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list study sets: %w", err)
	}
	defer rows.Close()

	var sets []domain.StudySet
	for rows.Next() {
		set, err := scanSet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan study set: %w", err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list study sets: %w", err)
	}
	return sets, nil
}

// GetByID returns a set by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySet, error) {
	query, args, err := builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	set, err := scanSet(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, id)
	}
	return &set, nil
}

// Create inserts a set together with its progress.
func (r *Repo) Create(ctx context.Context, set *domain.StudySet) (*domain.StudySet, error) {
	cols, err := document.Encode(set)
	if err != nil {
		return nil, err
	}

	query, args, err := builder().
		Insert(table).
		Columns(columns...).
		Values(
			set.ID.String(), set.Title, set.Description,
			string(cols.Cards), string(cols.Learn), string(cols.SRS), string(cols.TestStats), string(cols.History),
			set.CreatedAt.UnixMilli(), set.UpdatedAt.UnixMilli(),
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, mapError(err, set.ID)
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

	query, args, err := builder().
		Update(table).
		Set("title", title).
		Set("description", description).
		Set("cards", string(raw)).
		Set("updated_at", r.clock().UnixMilli()).
		Where(sq.Eq{"id": id.String()}).
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

	b := builder().Update(table)
	for _, c := range cols {
		b = b.Set(c.Name, string(c.Value))
	}
	query, args, err := b.Where(sq.Eq{"id": id.String()}).ToSql()
	if err != nil {
		return fmt.Errorf("build progress query: %w", err)
	}

	return r.exec(ctx, id, query, args)
}

// Delete removes a set and its progress.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := builder().
		Delete(table).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	return r.exec(ctx, id, query, args)
}

func (r *Repo) exec(ctx context.Context, id uuid.UUID, query string, args []any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("study_set %s: rows affected: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("study_set %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
