package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/one393143/quizlet/internal/domain"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset by peer")
	unknownPg := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), domain.ErrNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, domain.ErrAlreadyExists},
		{"foreign key", &pgconn.PgError{Code: "23503"}, domain.ErrNotFound},
		{"not null", &pgconn.PgError{Code: "23502"}, domain.ErrValidation},
		{"check", &pgconn.PgError{Code: "23514"}, domain.ErrValidation},
		{"bad jsonb", &pgconn.PgError{Code: "22P02"}, domain.ErrValidation},
		{"serialization", &pgconn.PgError{Code: "40001"}, domain.ErrConflict},
		{"wrapped pg error", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}), domain.ErrAlreadyExists},
		{"deadline", context.DeadlineExceeded, context.DeadlineExceeded},
		{"canceled", context.Canceled, context.Canceled},
		{"unknown pg error", unknownPg, unknownPg},
		{"unknown error", boom, boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id := uuid.New()
			got := MapError(tt.err, "study_set", id)
			if !errors.Is(got, tt.want) {
				t.Fatalf("MapError(%v) = %v, want it to wrap %v", tt.err, got, tt.want)
			}
			if prefix := fmt.Sprintf("study_set %s: ", id); got.Error()[:len(prefix)] != prefix {
				t.Errorf("message %q lacks entity and id", got.Error())
			}
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "study_set", uuid.New()); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_ContextIsNotNotFound(t *testing.T) {
	t.Parallel()

	got := MapError(context.DeadlineExceeded, "study_set", uuid.New())
	if errors.Is(got, domain.ErrNotFound) {
		t.Error("a timeout must not look like a missing row")
	}
}
