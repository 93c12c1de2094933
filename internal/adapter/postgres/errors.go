package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/one393143/quizlet/internal/domain"
)

// pgCodes maps SQLSTATE codes to the domain error they mean for a study set row.
var pgCodes = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"23514": domain.ErrValidation,    // check_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation (malformed jsonb)
	"40001": domain.ErrConflict,      // serialization_failure
}

// MapError converts pgx errors on the row entity/id to domain errors.
// Context errors and unknown failures keep their original chain.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	wrap := func(target error) error { return fmt.Errorf("%s %s: %w", entity, id, target) }

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return wrap(err)
	case errors.Is(err, pgx.ErrNoRows), pgxscan.NotFound(err):
		return wrap(domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if target, ok := pgCodes[pgErr.Code]; ok {
			return wrap(target)
		}
	}
	return wrap(err)
}
