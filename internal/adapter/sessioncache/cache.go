// Package sessioncache keeps in-flight learn and test sessions between
// requests. Sessions are stored as JSON so every backend hands out
// independent copies.
package sessioncache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
)

// Store persists sessions of type T keyed by session ID.
type Store[T any] interface {
	Put(ctx context.Context, id uuid.UUID, session *T) error
	// Get returns domain.ErrNotFound for unknown or expired sessions.
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Key prefixes per session kind.
const (
	KindLearn = "learn"
	KindTest  = "test"
)

func encode[T any](session *T) ([]byte, error) {
	b, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return b, nil
}

func decode[T any](raw []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &out, nil
}

func notFound(kind string, id uuid.UUID) error {
	return fmt.Errorf("%s session %s: %w", kind, id, domain.ErrNotFound)
}
