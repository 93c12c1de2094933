package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/one393143/quizlet/internal/config"
	"github.com/one393143/quizlet/internal/domain"
	"github.com/one393143/quizlet/internal/service/progress"
)

func TestOpenStore_SQLiteMemory(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Store:  config.StoreConfig{Driver: config.StoreSQLite, Migrate: true},
		SQLite: config.SQLiteConfig{Path: ":memory:"},
	}
	store, err := OpenStore(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(store.Close)

	require.NoError(t, store.Ping(context.Background()))

	sets, err := store.Sets.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Store: config.StoreConfig{Driver: "mongo"}}
	_, err := OpenStore(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo")
}

func TestOpenSessions_MemoryDefault(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Session: config.SessionConfig{Backend: config.SessionMemory, TTL: time.Minute}}
	s, err := openSessions(context.Background(), cfg)
	require.NoError(t, err)
	defer s.close()

	id := uuid.New()
	require.NoError(t, s.learn.Put(context.Background(), id, &domain.LearnSession{ID: id}))
	got, err := s.learn.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	_, err = s.test.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLossCause(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{progress.ErrQueueFull, "queue_full"},
		{progress.ErrClosed, "closed"},
		{fmt.Errorf("update progress: %w", context.DeadlineExceeded), "timeout"},
		{errors.New("connection reset"), "store"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lossCause(tt.err), tt.err.Error())
	}
}

func TestWatchDiagnostics_LogsSummaryOnClose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	diags := make(chan progress.Diagnostic, 3)
	diags <- progress.Diagnostic{Err: progress.ErrQueueFull}
	diags <- progress.Diagnostic{Err: progress.ErrQueueFull}
	close(diags)

	watchDiagnostics(logger, diags)

	assert.Contains(t, buf.String(), "progress writes lost")
	assert.Contains(t, buf.String(), "cause=queue_full")
	assert.Contains(t, buf.String(), "count=2")
}

type unreachableStore struct{}

func (unreachableStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySet, error) {
	return nil, errors.New("connection refused")
}

func (unreachableStore) UpdateProgress(ctx context.Context, id uuid.UUID, patch domain.ProgressPatch) error {
	return errors.New("connection refused")
}

func TestWatchDiagnostics_CountsWritesLostWhileDraining(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	writer := progress.NewWriter(logger, unreachableStore{}, progress.Config{QueueSize: 4})

	done := make(chan struct{})
	go func() {
		watchDiagnostics(logger, writer.Diagnostics())
		close(done)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for range 3 {
		writer.Enqueue(context.Background(), uuid.New(), domain.ProgressChange{CardID: uuid.New()})
	}
	require.NoError(t, writer.Run(ctx))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watchDiagnostics did not return after the writer stopped")
	}
	assert.Contains(t, buf.String(), "cause=store")
	assert.Contains(t, buf.String(), "count=3")
}
