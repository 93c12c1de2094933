// Package progress persists study progress in the background.
//
// Grading never waits for the store: every grade enqueues the change it made
// to one card, and a single worker applies changes in arrival order by
// reading the stored set, merging the change and writing back the progress
// columns it touched. Failures are logged and published on the diagnostics
// channel; they are never retried and never reach the caller.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
	"github.com/one393143/quizlet/pkg/ctxutil"
)

var (
	// ErrQueueFull is reported when a write is dropped because the queue is full.
	ErrQueueFull = errors.New("progress queue full")
	// ErrClosed is reported when a write arrives after the writer stopped.
	ErrClosed = errors.New("progress writer closed")
)

type progressStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySet, error)
	UpdateProgress(ctx context.Context, id uuid.UUID, patch domain.ProgressPatch) error
}

// Config tunes the writer.
type Config struct {
	QueueSize         int
	DiagnosticsBuffer int
	WriteTimeout      time.Duration
}

// Diagnostic describes one write that did not reach the store.
type Diagnostic struct {
	SetID     uuid.UUID
	RequestID string
	Err       error
	At        time.Time
}

// Stats are running counters of the writer.
type Stats struct {
	Written int64 `json:"written"`
	Failed  int64 `json:"failed"`
	Dropped int64 `json:"dropped"`
	Pending int   `json:"pending"`
}

type job struct {
	setID     uuid.UUID
	change    domain.ProgressChange
	requestID string
}

// Writer is a bounded FIFO of progress writes drained by one worker.
type Writer struct {
	store        progressStore
	log          *slog.Logger
	writeTimeout time.Duration
	clock        func() time.Time

	mu      sync.RWMutex
	closed  bool
	stopped bool
	queue   chan job
	diags   chan Diagnostic

	written atomic.Int64
	failed  atomic.Int64
	dropped atomic.Int64
}

// NewWriter creates a Writer. Call Run to start the worker.
func NewWriter(log *slog.Logger, store progressStore, cfg Config) *Writer {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.DiagnosticsBuffer <= 0 {
		cfg.DiagnosticsBuffer = 16
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	return &Writer{
		store:        store,
		log:          log.With("component", "progress_writer"),
		writeTimeout: cfg.WriteTimeout,
		clock:        time.Now,
		queue:        make(chan job, cfg.QueueSize),
		diags:        make(chan Diagnostic, cfg.DiagnosticsBuffer),
	}
}

// Enqueue schedules a write and returns immediately. Empty changes are ignored.
func (w *Writer) Enqueue(ctx context.Context, setID uuid.UUID, change domain.ProgressChange) {
	if change.IsEmpty() {
		return
	}
	j := job{setID: setID, change: change, requestID: ctxutil.RequestIDFromCtx(ctx)}

	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		w.dropped.Add(1)
		w.report(ctx, j, ErrClosed)
		return
	}
	select {
	case w.queue <- j:
	default:
		w.dropped.Add(1)
		w.report(ctx, j, ErrQueueFull)
	}
}

// Diagnostics returns the channel failed writes are published on.
// Diagnostics are dropped when the buffer is full. The channel is closed
// when Run returns, after the last queued write.
func (w *Writer) Diagnostics() <-chan Diagnostic {
	return w.diags
}

// Stats returns a snapshot of the counters.
func (w *Writer) Stats() Stats {
	return Stats{
		Written: w.written.Load(),
		Failed:  w.failed.Load(),
		Dropped: w.dropped.Load(),
		Pending: len(w.queue),
	}
}

// Run writes queued changes until ctx is cancelled or Close is called,
// then writes whatever is still queued and returns.
func (w *Writer) Run(ctx context.Context) error {
	defer w.stop()
	w.log.InfoContext(ctx, "progress writer started", slog.Int("queue_size", cap(w.queue)))

	for {
		select {
		case j, ok := <-w.queue:
			if !ok {
				w.log.Info("progress writer stopped")
				return nil
			}
			w.write(ctx, j)
		case <-ctx.Done():
			w.Close()
			n := 0
			for j := range w.queue {
				w.write(ctx, j)
				n++
			}
			w.log.Info("progress writer stopped", slog.Int("drained", n))
			return nil
		}
	}
}

// Close stops intake. Run returns once the queue is empty. Safe to call more than once.
func (w *Writer) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	close(w.queue)
}

// stop closes the diagnostics channel. Later losses are only logged.
func (w *Writer) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	w.stopped = true
	close(w.diags)
}

// write detaches from the caller's cancellation; each write is bounded by writeTimeout only.
func (w *Writer) write(ctx context.Context, j job) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.writeTimeout)
	defer cancel()
	ctx = ctxutil.WithRequestID(ctx, j.requestID)

	set, err := w.store.GetByID(ctx, j.setID)
	if err != nil {
		w.failed.Add(1)
		w.report(ctx, j, fmt.Errorf("get set: %w", err))
		return
	}
	j.change.Apply(set)

	if err := w.store.UpdateProgress(ctx, j.setID, j.change.Patch(set)); err != nil {
		w.failed.Add(1)
		w.report(ctx, j, fmt.Errorf("update progress: %w", err))
		return
	}
	w.written.Add(1)
}

func (w *Writer) report(ctx context.Context, j job, err error) {
	w.log.ErrorContext(ctx, "progress write failed",
		slog.String("set_id", j.setID.String()),
		slog.String("request_id", j.requestID),
		slog.String("error", err.Error()),
	)

	if w.stopped {
		return
	}
	d := Diagnostic{SetID: j.setID, RequestID: j.requestID, Err: err, At: w.clock()}
	select {
	case w.diags <- d:
	default:
	}
}
