// Package app wires configuration, storage, services and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/one393143/quizlet/internal/config"
	"github.com/one393143/quizlet/internal/service/analytics"
	"github.com/one393143/quizlet/internal/service/progress"
	"github.com/one393143/quizlet/internal/service/quiz"
	"github.com/one393143/quizlet/internal/service/study"
	"github.com/one393143/quizlet/internal/service/study/schedule"
	"github.com/one393143/quizlet/internal/service/studyset"
	"github.com/one393143/quizlet/internal/transport/middleware"
	"github.com/one393143/quizlet/internal/transport/rest"
)

// Run loads configuration, opens the store and serves the API until ctx is
// cancelled. Queued progress writes are flushed before Run returns.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Driver),
		slog.String("sessions", cfg.Session.Backend),
		slog.String("srs", cfg.SRS.Strategy),
	)

	store, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	sessions, err := openSessions(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open sessions: %w", err)
	}
	defer sessions.close()

	writer := progress.NewWriter(logger, store.Sets, progress.Config{
		QueueSize:    cfg.Progress.QueueSize,
		WriteTimeout: cfg.Progress.WriteTimeout,
	})

	router, err := newRouter(cfg, logger, store, sessions, writer)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	// The writer is closed only after the server drained, so grades that
	// were in flight during shutdown still get written.
	g.Go(func() error {
		<-gctx.Done()
		defer writer.Close()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		logger.Info("http server stopped")
		return nil
	})

	g.Go(func() error {
		return writer.Run(context.WithoutCancel(gctx))
	})

	g.Go(func() error {
		watchDiagnostics(logger, writer.Diagnostics())
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	stats := writer.Stats()
	logger.Info("application stopped",
		slog.Int64("progress_written", stats.Written),
		slog.Int64("progress_failed", stats.Failed),
		slog.Int64("progress_dropped", stats.Dropped),
	)
	return nil
}

// newRouter builds the services over store and mounts them with the
// middleware chain.
func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	store *Store,
	sessions *sessionStores,
	writer *progress.Writer,
) (http.Handler, error) {
	strategy, err := schedule.New(cfg.SRS.Strategy, cfg.SRS.EaseFactor, cfg.SRS.RelearnDelay)
	if err != nil {
		return nil, err
	}

	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(rest.PingFunc(store.Ping), writer, cfg.Store.Driver, BuildVersion()),
		Sets:   rest.NewSetHandler(studyset.NewService(logger, store.Sets), logger),
		Learn: rest.NewLearnHandler(
			study.NewService(logger, store.Sets, writer, strategy), sessions.learn, logger),
		Test: rest.NewTestHandler(
			quiz.NewService(logger, store.Sets, writer, quiz.Options{
				DefaultCount: cfg.Quiz.DefaultCount,
				MaxCount:     cfg.Quiz.MaxCount,
				MaxDistance:  cfg.Quiz.FuzzyThreshold,
			}), sessions.test, logger),
		Analytics: rest.NewAnalyticsHandler(analytics.NewService(logger, store.Sets), logger),
	}

	return rest.NewRouter(handlers,
		middleware.RequestID(),
		middleware.ClientID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	), nil
}

// watchDiagnostics tallies lost progress writes by cause until the writer
// closes diags, then logs one summary line per cause.
func watchDiagnostics(logger *slog.Logger, diags <-chan progress.Diagnostic) {
	counts := make(map[string]int)
	for d := range diags {
		counts[lossCause(d.Err)]++
	}
	for cause, n := range counts {
		logger.Warn("progress writes lost", slog.String("cause", cause), slog.Int("count", n))
	}
}

func lossCause(err error) string {
	switch {
	case errors.Is(err, progress.ErrQueueFull):
		return "queue_full"
	case errors.Is(err, progress.ErrClosed):
		return "closed"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "store"
	}
}
