// Command due-report logs which study sets have cards due for review.
// It is intended to be invoked by an external cron job, for example to
// drive reminders.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/one393143/quizlet/internal/app"
	"github.com/one393143/quizlet/internal/config"
	"github.com/one393143/quizlet/internal/service/analytics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	due, err := analytics.NewService(logger, store.Sets).DueSets(ctx)
	if err != nil {
		logger.Error("due report failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, d := range due {
		logger.Info("set due",
			slog.String("set_id", d.SetID.String()),
			slog.String("title", d.Title),
			slog.Int("due", d.DueCount),
		)
	}
	logger.Info("due report completed", slog.Int("sets", len(due)))
}
