// Command migrate manages the schema of the configured store.
//
// Usage:
//
//	migrate [up|down|status]
//
// The default command is up. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/one393143/quizlet/internal/adapter/postgres"
	"github.com/one393143/quizlet/internal/adapter/sqlite"
	"github.com/one393143/quizlet/internal/app"
	"github.com/one393143/quizlet/internal/config"
	"github.com/one393143/quizlet/migrations"
)

func main() {
	flag.Parse()
	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, closeDB, err := openDB(ctx, cfg)
	if err != nil {
		logger.Error("connect to store", slog.String("driver", cfg.Store.Driver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeDB()

	provider, err := migrations.NewProvider(cfg.Store.Driver, db)
	if err != nil {
		logger.Error("load migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(ctx, provider, command, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, provider *goose.Provider, command string, logger *slog.Logger) error {
	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		for _, r := range results {
			logger.Info("applied", slog.String("migration", r.Source.Path), slog.Duration("took", r.Duration))
		}
		logger.Info("migrations up to date", slog.Int("applied", len(results)))
		return nil

	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return err
		}
		logger.Info("rolled back", slog.String("migration", r.Source.Path))
		return nil

	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%-40s %s\n", s.Source.Path, applied)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, func(), error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		db := postgres.OpenDB(pool)
		return db, func() { db.Close(); pool.Close() }, nil
	case config.StoreSQLite:
		db, err := sqlite.Connect(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
