package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/adapter/postgres"
	pgstudyset "github.com/one393143/quizlet/internal/adapter/postgres/studyset"
	"github.com/one393143/quizlet/internal/adapter/sessioncache"
	"github.com/one393143/quizlet/internal/adapter/sqlite"
	"github.com/one393143/quizlet/internal/config"
	"github.com/one393143/quizlet/internal/domain"
)

// setStore is the full repository surface the services and writer need.
type setStore interface {
	List(ctx context.Context) ([]domain.StudySet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySet, error)
	Create(ctx context.Context, set *domain.StudySet) (*domain.StudySet, error)
	UpdateContent(ctx context.Context, id uuid.UUID, title, description string, cards []domain.Card) error
	UpdateProgress(ctx context.Context, id uuid.UUID, patch domain.ProgressPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Store is an opened set repository with its health probe and teardown.
type Store struct {
	Sets  setStore
	Ping  func(ctx context.Context) error
	Close func()
}

// OpenStore connects the configured driver and, when enabled, migrates it.
func OpenStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if cfg.Store.Migrate {
			results, err := postgres.Migrate(ctx, pool)
			if err != nil {
				pool.Close()
				return nil, err
			}
			log.Info("migrations applied", slog.String("driver", cfg.Store.Driver), slog.Int("count", len(results)))
		}
		return &Store{Sets: pgstudyset.New(pool), Ping: pool.Ping, Close: pool.Close}, nil

	case config.StoreSQLite:
		open := sqlite.Connect
		if cfg.Store.Migrate {
			open = sqlite.Open
		}
		db, err := open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return &Store{
			Sets:  sqlite.New(db),
			Ping:  db.PingContext,
			Close: func() { _ = db.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// sessionStores holds one session cache per session kind.
type sessionStores struct {
	learn sessioncache.Store[domain.LearnSession]
	test  sessioncache.Store[domain.TestSession]
	close func()
}

func openSessions(ctx context.Context, cfg *config.Config) (*sessionStores, error) {
	switch cfg.Session.Backend {
	case config.SessionRedis:
		rdb, err := sessioncache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &sessionStores{
			learn: sessioncache.NewRedis[domain.LearnSession](rdb, cfg.Redis.KeyPrefix, sessioncache.KindLearn, cfg.Session.TTL),
			test:  sessioncache.NewRedis[domain.TestSession](rdb, cfg.Redis.KeyPrefix, sessioncache.KindTest, cfg.Session.TTL),
			close: func() { _ = rdb.Close() },
		}, nil

	default:
		return &sessionStores{
			learn: sessioncache.NewMemory[domain.LearnSession](sessioncache.KindLearn, cfg.Session.TTL),
			test:  sessioncache.NewMemory[domain.TestSession](sessioncache.KindTest, cfg.Session.TTL),
			close: func() {},
		}, nil
	}
}
