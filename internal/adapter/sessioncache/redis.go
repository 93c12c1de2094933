package sessioncache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/one393143/quizlet/internal/config"
)

// NewRedisClient connects to Redis and pings it so a bad address fails at startup.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	ctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// Redis is a Store shared between server instances. Every read refreshes the TTL.
type Redis[T any] struct {
	rdb    goredis.Cmdable
	kind   string
	prefix string
	ttl    time.Duration
}

// NewRedis creates a Redis-backed store. Keys are "<prefix><kind>:<id>".
func NewRedis[T any](rdb goredis.Cmdable, prefix, kind string, ttl time.Duration) *Redis[T] {
	return &Redis[T]{rdb: rdb, kind: kind, prefix: prefix, ttl: ttl}
}

func (r *Redis[T]) key(id uuid.UUID) string {
	return r.prefix + r.kind + ":" + id.String()
}

func (r *Redis[T]) Put(ctx context.Context, id uuid.UUID, session *T) error {
	data, err := encode(session)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, r.key(id), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%s session %s: redis set: %w", r.kind, id, err)
	}
	return nil
}

func (r *Redis[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var raw []byte
	var err error
	if r.ttl > 0 {
		raw, err = r.rdb.GetEx(ctx, r.key(id), r.ttl).Bytes()
	} else {
		raw, err = r.rdb.Get(ctx, r.key(id)).Bytes()
	}
	if errors.Is(err, goredis.Nil) {
		return nil, notFound(r.kind, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%s session %s: redis get: %w", r.kind, id, err)
	}
	return decode[T](raw)
}

func (r *Redis[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.rdb.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("%s session %s: redis del: %w", r.kind, id, err)
	}
	return nil
}
