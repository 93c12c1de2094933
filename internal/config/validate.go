package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case StorePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres store")
		}
		if c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
		}
	case StoreSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("sqlite.path is required for the sqlite store")
		}
	default:
		return fmt.Errorf("store.driver must be %q or %q (got %q)", StorePostgres, StoreSQLite, c.Store.Driver)
	}

	c.Session.Backend = strings.ToLower(strings.TrimSpace(c.Session.Backend))
	switch c.Session.Backend {
	case SessionMemory:
	case SessionRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the redis session backend")
		}
	default:
		return fmt.Errorf("session.backend must be %q or %q (got %q)", SessionMemory, SessionRedis, c.Session.Backend)
	}
	if c.Session.TTL < 0 {
		return fmt.Errorf("session.ttl must be >= 0 (got %v)", c.Session.TTL)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}
	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}
	if err := c.Progress.validate(); err != nil {
		return fmt.Errorf("progress: %w", err)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	s.Strategy = strings.ToLower(strings.TrimSpace(s.Strategy))
	switch s.Strategy {
	case "ladder", "ease":
	default:
		return fmt.Errorf("strategy must be \"ladder\" or \"ease\" (got %q)", s.Strategy)
	}
	if s.RelearnDelay < 0 {
		return fmt.Errorf("relearn_delay must be >= 0 (got %v)", s.RelearnDelay)
	}
	if s.Strategy == "ease" && s.EaseFactor < 1 {
		return fmt.Errorf("ease_factor must be >= 1 (got %v)", s.EaseFactor)
	}
	return nil
}

func (q QuizConfig) validate() error {
	if q.DefaultCount <= 0 {
		return fmt.Errorf("default_count must be > 0 (got %d)", q.DefaultCount)
	}
	if q.MaxCount < q.DefaultCount {
		return fmt.Errorf("max_count (%d) must be >= default_count (%d)", q.MaxCount, q.DefaultCount)
	}
	if q.FuzzyThreshold < 0 {
		return fmt.Errorf("fuzzy_threshold must be >= 0 (got %d)", q.FuzzyThreshold)
	}
	return nil
}

func (p ProgressConfig) validate() error {
	if p.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be > 0 (got %d)", p.QueueSize)
	}
	if p.WriteTimeout <= 0 {
		return fmt.Errorf("write_timeout must be > 0 (got %v)", p.WriteTimeout)
	}
	return nil
}
