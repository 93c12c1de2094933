package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Session  SessionConfig  `yaml:"session"`
	Redis    RedisConfig    `yaml:"redis"`
	SRS      SRSConfig      `yaml:"srs"`
	Quiz     QuizConfig     `yaml:"quiz"`
	Progress ProgressConfig `yaml:"progress"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// Store drivers.
const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Session backends.
const (
	SessionMemory = "memory"
	SessionRedis  = "redis"
)

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id,X-Client-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// StoreConfig selects the set store backend.
type StoreConfig struct {
	Driver string `yaml:"driver" env:"STORE_DRIVER" env-default:"sqlite"`
	// Migrate applies pending migrations at startup.
	Migrate bool `yaml:"migrate" env:"STORE_MIGRATE" env-default:"true"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"quizlet"`
}

// SQLiteConfig holds the embedded database settings.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"./quizlet.db"`
}

// SessionConfig selects where in-flight learn and test sessions live.
type SessionConfig struct {
	Backend string        `yaml:"backend" env:"SESSION_BACKEND" env-default:"memory"`
	TTL     time.Duration `yaml:"ttl"     env:"SESSION_TTL"     env-default:"2h"`
}

// RedisConfig holds Redis connection settings for the session cache.
type RedisConfig struct {
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"         env-default:"localhost:6379"`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"`
	KeyPrefix   string        `yaml:"key_prefix"   env:"REDIS_KEY_PREFIX"   env-default:"quizlet:"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
}

// SRSConfig holds spaced-repetition parameters.
type SRSConfig struct {
	Strategy     string        `yaml:"strategy"      env:"SRS_STRATEGY"      env-default:"ladder"`
	RelearnDelay time.Duration `yaml:"relearn_delay" env:"SRS_RELEARN_DELAY" env-default:"1m"`
	EaseFactor   float64       `yaml:"ease_factor"   env:"SRS_EASE_FACTOR"   env-default:"2.5"`
}

// QuizConfig holds test generation settings.
type QuizConfig struct {
	DefaultCount   int `yaml:"default_count"   env:"QUIZ_DEFAULT_COUNT"   env-default:"10"`
	MaxCount       int `yaml:"max_count"       env:"QUIZ_MAX_COUNT"       env-default:"200"`
	FuzzyThreshold int `yaml:"fuzzy_threshold" env:"QUIZ_FUZZY_THRESHOLD" env-default:"2"`
}

// ProgressConfig holds asynchronous progress writer settings.
type ProgressConfig struct {
	QueueSize    int           `yaml:"queue_size"    env:"PROGRESS_QUEUE_SIZE"    env-default:"256"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"PROGRESS_WRITE_TIMEOUT" env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
