package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolSettings controls connection pool sizing. Zero fields fall back to the
// package defaults, so callers only set what their config provides.
type PoolSettings struct {
	MaxConns    int
	MinConns    int
	MaxIdleTime time.Duration
	MaxLifetime time.Duration
}

func (s PoolSettings) withDefaults() PoolSettings {
	if s.MaxConns <= 0 {
		s.MaxConns = DefaultMaxConnections
	}
	if s.MaxConns > math.MaxInt32 {
		s.MaxConns = math.MaxInt32
	}
	if s.MinConns <= 0 {
		s.MinConns = DefaultMinConnections
	}
	if s.MaxIdleTime <= 0 {
		s.MaxIdleTime = DefaultMaxIdleTime
	}
	if s.MaxLifetime <= 0 {
		s.MaxLifetime = DefaultMaxLifetime
	}
	return s
}

// NewPool creates a new PostgreSQL connection pool and verifies connectivity
func NewPool(ctx context.Context, connString string, settings PoolSettings) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	settings = settings.withDefaults()
	config.MaxConns = int32(settings.MaxConns)
	config.MinConns = int32(settings.MinConns)
	config.MaxConnIdleTime = settings.MaxIdleTime
	config.MaxConnLifetime = settings.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"maxConns", settings.MaxConns, "minConns", settings.MinConns)
	return pool, nil
}
