package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rental-marketplace/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connectAttempts = 5
	maxRetryWait    = 3 * time.Second
)

// Open builds the pool and waits for Postgres to answer, retrying while it is
// still starting (compose and CI bring the database up alongside the server).
func Open(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 15 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for attempt := 1; ; attempt++ {
		err = pool.Ping(ctx)
		if err == nil {
			return pool, nil
		}
		if attempt == connectAttempts {
			break
		}

		wait := min(time.Duration(attempt)*500*time.Millisecond, maxRetryWait)
		slog.Warn("database not ready, retrying",
			"host", cfg.Host,
			"attempt", attempt,
			"retry_wait", wait,
			"error", err.Error())

		select {
		case <-ctx.Done():
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", ctx.Err())
		case <-time.After(wait):
		}
	}

	pool.Close()
	return nil, fmt.Errorf("failed to ping database after %d attempts: %w", connectAttempts, err)
}

// LogStats reports pool usage, e.g. before shutdown
func LogStats(logger *slog.Logger, pool *pgxpool.Pool) {
	st := pool.Stat()
	logger.Info("database pool stats",
		"total_conns", st.TotalConns(),
		"acquired_conns", st.AcquiredConns(),
		"idle_conns", st.IdleConns(),
		"acquire_count", st.AcquireCount(),
		"empty_acquire_count", st.EmptyAcquireCount())
}
