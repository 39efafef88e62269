package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"rental-marketplace/internal/infra/db"
	"rental-marketplace/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const dbConnectTimeout = 20 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	pool, err := db.Open(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "database", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			db.LogStats(logger, pool)
			pool.Close()
			return nil
		},
	})
	return pool, nil
}
