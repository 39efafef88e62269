package bootstrap

import (
	"fmt"
	"log/slog"

	"rental-marketplace/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
	fx.Invoke(logConfigSummary),
)

// NewConfig loads the environment and rejects settings the server cannot run with
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// secrets are reported only as configured or not
func logConfigSummary(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"marketplace_timezone", cfg.Marketplace.TimeZone,
		"commission_percent", cfg.Marketplace.CommissionPercent,
		"payments_configured", cfg.Payment.APIKey != "" && cfg.Payment.IntegrationID != "",
		"smtp_configured", cfg.Mail.Host != "",
		"storage_bucket", cfg.Storage.Bucket,
		"worker_enabled", cfg.Worker.Enabled,
		"worker_schedule", cfg.Worker.Schedule)
}
