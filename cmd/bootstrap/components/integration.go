package components

import (
	"context"
	"log/slog"

	"rental-marketplace/internal/infra/mail"
	"rental-marketplace/internal/infra/payment"
	"rental-marketplace/internal/infra/storage"
	"rental-marketplace/internal/infra/worker"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/usecase/commands"

	"go.uber.org/fx"
)

// IntegrationModule wires the outbound adapters: payment provider, image bucket, mail and the outbox worker
var IntegrationModule = fx.Module("integration",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *payment.PaymobClient {
				return payment.NewPaymobClient(cfg.Payment)
			},
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			func(cfg config.Config) (*storage.S3BlobStore, error) {
				return storage.NewS3BlobStore(context.Background(), cfg.Storage)
			},
			fx.As(new(commands.BlobStore)),
		),
		fx.Annotate(
			func(cfg config.Config) *mail.SMTPMailer {
				return mail.NewSMTPMailer(cfg.Mail)
			},
			fx.As(new(worker.Mailer)),
		),
		NewNotificationDispatcher,
	),
)

// NewNotificationDispatcher returns a nil signal when the worker is disabled;
// queued jobs then wait for an instance that runs it.
func NewNotificationDispatcher(
	lc fx.Lifecycle,
	cfg config.Config,
	queue worker.JobQueue,
	mailer worker.Mailer,
	clk clock.Clock,
) (commands.JobSignal, error) {
	if !cfg.Worker.Enabled {
		slog.Info("notification worker disabled")
		return nil, nil
	}

	d, err := worker.NewDispatcher(queue, mailer, cfg.Worker, clk, cfg.Marketplace.Location())
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: d.Start,
		OnStop:  d.Stop,
	})
	return d, nil
}
