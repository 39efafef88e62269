package components

import (
	"rental-marketplace/internal/infra/repository"
	"rental-marketplace/internal/infra/uow"
	"rental-marketplace/internal/infra/worker"

	"go.uber.org/fx"
)

// Write-side repositories are built per transaction by the unit of work.
// The notification queue is the exception: the dispatcher claims jobs outside any use case.
var RepositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(worker.JobQueue)),
		),
	),
)
