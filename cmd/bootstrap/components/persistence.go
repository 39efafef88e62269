package components

import (
	"rental-marketplace/internal/infra/readstore"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	RepositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.CredentialStore)),
		),
		// Fleet
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.FleetReadQueries)),
		),
		fx.Annotate(
			readstore.NewFleetReadStore,
			fx.As(new(queries.FleetReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.AvailabilityReadStore)),
		),
		// Company
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CompanyReadQueries)),
		),
		fx.Annotate(
			readstore.NewCompanyReadStore,
			fx.As(new(queries.CompanyReadStore)),
		),
		// Dashboard
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DashboardReadQueries)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
