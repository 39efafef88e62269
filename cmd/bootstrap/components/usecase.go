package components

import (
	"rental-marketplace/internal/domain/listing"
	"rental-marketplace/internal/domain/reservation"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/pkg/idgen"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewDailyRateCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	func(clk clock.Clock, cfg config.Config, calc reservation.PriceCalculator) *reservation.Factory {
		return reservation.NewFactory(clk, cfg.Marketplace.Location(), calc)
	},
	func(cfg config.Config) (listing.Commission, error) {
		return listing.NewCommission(cfg.Marketplace.CommissionPercent)
	},
	fx.Annotate(
		func(cfg config.Config) (*idgen.SnowflakeGenerator, error) {
			return idgen.NewSnowflakeGenerator(cfg.Marketplace.NodeID)
		},
		fx.As(new(idgen.OrderRefGenerator)),
	),
	func(cfg config.Config) commands.BookingSettings {
		return commands.BookingSettings{
			Currency:      cfg.Marketplace.Currency,
			NoReplyDomain: cfg.Mail.NoReplyDomain,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewTenantCommands,
		func(uow shared.UnitOfWork, blobs commands.BlobStore, commission listing.Commission, clk clock.Clock, cfg config.Config) commands.ListingCommands {
			return commands.NewListingCommands(uow, blobs, commission, clk, cfg.Storage.MaxUploadMB<<20)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewFleetQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewCompanyQueries,
		queries.NewDashboardQueries,
	),
)
