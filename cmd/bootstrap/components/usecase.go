package components

import (
	"gearshare/internal/domain/booking"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/config"
	"gearshare/internal/usecase"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPriceCalculator,
)

func NewPriceCalculator(cfg config.Config) *booking.PriceCalculator {
	return booking.NewPriceCalculator(cfg.Payments.CommissionPercent)
}

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewGearQueries,
		queries.NewBookingQueries,
		queries.NewTrustQueries,
		queries.NewReviewQueries,
		queries.NewMessageQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewGearUseCase,
		commands.NewBookingUseCase,
		commands.NewReviewUseCase,
		commands.NewMessageUseCase,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
