package components

import (
	"gearshare/internal/infra/db"
	"gearshare/internal/infra/notifications"
	"gearshare/internal/infra/payments"
	"gearshare/internal/infra/readstore"
	"gearshare/internal/infra/repository"
	"gearshare/internal/infra/uow"
	"gearshare/internal/pkg/config"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,

		// Write side
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewGearRepository,
			fx.As(new(commands.GearRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewReviewRepository,
			fx.As(new(commands.ReviewRepository)),
		),
		fx.Annotate(
			repository.NewPaymentRepository,
			fx.As(new(commands.PaymentRepository)),
		),
		fx.Annotate(
			repository.NewMessageRepository,
			fx.As(new(commands.MessageRepository)),
		),

		// Read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewGearReadStore,
			fx.As(new(queries.GearReadStore)),
			fx.As(new(queries.GearOwnership)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(queries.TrustReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewMessageReadStore,
			fx.As(new(queries.MessageReadStore)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardReadStore)),
		),

		// Collaborators
		NewPaymentGateway,
		NewNotifier,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewPaymentGateway(cfg config.Config) commands.PaymentGateway {
	return payments.NewStripeGateway(cfg.Payments)
}

func NewNotifier(cfg config.Config) commands.Notifier {
	return notifications.NewSendGridNotifier(cfg.Email)
}
