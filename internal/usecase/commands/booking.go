package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/trust"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	paymentTypeRental  = "rental"
	paymentTypeDeposit = "deposit"
)

type CreateBookingRequest struct {
	GearID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

type CreateBookingResult struct {
	Booking *queries.BookingView
	// Warning carries non-fatal collaborator failures, e.g. a confirmation
	// email that could not be sent.
	Warning string
}

type TransitionBookingResult struct {
	Booking *queries.BookingView
	Warning string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, renterID uuid.UUID) (*CreateBookingResult, error)
	TransitionBooking(ctx context.Context, bookingID uuid.UUID, to booking.Status, actorID uuid.UUID) (*TransitionBookingResult, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingRepo    BookingRepository
	gearRepo       GearRepository
	userRepo       UserRepository
	paymentRepo    PaymentRepository
	gateway        PaymentGateway
	notifier       Notifier
	calculator     *booking.PriceCalculator
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	bookingRepo BookingRepository,
	gearRepo GearRepository,
	userRepo UserRepository,
	paymentRepo PaymentRepository,
	gateway PaymentGateway,
	notifier Notifier,
	calculator *booking.PriceCalculator,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingRepo:    bookingRepo,
		gearRepo:       gearRepo,
		userRepo:       userRepo,
		paymentRepo:    paymentRepo,
		gateway:        gateway,
		notifier:       notifier,
		calculator:     calculator,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

// CreateBooking validates gear availability, trust affordability and the
// requested dates, then inserts a pending booking. The conflict check runs
// inside the write transaction; the exclusion constraint on blocking
// bookings is the commit-time backstop for races the check cannot see.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, renterID uuid.UUID) (*CreateBookingResult, error) {
	gearSnap, err := uc.loadAvailableGear(ctx, req.GearID)
	if err != nil {
		return nil, err
	}

	if err = uc.checkTrust(ctx, renterID, gearSnap.DailyPriceCents); err != nil {
		return nil, err
	}

	dates, err := booking.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if err = dates.ValidateNotInPast(clock.Today(uc.clock)); err != nil {
		return nil, err
	}

	quote := uc.calculator.Price(booking.NewMoney(gearSnap.DailyPriceCents), dates)
	entity, err := booking.NewBooking(req.GearID, renterID, dates, quote)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		conflict, txErr := uc.bookingRepo.HasConflict(ctx, tx, req.GearID, dates)
		if txErr != nil {
			return errs.Mark(txErr, errs.ErrDatabaseOperationFailed)
		}
		if conflict {
			return errs.ErrBookingConflict
		}
		return uc.bookingRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrBookingConflict
		}
		if errors.Is(err, errs.ErrBookingConflict) {
			return nil, errs.ErrBookingConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := uc.bookingQueries.GetByIDSystem(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := &CreateBookingResult{Booking: view}
	if notifyErr := uc.notifier.BookingCreated(ctx, noticeFromView(view)); notifyErr != nil {
		slog.Warn("booking created notification failed", "booking_id", view.ID, "error", notifyErr)
		result.Warning = "booking created but notification email failed"
	}
	return result, nil
}

// TransitionBooking applies one step of the booking lifecycle. The actor's
// role is derived from the booking itself, never taken from the request.
// Confirming a booking sets up the payment first; a failed payment setup
// fails the request and leaves the booking untouched. Completing a booking
// recomputes the renter's trust standing in the same transaction.
func (uc *bookingUseCaseImpl) TransitionBooking(ctx context.Context, bookingID uuid.UUID, to booking.Status, actorID uuid.UUID) (*TransitionBookingResult, error) {
	snap, role, err := uc.loadBookingForActor(ctx, bookingID, actorID)
	if err != nil {
		return nil, err
	}

	if !booking.CanTransition(snap.Status, to, role) {
		return nil, &booking.InvalidTransitionError{From: snap.Status, To: to, Role: role}
	}

	var intent *PaymentIntent
	if to == booking.StatusConfirmed {
		intent, err = uc.setUpPayment(ctx, snap)
		if err != nil {
			return nil, err
		}
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if txErr := uc.bookingRepo.UpdateStatus(ctx, tx, bookingID, snap.Status, to); txErr != nil {
			return txErr
		}
		if to == booking.StatusConfirmed {
			return uc.recordPayments(ctx, tx, snap, intent)
		}
		if to == booking.StatusCompleted {
			return uc.recomputeRenterTrust(ctx, tx, snap.RenterID)
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Another transition won the race; the status guard rejected ours.
			return nil, errs.ErrBookingConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := uc.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := &TransitionBookingResult{Booking: view}
	if notifyErr := uc.notifier.BookingStatusChanged(ctx, noticeFromView(view)); notifyErr != nil {
		slog.Warn("booking status notification failed", "booking_id", view.ID, "status", view.Status, "error", notifyErr)
		result.Warning = "status updated but notification email failed"
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) loadAvailableGear(ctx context.Context, gearID uuid.UUID) (*GearSnapshot, error) {
	var snap *GearSnapshot
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		found, dbErr := uc.gearRepo.FindByID(ctx, dbtx, gearID)
		if dbErr != nil {
			return dbErr
		}
		snap = found
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrGearNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !snap.IsAvailable {
		return nil, errs.ErrGearUnavailable
	}
	return snap, nil
}

func (uc *bookingUseCaseImpl) checkTrust(ctx context.Context, renterID uuid.UUID, dailyPriceCents int64) error {
	var renter *RenterSnapshot
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		found, dbErr := uc.userRepo.FindRenterSnapshot(ctx, dbtx, renterID)
		if dbErr != nil {
			return dbErr
		}
		renter = found
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if ok, reason := trust.CanAfford(renter.Tier, renter.Verified, dailyPriceCents); !ok {
		return errs.Mark(errs.New(reason), errs.ErrInsufficientTrust)
	}
	return nil
}

func (uc *bookingUseCaseImpl) loadBookingForActor(ctx context.Context, bookingID, actorID uuid.UUID) (*BookingSnapshot, booking.ActorRole, error) {
	var snap *BookingSnapshot
	var gearSnap *GearSnapshot
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		found, dbErr := uc.bookingRepo.FindByID(ctx, dbtx, bookingID)
		if dbErr != nil {
			return dbErr
		}
		snap = found
		gearSnap, dbErr = uc.gearRepo.FindByID(ctx, dbtx, snap.GearID)
		return dbErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, "", errs.ErrBookingNotFound
		}
		return nil, "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	switch actorID {
	case snap.RenterID:
		return snap, booking.RoleRenter, nil
	case gearSnap.OwnerID:
		return snap, booking.RoleOwner, nil
	default:
		return nil, "", errs.ErrUnauthorized
	}
}

func (uc *bookingUseCaseImpl) setUpPayment(ctx context.Context, snap *BookingSnapshot) (*PaymentIntent, error) {
	var gearSnap *GearSnapshot
	var payout *PayoutAccountSnapshot
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		found, dbErr := uc.gearRepo.FindByID(ctx, dbtx, snap.GearID)
		if dbErr != nil {
			return dbErr
		}
		gearSnap = found
		payout, dbErr = uc.userRepo.FindPayoutAccount(ctx, dbtx, gearSnap.OwnerID)
		return dbErr
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if payout.StripeAccountID == nil || !payout.PayoutsReady {
		return nil, errs.ErrOwnerPayoutNotReady
	}

	total := booking.NewMoney(snap.TotalCostCents)
	intent, err := uc.gateway.CreateBookingIntent(ctx, PaymentIntentRequest{
		BookingID:        snap.ID,
		RenterID:         snap.RenterID,
		OwnerAccountID:   *payout.StripeAccountID,
		TotalAmountCents: total.Cents(),
		PlatformFeeCents: uc.calculator.PlatformFee(total).Cents(),
		DepositCents:     snap.DepositCents,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPaymentSetupFailed)
	}
	return intent, nil
}

func (uc *bookingUseCaseImpl) recordPayments(ctx context.Context, tx db.DBTX, snap *BookingSnapshot, intent *PaymentIntent) error {
	rental := PaymentRecord{
		BookingID:        snap.ID,
		PaymentType:      paymentTypeRental,
		AmountCents:      snap.TotalCostCents,
		ProviderIntentID: intent.ID,
	}
	if err := uc.paymentRepo.CreatePending(ctx, tx, rental); err != nil {
		return err
	}
	deposit := PaymentRecord{
		BookingID:        snap.ID,
		PaymentType:      paymentTypeDeposit,
		AmountCents:      snap.DepositCents,
		ProviderIntentID: intent.ID,
	}
	return uc.paymentRepo.CreatePending(ctx, tx, deposit)
}

// recomputeRenterTrust re-derives the renter's tier from their completed
// rental count. Running inside the completion transaction keeps the count
// and the tier consistent with the booking row.
func (uc *bookingUseCaseImpl) recomputeRenterTrust(ctx context.Context, tx db.DBTX, renterID uuid.UUID) error {
	completed, err := uc.bookingRepo.CountCompletedByRenter(ctx, tx, renterID)
	if err != nil {
		return err
	}

	renter, err := uc.userRepo.FindRenterSnapshot(ctx, tx, renterID)
	if err != nil {
		return err
	}

	tier := trust.TierFor(completed, renter.Verified)
	return uc.userRepo.UpdateTrust(ctx, tx, renterID, completed, tier)
}

func noticeFromView(v *queries.BookingView) BookingNotice {
	return BookingNotice{
		BookingID:   v.ID,
		GearName:    v.GearName,
		RenterEmail: v.RenterEmail,
		RenterName:  v.RenterName,
		OwnerEmail:  v.OwnerEmail,
		OwnerName:   v.OwnerName,
		StartDate:   v.StartDate,
		EndDate:     v.EndDate,
		TotalCents:  v.TotalCostCents,
		Status:      v.Status,
	}
}
