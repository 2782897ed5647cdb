package queries

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByRenterID(ctx context.Context, renterID uuid.UUID) ([]*BookingListItem, error)
	FindByGearID(ctx context.Context, gearID uuid.UUID) ([]*BookingListItem, error)
	// FindBlockingRanges returns the date ranges of pending, confirmed and
	// active bookings for the gear.
	FindBlockingRanges(ctx context.Context, gearID uuid.UUID) ([]booking.DateRange, error)
	HasBlockingConflict(ctx context.Context, gearID uuid.UUID, dates booking.DateRange) (bool, error)
}

type GearOwnership interface {
	OwnerOf(ctx context.Context, gearID uuid.UUID) (uuid.UUID, error)
}

type AvailabilityResult struct {
	GearID      uuid.UUID `json:"gear_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	IsAvailable bool      `json:"is_available"`
}

type BookingQueries interface {
	// GetByID is restricted to the booking's renter and the gear owner.
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem bypasses the party check for internal read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*BookingListItem, error)
	// ListByGear is restricted to the gear owner.
	ListByGear(ctx context.Context, actorID, gearID uuid.UUID) ([]*BookingListItem, error)
	// CheckAvailability applies the inclusive-bounds overlap rule against
	// blocking bookings only.
	CheckAvailability(ctx context.Context, gearID uuid.UUID, dates booking.DateRange) (*AvailabilityResult, error)
	// BlockedDates enumerates every calendar day covered by a blocking
	// booking, end date included.
	BlockedDates(ctx context.Context, gearID uuid.UUID) ([]time.Time, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	gear  GearOwnership
}

func NewBookingQueries(store BookingReadStore, gear GearOwnership) BookingQueries {
	return &bookingQueriesImpl{store: store, gear: gear}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.RenterID != actorID && view.OwnerID != actorID {
		return nil, errs.ErrUnauthorized
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.store.FindByRenterID(ctx, renterID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListByGear(ctx context.Context, actorID, gearID uuid.UUID) ([]*BookingListItem, error) {
	ownerID, err := q.gear.OwnerOf(ctx, gearID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrGearNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if ownerID != actorID {
		return nil, errs.ErrUnauthorized
	}

	items, err := q.store.FindByGearID(ctx, gearID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) CheckAvailability(ctx context.Context, gearID uuid.UUID, dates booking.DateRange) (*AvailabilityResult, error) {
	conflict, err := q.store.HasBlockingConflict(ctx, gearID, dates)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &AvailabilityResult{
		GearID:      gearID,
		StartDate:   dates.Start(),
		EndDate:     dates.End(),
		IsAvailable: !conflict,
	}, nil
}

func (q *bookingQueriesImpl) BlockedDates(ctx context.Context, gearID uuid.UUID) ([]time.Time, error) {
	ranges, err := q.store.FindBlockingRanges(ctx, gearID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return booking.BlockedDates(ranges), nil
}
