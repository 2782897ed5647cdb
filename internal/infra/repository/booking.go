package repository

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBookingSQL = `
INSERT INTO bookings (
    id, gear_id, renter_id, start_date, end_date,
    total_days, daily_rate_cents, total_cost_cents, deposit_cents,
    deposit_percent, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const findBookingByIDSQL = `
SELECT id, gear_id, renter_id, start_date, end_date,
       total_days, daily_rate_cents, total_cost_cents, deposit_cents, status
FROM bookings
WHERE id = $1`

// Inclusive bounds on both sides: a booking ending on the requested start
// day still conflicts. Only statuses that block the calendar count.
const bookingConflictSQL = `
SELECT EXISTS (
    SELECT 1
    FROM bookings
    WHERE gear_id = $1
      AND status IN ('pending', 'confirmed', 'active')
      AND start_date <= $3
      AND end_date >= $2
)`

const updateBookingStatusSQL = `
UPDATE bookings
SET status = $3, updated_at = now()
WHERE id = $1 AND status = $2`

const countCompletedByRenterSQL = `
SELECT count(*)
FROM bookings
WHERE renter_id = $1 AND status = 'completed'`

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	quote := b.Quote()
	_, err := tx.Exec(ctx, createBookingSQL,
		b.ID(),
		b.GearID(),
		b.RenterID(),
		pgconv.DateToPgtype(b.Dates().Start()),
		pgconv.DateToPgtype(b.Dates().End()),
		int32(quote.TotalDays),
		quote.DailyRate.Cents(),
		quote.TotalCost.Cents(),
		quote.Deposit.Cents(),
		int32(b.DepositPercent()),
		b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.BookingSnapshot, error) {
	var (
		snap       commands.BookingSnapshot
		start, end pgtype.Date
		totalDays  int32
		status     string
	)
	err := dbtx.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&snap.ID,
		&snap.GearID,
		&snap.RenterID,
		&start,
		&end,
		&totalDays,
		&snap.DailyRateCents,
		&snap.TotalCostCents,
		&snap.DepositCents,
		&status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	dates, err := booking.NewDateRange(pgconv.DateFromPgtype(start), pgconv.DateFromPgtype(end))
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid dates", err)
	}
	snap.Dates = dates
	snap.TotalDays = int(totalDays)
	snap.Status = booking.Status(status)
	return &snap, nil
}

func (r *BookingRepository) HasConflict(ctx context.Context, dbtx db.DBTX, gearID uuid.UUID, dates booking.DateRange) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx, bookingConflictSQL,
		gearID,
		pgconv.DateToPgtype(dates.Start()),
		pgconv.DateToPgtype(dates.End()),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking conflict", err)
	}
	return exists, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to booking.Status) error {
	tag, err := tx.Exec(ctx, updateBookingStatusSQL, id, from.String(), to.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *BookingRepository) CountCompletedByRenter(ctx context.Context, tx db.DBTX, renterID uuid.UUID) (int, error) {
	var count int64
	if err := tx.QueryRow(ctx, countCompletedByRenterSQL, renterID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count completed rentals", err)
	}
	return int(count), nil
}
