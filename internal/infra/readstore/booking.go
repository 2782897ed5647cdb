package readstore

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewSQL = `
SELECT b.id, b.gear_id, g.name AS gear_name,
       g.owner_id, o.email AS owner_email, o.first_name || ' ' || o.last_name AS owner_name,
       b.renter_id, u.email AS renter_email, u.first_name || ' ' || u.last_name AS renter_name,
       b.start_date, b.end_date, b.total_days,
       b.daily_rate_cents, b.total_cost_cents, b.deposit_cents, b.deposit_percent,
       b.status, b.created_at, b.updated_at
FROM bookings b
JOIN gear g ON g.id = b.gear_id
JOIN users o ON o.id = g.owner_id
JOIN users u ON u.id = b.renter_id`

const findBookingViewByIDSQL = bookingViewSQL + `
WHERE b.id = $1`

const bookingListItemSQL = `
SELECT b.id, b.gear_id, g.name AS gear_name,
       b.start_date, b.end_date, b.total_days, b.total_cost_cents,
       b.status, b.created_at
FROM bookings b
JOIN gear g ON g.id = b.gear_id`

const findBookingsByRenterSQL = bookingListItemSQL + `
WHERE b.renter_id = $1
ORDER BY b.created_at DESC`

const findBookingsByGearSQL = bookingListItemSQL + `
WHERE b.gear_id = $1
ORDER BY b.start_date`

const findBlockingRangesSQL = `
SELECT start_date, end_date
FROM bookings
WHERE gear_id = $1
  AND status IN ('pending', 'confirmed', 'active')
ORDER BY start_date`

const hasBlockingConflictSQL = `
SELECT EXISTS (
    SELECT 1
    FROM bookings
    WHERE gear_id = $1
      AND status IN ('pending', 'confirmed', 'active')
      AND start_date <= $3
      AND end_date >= $2
)`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view       queries.BookingView
		start, end pgtype.Date
		created    pgtype.Timestamptz
		updated    pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findBookingViewByIDSQL, id).Scan(
		&view.ID, &view.GearID, &view.GearName,
		&view.OwnerID, &view.OwnerEmail, &view.OwnerName,
		&view.RenterID, &view.RenterEmail, &view.RenterName,
		&start, &end, &view.TotalDays,
		&view.DailyRateCents, &view.TotalCostCents, &view.DepositCents, &view.DepositPercent,
		&view.Status, &created, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	view.StartDate = pgconv.DateFromPgtype(start)
	view.EndDate = pgconv.DateFromPgtype(end)
	view.CreatedAt = pgconv.TimeFromPgtype(created)
	view.UpdatedAt = pgconv.TimeFromPgtype(updated)
	return &view, nil
}

func (r *BookingReadStore) FindByRenterID(ctx context.Context, renterID uuid.UUID) ([]*queries.BookingListItem, error) {
	return r.listBookings(ctx, findBookingsByRenterSQL, renterID)
}

func (r *BookingReadStore) FindByGearID(ctx context.Context, gearID uuid.UUID) ([]*queries.BookingListItem, error) {
	return r.listBookings(ctx, findBookingsByGearSQL, gearID)
}

func (r *BookingReadStore) listBookings(ctx context.Context, sql string, id uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, sql, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item       queries.BookingListItem
			start, end pgtype.Date
			created    pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.GearID, &item.GearName,
			&start, &end, &item.TotalDays, &item.TotalCostCents,
			&item.Status, &created,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.StartDate = pgconv.DateFromPgtype(start)
		item.EndDate = pgconv.DateFromPgtype(end)
		item.CreatedAt = pgconv.TimeFromPgtype(created)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}

func (r *BookingReadStore) FindBlockingRanges(ctx context.Context, gearID uuid.UUID) ([]booking.DateRange, error) {
	rows, err := r.db.Query(ctx, findBlockingRangesSQL, gearID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find blocking ranges", err)
	}
	defer rows.Close()

	var ranges []booking.DateRange
	for rows.Next() {
		var start, end pgtype.Date
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocking range", err)
		}
		dates, err := booking.NewDateRange(pgconv.DateFromPgtype(start), pgconv.DateFromPgtype(end))
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking has invalid dates", err)
		}
		ranges = append(ranges, dates)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocking ranges", err)
	}
	return ranges, nil
}

func (r *BookingReadStore) HasBlockingConflict(ctx context.Context, gearID uuid.UUID, dates booking.DateRange) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, hasBlockingConflictSQL,
		gearID,
		pgconv.DateToPgtype(dates.Start()),
		pgconv.DateToPgtype(dates.End()),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check blocking conflict", err)
	}
	return exists, nil
}
