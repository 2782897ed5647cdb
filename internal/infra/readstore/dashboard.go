package readstore

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

// Per-listing booking aggregates, busiest earners first. Gross cents only;
// the query layer applies the owner's share.
const findGearStatsByOwnerSQL = `
SELECT g.id, g.name, g.daily_price_cents, g.average_rating,
       count(b.id) AS total_bookings,
       count(b.id) FILTER (WHERE b.status = 'completed') AS completed_bookings,
       count(b.id) FILTER (WHERE b.status = 'active') AS active_bookings,
       coalesce(sum(b.total_cost_cents) FILTER (WHERE b.status = 'completed'), 0) AS completed_cents,
       coalesce(sum(b.total_cost_cents) FILTER (WHERE b.status IN ('confirmed', 'active')), 0) AS pending_cents,
       (SELECT count(*) FROM reviews rv WHERE rv.gear_id = g.id) AS review_count
FROM gear g
LEFT JOIN bookings b ON b.gear_id = g.id
WHERE g.owner_id = $1
GROUP BY g.id
ORDER BY completed_cents DESC, g.created_at`

type DashboardReadStore struct {
	db db.DBTX
}

func NewDashboardReadStore(dbtx db.DBTX) *DashboardReadStore {
	return &DashboardReadStore{db: dbtx}
}

func (r *DashboardReadStore) FindGearStatsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.GearStatsRow, error) {
	rows, err := r.db.Query(ctx, findGearStatsByOwnerSQL, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load owner gear stats", err)
	}
	defer rows.Close()

	var stats []*queries.GearStatsRow
	for rows.Next() {
		var (
			row                              queries.GearStatsRow
			totalBookings, completed, active int64
			reviewCount                      int64
		)
		if err := rows.Scan(
			&row.GearID, &row.GearName, &row.DailyPriceCents, &row.AverageRating,
			&totalBookings, &completed, &active,
			&row.CompletedCents, &row.PendingCents, &reviewCount,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan gear stats row", err)
		}
		row.TotalBookings = int(totalBookings)
		row.Completed = int(completed)
		row.Active = int(active)
		row.ReviewCount = int(reviewCount)
		stats = append(stats, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate gear stats rows", err)
	}
	return stats, nil
}
