package queries

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

// GearStatsRow is one listing's raw booking aggregates. Earnings here are
// gross rental cost; the owner's share is applied above the store.
type GearStatsRow struct {
	GearID          uuid.UUID
	GearName        string
	DailyPriceCents int64
	AverageRating   float64
	TotalBookings   int
	Completed       int
	Active          int
	CompletedCents  int64
	PendingCents    int64
	ReviewCount     int
}

type DashboardReadStore interface {
	FindGearStatsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*GearStatsRow, error)
}

type DashboardQueries interface {
	// OwnerDashboard aggregates the user's listings. A user with no
	// listings gets all zeroes, not an error.
	OwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*OwnerDashboardView, error)
}

type dashboardQueriesImpl struct {
	store      DashboardReadStore
	calculator *booking.PriceCalculator
}

func NewDashboardQueries(store DashboardReadStore, calculator *booking.PriceCalculator) DashboardQueries {
	return &dashboardQueriesImpl{store: store, calculator: calculator}
}

func (q *dashboardQueriesImpl) OwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*OwnerDashboardView, error) {
	rows, err := q.store.FindGearStatsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view := &OwnerDashboardView{
		TotalGear:       len(rows),
		GearPerformance: make([]*GearPerformanceView, 0, len(rows)),
	}

	var ratingSum float64
	var ratedGear int
	for _, row := range rows {
		earned := q.ownerShare(row.CompletedCents)
		view.TotalBookings += row.TotalBookings
		view.ActiveRentals += row.Active
		view.CompletedRentals += row.Completed
		view.TotalEarningsCents += earned
		view.PendingEarningsCents += q.ownerShare(row.PendingCents)
		view.TotalReviews += row.ReviewCount
		if row.AverageRating > 0 {
			ratingSum += row.AverageRating
			ratedGear++
		}

		view.GearPerformance = append(view.GearPerformance, &GearPerformanceView{
			GearID:            row.GearID,
			GearName:          row.GearName,
			TotalBookings:     row.TotalBookings,
			CompletedBookings: row.Completed,
			EarningsCents:     earned,
			AverageRating:     row.AverageRating,
			DailyPriceCents:   row.DailyPriceCents,
		})
	}
	if ratedGear > 0 {
		view.AverageRating = ratingSum / float64(ratedGear)
	}
	return view, nil
}

func (q *dashboardQueriesImpl) ownerShare(grossCents int64) int64 {
	return q.calculator.OwnerPayout(booking.NewMoney(grossCents)).Cents()
}
