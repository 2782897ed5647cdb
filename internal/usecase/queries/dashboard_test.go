//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"gearshare/internal/domain/booking"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDashboardQueries(t *testing.T) (*queriesmock.MockDashboardReadStore, queries.DashboardQueries) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockDashboardReadStore(ctrl)
	return store, queries.NewDashboardQueries(store, booking.NewPriceCalculator(12))
}

func TestOwnerDashboardAggregatesListings(t *testing.T) {
	store, q := newDashboardQueries(t)
	ownerID := uuid.New()
	bikeID := uuid.New()
	canoeID := uuid.New()

	store.EXPECT().FindGearStatsByOwner(gomock.Any(), ownerID).Return([]*queries.GearStatsRow{
		{
			GearID:          bikeID,
			GearName:        "Trail Bike",
			DailyPriceCents: 45_00,
			AverageRating:   4.5,
			TotalBookings:   5,
			Completed:       3,
			Active:          1,
			CompletedCents:  100_00,
			PendingCents:    50_00,
			ReviewCount:     3,
		},
		{
			GearID:          canoeID,
			GearName:        "Canoe",
			DailyPriceCents: 60_00,
			TotalBookings:   1,
			PendingCents:    25_00,
		},
	}, nil)

	view, err := q.OwnerDashboard(context.Background(), ownerID)

	require.NoError(t, err)
	assert.Equal(t, 2, view.TotalGear)
	assert.Equal(t, 6, view.TotalBookings)
	assert.Equal(t, 1, view.ActiveRentals)
	assert.Equal(t, 3, view.CompletedRentals)
	assert.Equal(t, 3, view.TotalReviews)
	// Earnings are the owner's 88% share of gross at 12% commission.
	assert.Equal(t, int64(88_00), view.TotalEarningsCents)
	assert.Equal(t, int64(44_00+22_00), view.PendingEarningsCents)
	// Unrated listings stay out of the average.
	assert.InDelta(t, 4.5, view.AverageRating, 0.001)

	require.Len(t, view.GearPerformance, 2)
	bike := view.GearPerformance[0]
	assert.Equal(t, bikeID, bike.GearID)
	assert.Equal(t, "Trail Bike", bike.GearName)
	assert.Equal(t, 5, bike.TotalBookings)
	assert.Equal(t, 3, bike.CompletedBookings)
	assert.Equal(t, int64(88_00), bike.EarningsCents)
	assert.Equal(t, int64(45_00), bike.DailyPriceCents)
	canoe := view.GearPerformance[1]
	assert.Equal(t, canoeID, canoe.GearID)
	assert.Equal(t, int64(0), canoe.EarningsCents)
}

func TestOwnerDashboardAveragesAcrossRatedListings(t *testing.T) {
	store, q := newDashboardQueries(t)
	ownerID := uuid.New()

	store.EXPECT().FindGearStatsByOwner(gomock.Any(), ownerID).Return([]*queries.GearStatsRow{
		{GearID: uuid.New(), GearName: "Tent", AverageRating: 4.0, ReviewCount: 2},
		{GearID: uuid.New(), GearName: "Stove", AverageRating: 5.0, ReviewCount: 1},
		{GearID: uuid.New(), GearName: "Headlamp"},
	}, nil)

	view, err := q.OwnerDashboard(context.Background(), ownerID)

	require.NoError(t, err)
	assert.InDelta(t, 4.5, view.AverageRating, 0.001)
	assert.Equal(t, 3, view.TotalReviews)
}

func TestOwnerDashboardNoListings(t *testing.T) {
	store, q := newDashboardQueries(t)
	ownerID := uuid.New()

	store.EXPECT().FindGearStatsByOwner(gomock.Any(), ownerID).Return(nil, nil)

	view, err := q.OwnerDashboard(context.Background(), ownerID)

	require.NoError(t, err)
	assert.Equal(t, 0, view.TotalGear)
	assert.Equal(t, int64(0), view.TotalEarningsCents)
	assert.Zero(t, view.AverageRating)
	assert.NotNil(t, view.GearPerformance)
	assert.Empty(t, view.GearPerformance)
}

func TestOwnerDashboardStoreFailure(t *testing.T) {
	store, q := newDashboardQueries(t)
	ownerID := uuid.New()

	store.EXPECT().FindGearStatsByOwner(gomock.Any(), ownerID).
		Return(nil, errors.New("connection reset"))

	_, err := q.OwnerDashboard(context.Background(), ownerID)

	require.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
}
