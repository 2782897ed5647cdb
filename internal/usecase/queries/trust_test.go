//go:build unit

package queries_test

import (
	"context"
	"testing"

	"gearshare/internal/domain/trust"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTrustQueries(t *testing.T) (*queriesmock.MockTrustReadStore, queries.TrustQueries) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockTrustReadStore(ctrl)
	return store, queries.NewTrustQueries(store)
}

func TestTrustSnapshotNewRenter(t *testing.T) {
	store, q := newTrustQueries(t)
	userID := uuid.New()

	store.EXPECT().FindTrustProfile(gomock.Any(), userID).Return(trust.TierNew, 0, false, nil)

	snap, err := q.Snapshot(context.Background(), userID)

	require.NoError(t, err)
	maxDaily := int64(100_00)
	nextTier := "bronze"
	remaining := 1
	expected := &queries.TrustSnapshot{
		Tier:               "new",
		TierLabel:          "New Renter",
		CompletedRentals:   0,
		MaxDailyPriceCents: &maxDaily,
		IsVerified:         false,
		NextTier:           &nextTier,
		RentalsToNextTier:  &remaining,
	}
	if diff := cmp.Diff(expected, snap); diff != "" {
		t.Errorf("TrustSnapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestTrustSnapshotBronzeProgress(t *testing.T) {
	store, q := newTrustQueries(t)
	userID := uuid.New()

	store.EXPECT().FindTrustProfile(gomock.Any(), userID).Return(trust.TierBronze, 2, false, nil)

	snap, err := q.Snapshot(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "bronze", snap.Tier)
	require.NotNil(t, snap.MaxDailyPriceCents)
	assert.Equal(t, int64(200_00), *snap.MaxDailyPriceCents)
	require.NotNil(t, snap.NextTier)
	assert.Equal(t, "silver", *snap.NextTier)
	assert.Equal(t, 2, *snap.RentalsToNextTier)
}

func TestTrustSnapshotGoldHasNoCapOrNextTier(t *testing.T) {
	store, q := newTrustQueries(t)
	userID := uuid.New()

	store.EXPECT().FindTrustProfile(gomock.Any(), userID).Return(trust.TierGold, 15, false, nil)

	snap, err := q.Snapshot(context.Background(), userID)

	require.NoError(t, err)
	assert.Nil(t, snap.MaxDailyPriceCents)
	assert.Nil(t, snap.NextTier)
	assert.Nil(t, snap.RentalsToNextTier)
}

func TestTrustSnapshotVerifiedRenter(t *testing.T) {
	store, q := newTrustQueries(t)
	userID := uuid.New()

	store.EXPECT().FindTrustProfile(gomock.Any(), userID).Return(trust.TierGold, 2, true, nil)

	snap, err := q.Snapshot(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, snap.IsVerified)
	assert.Nil(t, snap.MaxDailyPriceCents, "verification removes the price cap")
	assert.Nil(t, snap.NextTier)
}

func TestTrustSnapshotUnknownUser(t *testing.T) {
	store, q := newTrustQueries(t)
	userID := uuid.New()

	store.EXPECT().FindTrustProfile(gomock.Any(), userID).
		Return(trust.Tier(""), 0, false, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

	_, err := q.Snapshot(context.Background(), userID)

	require.ErrorIs(t, err, errs.ErrUserNotFound)
}
