package queries

import (
	"context"

	"gearshare/internal/domain/trust"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type TrustReadStore interface {
	// FindTrustProfile returns the renter's stored tier, completed-rental
	// count and verification flags.
	FindTrustProfile(ctx context.Context, userID uuid.UUID) (trust.Tier, int, bool, error)
}

type TrustQueries interface {
	Snapshot(ctx context.Context, userID uuid.UUID) (*TrustSnapshot, error)
}

type trustQueriesImpl struct {
	store TrustReadStore
}

func NewTrustQueries(store TrustReadStore) TrustQueries {
	return &trustQueriesImpl{store: store}
}

func (q *trustQueriesImpl) Snapshot(ctx context.Context, userID uuid.UUID) (*TrustSnapshot, error) {
	tier, completed, verified, err := q.store.FindTrustProfile(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	snap := &TrustSnapshot{
		Tier:             tier.String(),
		TierLabel:        tier.Label(),
		CompletedRentals: completed,
		IsVerified:       verified,
	}

	if limit, capped := tier.MaxDailyPriceCents(); capped && !verified {
		snap.MaxDailyPriceCents = &limit
	}

	if !verified {
		if next := trust.NextLevelFor(tier, completed); next != nil {
			nextTier := next.Tier.String()
			needed := next.RentalsNeeded
			snap.NextTier = &nextTier
			snap.RentalsToNextTier = &needed
		}
	}

	return snap, nil
}
