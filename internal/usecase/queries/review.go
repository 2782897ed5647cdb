package queries

import (
	"context"

	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	FindByGearID(ctx context.Context, gearID uuid.UUID) ([]*ReviewView, error)
}

type ReviewQueries interface {
	ListByGear(ctx context.Context, gearID uuid.UUID) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ListByGear(ctx context.Context, gearID uuid.UUID) ([]*ReviewView, error) {
	views, err := q.store.FindByGearID(ctx, gearID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
