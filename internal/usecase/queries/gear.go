package queries

import (
	"context"

	"gearshare/internal/domain/gear"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type GearReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*GearView, error)
	FindAvailable(ctx context.Context, category *gear.Category) ([]*GearView, error)
}

type GearQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*GearView, error)
	// ListAvailable returns available listings, optionally filtered by
	// category.
	ListAvailable(ctx context.Context, category *gear.Category) ([]*GearView, error)
}

type gearQueriesImpl struct {
	store GearReadStore
}

func NewGearQueries(store GearReadStore) GearQueries {
	return &gearQueriesImpl{store: store}
}

func (q *gearQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GearView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrGearNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *gearQueriesImpl) ListAvailable(ctx context.Context, category *gear.Category) ([]*GearView, error) {
	views, err := q.store.FindAvailable(ctx, category)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
