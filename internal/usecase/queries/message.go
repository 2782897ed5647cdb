package queries

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type MessageReadStore interface {
	// FindForGear returns the listing's messages the user is a party to,
	// oldest first.
	FindForGear(ctx context.Context, gearID, userID uuid.UUID) ([]*MessageView, error)
	FindConversations(ctx context.Context, userID uuid.UUID) ([]*ConversationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}

type MessageQueries interface {
	ListForGear(ctx context.Context, gearID, userID uuid.UUID) ([]*MessageView, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*ConversationView, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
}

type messageQueriesImpl struct {
	store MessageReadStore
	gear  GearOwnership
}

func NewMessageQueries(store MessageReadStore, gear GearOwnership) MessageQueries {
	return &messageQueriesImpl{store: store, gear: gear}
}

func (q *messageQueriesImpl) ListForGear(ctx context.Context, gearID, userID uuid.UUID) ([]*MessageView, error) {
	// An empty thread on existing gear is a 200; unknown gear is a 404.
	if _, err := q.gear.OwnerOf(ctx, gearID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrGearNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views, err := q.store.FindForGear(ctx, gearID, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *messageQueriesImpl) ListConversations(ctx context.Context, userID uuid.UUID) ([]*ConversationView, error) {
	views, err := q.store.FindConversations(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *messageQueriesImpl) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := q.store.CountUnread(ctx, userID)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return count, nil
}
