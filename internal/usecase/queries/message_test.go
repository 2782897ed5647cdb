//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMessageQueries(t *testing.T) (*queriesmock.MockMessageReadStore, *queriesmock.MockGearOwnership, queries.MessageQueries) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockMessageReadStore(ctrl)
	gear := queriesmock.NewMockGearOwnership(ctrl)
	return store, gear, queries.NewMessageQueries(store, gear)
}

func TestListForGearReturnsThread(t *testing.T) {
	store, gear, q := newMessageQueries(t)
	gearID := uuid.New()
	userID := uuid.New()
	thread := []*queries.MessageView{
		{ID: uuid.New(), GearID: gearID, Body: "Is it waterproof?"},
		{ID: uuid.New(), GearID: gearID, Body: "Fully sealed seams."},
	}

	gear.EXPECT().OwnerOf(gomock.Any(), gearID).Return(uuid.New(), nil)
	store.EXPECT().FindForGear(gomock.Any(), gearID, userID).Return(thread, nil)

	views, err := q.ListForGear(context.Background(), gearID, userID)

	require.NoError(t, err)
	assert.Equal(t, thread, views)
}

func TestListForGearEmptyThreadOnExistingGear(t *testing.T) {
	store, gear, q := newMessageQueries(t)
	gearID := uuid.New()
	userID := uuid.New()

	gear.EXPECT().OwnerOf(gomock.Any(), gearID).Return(uuid.New(), nil)
	store.EXPECT().FindForGear(gomock.Any(), gearID, userID).Return([]*queries.MessageView{}, nil)

	views, err := q.ListForGear(context.Background(), gearID, userID)

	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestListForGearUnknownGear(t *testing.T) {
	_, gear, q := newMessageQueries(t)
	gearID := uuid.New()

	gear.EXPECT().OwnerOf(gomock.Any(), gearID).
		Return(uuid.Nil, infra.WrapRepoErr("gear not found", nil, infra.KindNotFound))

	_, err := q.ListForGear(context.Background(), gearID, uuid.New())

	require.ErrorIs(t, err, errs.ErrGearNotFound)
}

func TestListConversationsStoreFailure(t *testing.T) {
	store, _, q := newMessageQueries(t)
	userID := uuid.New()

	store.EXPECT().FindConversations(gomock.Any(), userID).Return(nil, errors.New("connection reset"))

	_, err := q.ListConversations(context.Background(), userID)

	require.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
}

func TestUnreadCount(t *testing.T) {
	store, _, q := newMessageQueries(t)
	userID := uuid.New()

	store.EXPECT().CountUnread(gomock.Any(), userID).Return(4, nil)

	count, err := q.UnreadCount(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
