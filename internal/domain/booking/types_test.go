//go:build unit

package booking_test

import (
	"testing"

	"gearshare/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestNewStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "active", "completed", "cancelled"} {
		st, err := booking.NewStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, s, st.String())
	}

	_, err := booking.NewStatus("returned")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestStatusProperties(t *testing.T) {
	assert.False(t, booking.StatusPending.IsTerminal())
	assert.False(t, booking.StatusConfirmed.IsTerminal())
	assert.False(t, booking.StatusActive.IsTerminal())
	assert.True(t, booking.StatusCompleted.IsTerminal())
	assert.True(t, booking.StatusCancelled.IsTerminal())

	assert.True(t, booking.StatusPending.Blocks())
	assert.True(t, booking.StatusConfirmed.Blocks())
	assert.True(t, booking.StatusActive.Blocks())
	assert.False(t, booking.StatusCompleted.Blocks())
	assert.False(t, booking.StatusCancelled.Blocks())

	assert.Equal(t,
		[]booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusActive},
		booking.BlockingStatuses())
}

func TestCanTransition(t *testing.T) {
	type key struct {
		from booking.Status
		to   booking.Status
		role booking.ActorRole
	}

	allowed := map[key]bool{
		{booking.StatusPending, booking.StatusConfirmed, booking.RoleOwner}:    true,
		{booking.StatusPending, booking.StatusCancelled, booking.RoleRenter}:   true,
		{booking.StatusConfirmed, booking.StatusCancelled, booking.RoleRenter}: true,
		{booking.StatusConfirmed, booking.StatusActive, booking.RoleOwner}:     true,
		{booking.StatusActive, booking.StatusCompleted, booking.RoleOwner}:     true,
	}

	statuses := []booking.Status{
		booking.StatusPending, booking.StatusConfirmed, booking.StatusActive,
		booking.StatusCompleted, booking.StatusCancelled,
	}
	roles := []booking.ActorRole{booking.RoleRenter, booking.RoleOwner}

	// Every combination outside the five allowed edges must be rejected,
	// including self transitions and anything out of a terminal state.
	for _, from := range statuses {
		for _, to := range statuses {
			for _, role := range roles {
				want := allowed[key{from, to, role}]
				got := booking.CanTransition(from, to, role)
				assert.Equal(t, want, got, "%s -> %s as %s", from, to, role)
			}
		}
	}
}

func TestInvalidTransitionError(t *testing.T) {
	err := &booking.InvalidTransitionError{
		From: booking.StatusPending,
		To:   booking.StatusActive,
		Role: booking.RoleRenter,
	}
	assert.Equal(t, "invalid transition from pending to active for renter", err.Error())
}
