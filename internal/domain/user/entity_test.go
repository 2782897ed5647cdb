//go:build unit

package user_test

import (
	"testing"
	"time"

	"gearshare/internal/domain/trust"
	"gearshare/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, accountType user.AccountType) *user.User {
	t.Helper()
	email, err := user.NewEmail("ann@example.com")
	require.NoError(t, err)
	name, err := user.NewName("Ann", "Bell")
	require.NoError(t, err)
	return user.NewUser(email, "$2a$10$hash", name, accountType)
}

func TestNewUser(t *testing.T) {
	u := newTestUser(t, user.AccountRenter)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "ann@example.com", u.Email().Value())
	assert.Equal(t, trust.TierNew, u.TrustTier())
	assert.Equal(t, 0, u.CompletedRentals())
	assert.False(t, u.IsVerified())
	assert.Nil(t, u.StripeAccountID())
	assert.False(t, u.PayoutsReady())
}

func TestRecordCompletedRental(t *testing.T) {
	cases := []struct {
		name      string
		completed int
		wantTier  trust.Tier
	}{
		{name: "first completion promotes to bronze", completed: 1, wantTier: trust.TierBronze},
		{name: "fourth completion promotes to silver", completed: 4, wantTier: trust.TierSilver},
		{name: "eleventh completion promotes to gold", completed: 11, wantTier: trust.TierGold},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := newTestUser(t, user.AccountRenter)

			u.RecordCompletedRental(tc.completed)

			assert.Equal(t, tc.completed, u.CompletedRentals())
			assert.Equal(t, tc.wantTier, u.TrustTier())
		})
	}
}

func TestIsVerified(t *testing.T) {
	reconstruct := func(identity, credit bool) *user.User {
		email, _ := user.NewEmail("ann@example.com")
		name, _ := user.NewName("Ann", "Bell")
		return user.ReconstructUser(
			uuid.New(), email, "hash", name, user.AccountRenter,
			trust.TierNew, 0, identity, credit, nil, false,
			time.Now(), time.Now(),
		)
	}

	t.Run("identity check alone verifies", func(t *testing.T) {
		u := reconstruct(true, false)
		assert.True(t, u.IsVerified())
	})

	t.Run("credit check alone verifies", func(t *testing.T) {
		u := reconstruct(false, true)
		assert.True(t, u.IsVerified())
	})

	t.Run("neither check means unverified", func(t *testing.T) {
		u := reconstruct(false, false)
		assert.False(t, u.IsVerified())
	})

	t.Run("verified user stays gold regardless of count", func(t *testing.T) {
		u := reconstruct(true, false)
		u.RecordCompletedRental(0)
		assert.Equal(t, trust.TierGold, u.TrustTier())
	})
}
