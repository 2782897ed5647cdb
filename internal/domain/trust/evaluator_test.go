//go:build unit

package trust_test

import (
	"strings"
	"testing"

	"gearshare/internal/domain/trust"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	cases := []struct {
		name      string
		completed int
		verified  bool
		want      trust.Tier
	}{
		{name: "zero rentals starts new", completed: 0, want: trust.TierNew},
		{name: "first rental reaches bronze", completed: 1, want: trust.TierBronze},
		{name: "three rentals still bronze", completed: 3, want: trust.TierBronze},
		{name: "four rentals reaches silver", completed: 4, want: trust.TierSilver},
		{name: "ten rentals still silver", completed: 10, want: trust.TierSilver},
		{name: "eleven rentals reaches gold", completed: 11, want: trust.TierGold},
		{name: "verified overrides zero rentals", completed: 0, verified: true, want: trust.TierGold},
		{name: "verified overrides mid tier", completed: 5, verified: true, want: trust.TierGold},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, trust.TierFor(tc.completed, tc.verified))
		})
	}
}

func TestTierForMonotonic(t *testing.T) {
	// More completed rentals never lowers the tier.
	prev := trust.TierFor(0, false)
	order := map[trust.Tier]int{
		trust.TierNew:    0,
		trust.TierBronze: 1,
		trust.TierSilver: 2,
		trust.TierGold:   3,
	}
	for completed := 1; completed <= 20; completed++ {
		current := trust.TierFor(completed, false)
		require.GreaterOrEqual(t, order[current], order[prev],
			"tier regressed at %d completed rentals", completed)
		prev = current
	}
}

func TestCanAfford(t *testing.T) {
	t.Run("new tier capped at $100 per day", func(t *testing.T) {
		ok, _ := trust.CanAfford(trust.TierNew, false, 100_00)
		assert.True(t, ok)

		ok, reason := trust.CanAfford(trust.TierNew, false, 100_01)
		assert.False(t, ok)
		assert.Contains(t, reason, "$100")
	})

	t.Run("bronze tier capped at $200 per day", func(t *testing.T) {
		ok, _ := trust.CanAfford(trust.TierBronze, false, 200_00)
		assert.True(t, ok)

		ok, _ = trust.CanAfford(trust.TierBronze, false, 200_01)
		assert.False(t, ok)
	})

	t.Run("silver tier capped at $500 per day", func(t *testing.T) {
		ok, _ := trust.CanAfford(trust.TierSilver, false, 500_00)
		assert.True(t, ok)

		ok, _ = trust.CanAfford(trust.TierSilver, false, 500_01)
		assert.False(t, ok)
	})

	t.Run("gold tier has no cap", func(t *testing.T) {
		ok, reason := trust.CanAfford(trust.TierGold, false, 10_000_00)
		assert.True(t, ok)
		assert.Empty(t, reason)
	})

	t.Run("verified renter bypasses any cap", func(t *testing.T) {
		ok, _ := trust.CanAfford(trust.TierNew, true, 10_000_00)
		assert.True(t, ok)
	})

	t.Run("rejection reason names the tier", func(t *testing.T) {
		_, reason := trust.CanAfford(trust.TierNew, false, 150_00)
		assert.True(t, strings.Contains(strings.ToLower(reason), "new"), reason)
	})
}

func TestNextLevelFor(t *testing.T) {
	t.Run("new needs one rental for bronze", func(t *testing.T) {
		next := trust.NextLevelFor(trust.TierNew, 0)
		require.NotNil(t, next)
		assert.Equal(t, trust.TierBronze, next.Tier)
		assert.Equal(t, 1, next.RentalsNeeded)
	})

	t.Run("bronze counts down to silver", func(t *testing.T) {
		next := trust.NextLevelFor(trust.TierBronze, 2)
		require.NotNil(t, next)
		assert.Equal(t, trust.TierSilver, next.Tier)
		assert.Equal(t, 2, next.RentalsNeeded)
	})

	t.Run("silver counts down to gold", func(t *testing.T) {
		next := trust.NextLevelFor(trust.TierSilver, 10)
		require.NotNil(t, next)
		assert.Equal(t, trust.TierGold, next.Tier)
		assert.Equal(t, 1, next.RentalsNeeded)
	})

	t.Run("gold has no next level", func(t *testing.T) {
		assert.Nil(t, trust.NextLevelFor(trust.TierGold, 30))
	})
}
