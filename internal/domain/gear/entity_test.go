//go:build unit

package gear_test

import (
	"testing"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/gear"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("recognized categories", func(t *testing.T) {
		for _, s := range []string{"bikes", "water", "camping", "power", "gear"} {
			c, err := gear.NewCategory(s)
			require.NoError(t, err)
			assert.Equal(t, s, c.String())
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := gear.NewCategory("vehicles")
		assert.ErrorIs(t, err, gear.ErrInvalidCategory)
	})
}

func TestNewGear(t *testing.T) {
	ownerID := uuid.New()
	valid := func() (*gear.Gear, error) {
		return gear.NewGear(ownerID, "Trail Bike", "Full suspension, size M", gear.CategoryBikes,
			booking.NewMoney(45_00), "Boulder, CO")
	}

	t.Run("new listing starts available and unrated", func(t *testing.T) {
		g, err := valid()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, g.ID())
		assert.Equal(t, ownerID, g.OwnerID())
		assert.Equal(t, "Trail Bike", g.Name())
		assert.True(t, g.IsAvailable())
		assert.Zero(t, g.AverageRating())
	})

	t.Run("trims name and location", func(t *testing.T) {
		g, err := gear.NewGear(ownerID, "  Kayak  ", "Two seater", gear.CategoryWater,
			booking.NewMoney(30_00), "  Moab, UT  ")
		require.NoError(t, err)
		assert.Equal(t, "Kayak", g.Name())
		assert.Equal(t, "Moab, UT", g.Location())
	})

	t.Run("validation failures", func(t *testing.T) {
		_, err := gear.NewGear(ownerID, "   ", "desc", gear.CategoryBikes, booking.NewMoney(45_00), "")
		assert.ErrorIs(t, err, gear.ErrEmptyName)

		_, err = gear.NewGear(ownerID, "Bike", "  ", gear.CategoryBikes, booking.NewMoney(45_00), "")
		assert.ErrorIs(t, err, gear.ErrEmptyDescription)

		_, err = gear.NewGear(ownerID, "Bike", "desc", gear.CategoryBikes, booking.NewMoney(0), "")
		assert.ErrorIs(t, err, gear.ErrInvalidPrice)
	})
}
