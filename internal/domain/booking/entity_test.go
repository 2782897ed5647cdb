//go:build unit

package booking_test

import (
	"testing"

	"gearshare/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T) *booking.Booking {
	t.Helper()
	dates := mustRange(t, "2026-09-10", "2026-09-13")
	calc := booking.NewPriceCalculator(12)
	quote := calc.Price(booking.NewMoney(80_00), dates)
	b, err := booking.NewBooking(uuid.New(), uuid.New(), dates, quote)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("starts pending with the quoted price", func(t *testing.T) {
		b := newTestBooking(t)

		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, booking.DefaultDepositPercent, b.DepositPercent())
		assert.Equal(t, int64(240_00), b.Quote().TotalCost.Cents())
		assert.Equal(t, int64(120_00), b.Quote().Deposit.Cents())
		assert.True(t, b.IsBlocking())
		assert.NotEqual(t, uuid.Nil, b.ID())
	})

	t.Run("rejects a non-positive daily rate", func(t *testing.T) {
		dates := mustRange(t, "2026-09-10", "2026-09-13")
		quote := booking.Quote{TotalDays: 3, DailyRate: booking.NewMoney(0)}

		_, err := booking.NewBooking(uuid.New(), uuid.New(), dates, quote)
		assert.ErrorIs(t, err, booking.ErrInvalidRate)
	})
}

func TestBookingTransition(t *testing.T) {
	t.Run("owner confirms a pending booking", func(t *testing.T) {
		b := newTestBooking(t)

		err := b.Transition(booking.StatusConfirmed, booking.RoleOwner)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("renter cannot confirm", func(t *testing.T) {
		b := newTestBooking(t)

		err := b.Transition(booking.StatusConfirmed, booking.RoleRenter)

		var invalid *booking.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, booking.StatusPending, invalid.From)
		assert.Equal(t, booking.StatusConfirmed, invalid.To)
		assert.Equal(t, booking.RoleRenter, invalid.Role)
		assert.Equal(t, booking.StatusPending, b.Status(), "status must not change on a rejected transition")
	})

	t.Run("full lifecycle to completion", func(t *testing.T) {
		b := newTestBooking(t)

		require.NoError(t, b.Transition(booking.StatusConfirmed, booking.RoleOwner))
		require.NoError(t, b.Transition(booking.StatusActive, booking.RoleOwner))
		require.NoError(t, b.Transition(booking.StatusCompleted, booking.RoleOwner))

		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.False(t, b.IsBlocking())

		err := b.Transition(booking.StatusActive, booking.RoleOwner)
		assert.Error(t, err, "completed is terminal")
	})
}

func TestBlockedDates(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, booking.BlockedDates(nil))
	})

	t.Run("merges overlapping ranges without duplicates", func(t *testing.T) {
		ranges := []booking.DateRange{
			mustRange(t, "2026-09-12", "2026-09-14"),
			mustRange(t, "2026-09-10", "2026-09-12"),
		}

		days := booking.BlockedDates(ranges)

		require.Len(t, days, 5)
		assert.Equal(t, date("2026-09-10"), days[0])
		assert.Equal(t, date("2026-09-14"), days[4])
		for i := 1; i < len(days); i++ {
			assert.True(t, days[i-1].Before(days[i]), "days must be sorted ascending")
		}
	})

	t.Run("disjoint ranges keep their gap", func(t *testing.T) {
		ranges := []booking.DateRange{
			mustRange(t, "2026-09-10", "2026-09-11"),
			mustRange(t, "2026-09-20", "2026-09-21"),
		}

		days := booking.BlockedDates(ranges)

		require.Len(t, days, 4)
		assert.NotContains(t, days, date("2026-09-15"))
	})
}
