//go:build unit

package booking_test

import (
	"testing"

	"gearshare/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceCalculatorPrice(t *testing.T) {
	calc := booking.NewPriceCalculator(12)

	t.Run("three day rental at $80 per day", func(t *testing.T) {
		dates := mustRange(t, "2026-09-10", "2026-09-13")

		quote := calc.Price(booking.NewMoney(80_00), dates)

		assert.Equal(t, 3, quote.TotalDays)
		assert.Equal(t, int64(80_00), quote.DailyRate.Cents())
		assert.Equal(t, int64(240_00), quote.TotalCost.Cents())
		assert.Equal(t, int64(120_00), quote.Deposit.Cents())
	})

	t.Run("single day rental", func(t *testing.T) {
		dates := mustRange(t, "2026-09-10", "2026-09-11")

		quote := calc.Price(booking.NewMoney(45_00), dates)

		assert.Equal(t, 1, quote.TotalDays)
		assert.Equal(t, int64(45_00), quote.TotalCost.Cents())
		assert.Equal(t, int64(22_50), quote.Deposit.Cents())
	})

	t.Run("odd cent total rounds deposit half up", func(t *testing.T) {
		dates := mustRange(t, "2026-09-10", "2026-09-11")

		quote := calc.Price(booking.NewMoney(33_33), dates)

		require.Equal(t, int64(33_33), quote.TotalCost.Cents())
		assert.Equal(t, int64(16_67), quote.Deposit.Cents())
	})
}

func TestPriceCalculatorSplit(t *testing.T) {
	calc := booking.NewPriceCalculator(12)
	total := booking.NewMoney(240_00)

	fee := calc.PlatformFee(total)
	payout := calc.OwnerPayout(total)

	assert.Equal(t, int64(28_80), fee.Cents())
	assert.Equal(t, int64(211_20), payout.Cents())
	// The split never creates or loses a cent.
	assert.Equal(t, total.Cents(), fee.Cents()+payout.Cents())
}

func TestPriceCalculatorPolicy(t *testing.T) {
	calc := booking.NewPriceCalculator(12)

	assert.Equal(t, booking.DefaultDepositPercent, calc.DepositPercent())
	assert.Equal(t, 12, calc.CommissionPercent())
}
