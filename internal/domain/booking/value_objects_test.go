//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gearshare/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, start, end string) booking.DateRange {
	t.Helper()
	r, err := booking.NewDateRange(date(start), date(end))
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := booking.NewDateRange(date("2026-09-10"), date("2026-09-13"))
		require.NoError(t, err)
		assert.Equal(t, date("2026-09-10"), r.Start())
		assert.Equal(t, date("2026-09-13"), r.End())
	})

	t.Run("end equal to start is rejected", func(t *testing.T) {
		_, err := booking.NewDateRange(date("2026-09-10"), date("2026-09-10"))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := booking.NewDateRange(date("2026-09-13"), date("2026-09-10"))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("time-of-day is dropped", func(t *testing.T) {
		start := time.Date(2026, 9, 10, 15, 30, 0, 0, time.UTC)
		end := time.Date(2026, 9, 13, 2, 0, 0, 0, time.UTC)
		r, err := booking.NewDateRange(start, end)
		require.NoError(t, err)
		assert.Equal(t, date("2026-09-10"), r.Start())
		assert.Equal(t, 3, r.Days())
	})
}

func TestParseDateRange(t *testing.T) {
	t.Run("parses ISO dates", func(t *testing.T) {
		r, err := booking.ParseDateRange("2026-09-10", "2026-09-13")
		require.NoError(t, err)
		assert.Equal(t, 3, r.Days())
	})

	t.Run("malformed start", func(t *testing.T) {
		_, err := booking.ParseDateRange("10/09/2026", "2026-09-13")
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("malformed end", func(t *testing.T) {
		_, err := booking.ParseDateRange("2026-09-10", "next tuesday")
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})
}

func TestDateRangeDays(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "single night", start: "2026-09-10", end: "2026-09-11", want: 1},
		{name: "three days", start: "2026-09-10", end: "2026-09-13", want: 3},
		{name: "across month boundary", start: "2026-09-28", end: "2026-10-02", want: 4},
		{name: "across year boundary", start: "2026-12-30", end: "2027-01-02", want: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mustRange(t, tc.start, tc.end).Days())
		})
	}
}

func TestDateRangeValidateNotInPast(t *testing.T) {
	today := date("2026-09-10")

	t.Run("starting today is allowed", func(t *testing.T) {
		r := mustRange(t, "2026-09-10", "2026-09-12")
		assert.NoError(t, r.ValidateNotInPast(today))
	})

	t.Run("starting tomorrow is allowed", func(t *testing.T) {
		r := mustRange(t, "2026-09-11", "2026-09-12")
		assert.NoError(t, r.ValidateNotInPast(today))
	})

	t.Run("starting yesterday is rejected", func(t *testing.T) {
		r := mustRange(t, "2026-09-09", "2026-09-12")
		assert.ErrorIs(t, r.ValidateNotInPast(today), booking.ErrStartDateInPast)
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	existing := mustRange(t, "2026-09-10", "2026-09-15")

	cases := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{name: "identical range", start: "2026-09-10", end: "2026-09-15", want: true},
		{name: "fully inside", start: "2026-09-11", end: "2026-09-14", want: true},
		{name: "fully containing", start: "2026-09-08", end: "2026-09-20", want: true},
		{name: "overlapping the start", start: "2026-09-08", end: "2026-09-10", want: true},
		{name: "overlapping the end", start: "2026-09-15", end: "2026-09-18", want: true},
		{name: "starts on the existing end date", start: "2026-09-15", end: "2026-09-17", want: true},
		{name: "ends on the existing start date", start: "2026-09-08", end: "2026-09-10", want: true},
		{name: "day after the existing end", start: "2026-09-16", end: "2026-09-18", want: false},
		{name: "day before the existing start", start: "2026-09-07", end: "2026-09-09", want: false},
		{name: "far in the future", start: "2026-11-01", end: "2026-11-05", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := mustRange(t, tc.start, tc.end)
			assert.Equal(t, tc.want, existing.Overlaps(other))
			// Symmetric by definition.
			assert.Equal(t, tc.want, other.Overlaps(existing))
		})
	}
}

func TestDateRangeEachDay(t *testing.T) {
	r := mustRange(t, "2026-09-10", "2026-09-13")

	days := r.EachDay()
	require.Len(t, days, 4)
	assert.Equal(t, date("2026-09-10"), days[0])
	assert.Equal(t, date("2026-09-11"), days[1])
	assert.Equal(t, date("2026-09-12"), days[2])
	assert.Equal(t, date("2026-09-13"), days[3])
}

func TestMoney(t *testing.T) {
	t.Run("arithmetic", func(t *testing.T) {
		m := booking.NewMoney(80_00)
		assert.Equal(t, int64(240_00), m.MultiplyDays(3).Cents())
		assert.Equal(t, int64(95_50), m.Add(booking.NewMoney(15_50)).Cents())
	})

	t.Run("percent rounds half up", func(t *testing.T) {
		assert.Equal(t, int64(50), booking.NewMoney(100).Percent(50).Cents())
		assert.Equal(t, int64(1), booking.NewMoney(1).Percent(50).Cents())
		assert.Equal(t, int64(12), booking.NewMoney(99).Percent(12).Cents())
		assert.Equal(t, int64(0), booking.NewMoney(0).Percent(50).Cents())
	})

	t.Run("is positive", func(t *testing.T) {
		assert.True(t, booking.NewMoney(1).IsPositive())
		assert.False(t, booking.NewMoney(0).IsPositive())
		assert.False(t, booking.NewMoney(-5).IsPositive())
	})

	t.Run("formats as dollars", func(t *testing.T) {
		assert.Equal(t, "$240.00", booking.NewMoney(240_00).String())
		assert.Equal(t, "$0.05", booking.NewMoney(5).String())
	})
}
