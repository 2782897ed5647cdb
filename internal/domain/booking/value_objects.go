package booking

import (
	"fmt"
	"time"
)

// DateRange is a pair of calendar dates with end strictly after start.
// Dates are normalized to UTC midnight; no time-of-day component exists.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if !end.After(start) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

// ParseDateRange parses two ISO-8601 calendar dates.
func ParseDateRange(startStr, endStr string) (DateRange, error) {
	start, err := time.ParseInLocation(time.DateOnly, startStr, time.UTC)
	if err != nil {
		return DateRange{}, ErrInvalidDateRange
	}
	end, err := time.ParseInLocation(time.DateOnly, endStr, time.UTC)
	if err != nil {
		return DateRange{}, ErrInvalidDateRange
	}
	return NewDateRange(start, end)
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Days is the rental length: end minus start in whole days. Always >= 1 for
// a valid range.
func (r DateRange) Days() int {
	return int(r.end.Sub(r.start) / (24 * time.Hour))
}

// ValidateNotInPast rejects ranges that start before the given day. Distinct
// from the ordering check so callers can report the two failures separately.
func (r DateRange) ValidateNotInPast(today time.Time) error {
	if r.start.Before(truncateToDate(today)) {
		return ErrStartDateInPast
	}
	return nil
}

// Overlaps uses the marketplace's inclusive-bounds rule: two ranges conflict
// when existing.start <= new.end AND existing.end >= new.start. A booking
// that ends the day another starts still conflicts (turnaround day).
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

// EachDay enumerates every calendar day the range covers, inclusive of the
// end date, matching the blocked-dates projection.
func (r DateRange) EachDay() []time.Time {
	var days []time.Time
	for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Money is an amount in cents. Two-place precision is exact by
// construction.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MultiplyDays(days int) Money {
	return Money{cents: m.cents * int64(days)}
}

// Percent takes an integer percentage of the amount, rounding half up to
// the nearest cent.
func (m Money) Percent(pct int) Money {
	return Money{cents: (m.cents*int64(pct) + 50) / 100}
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) String() string {
	return fmt.Sprintf("$%d.%02d", m.cents/100, m.cents%100)
}
