package booking

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrStartDateInPast  = errors.New("start date cannot be in the past")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrInvalidRate      = errors.New("daily rate must be positive")
)

// Booking is a renter's hold on a piece of gear for a date range. The daily
// rate is a snapshot of the gear's price at booking time and never changes
// afterwards; gear and renter are referenced by id only so their current
// rows are always read fresh.
type Booking struct {
	id             uuid.UUID
	gearID         uuid.UUID
	renterID       uuid.UUID
	dates          DateRange
	quote          Quote
	depositPercent int
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBooking creates a pending booking with its priced quote. Trust,
// availability and conflict checks happen in the usecase layer before this
// is persisted.
func NewBooking(gearID, renterID uuid.UUID, dates DateRange, quote Quote) (*Booking, error) {
	if !quote.DailyRate.IsPositive() {
		return nil, ErrInvalidRate
	}
	return &Booking{
		id:             uuid.New(),
		gearID:         gearID,
		renterID:       renterID,
		dates:          dates,
		quote:          quote,
		depositPercent: DefaultDepositPercent,
		status:         StatusPending,
	}, nil
}

func ReconstructBooking(
	id, gearID, renterID uuid.UUID,
	dates DateRange,
	quote Quote,
	depositPercent int,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		gearID:         gearID,
		renterID:       renterID,
		dates:          dates,
		quote:          quote,
		depositPercent: depositPercent,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Transition validates the requested status change against the lifecycle
// table and applies it.
func (b *Booking) Transition(to Status, role ActorRole) error {
	if !CanTransition(b.status, to, role) {
		return &InvalidTransitionError{From: b.status, To: to, Role: role}
	}
	b.status = to
	return nil
}

func (b *Booking) IsBlocking() bool {
	return b.status.Blocks()
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) GearID() uuid.UUID    { return b.gearID }
func (b *Booking) RenterID() uuid.UUID  { return b.renterID }
func (b *Booking) Dates() DateRange     { return b.dates }
func (b *Booking) Quote() Quote         { return b.quote }
func (b *Booking) DepositPercent() int  { return b.depositPercent }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// BlockedDates flattens a set of blocking ranges into the inclusive set of
// calendar days they cover, sorted and de-duplicated. This is a derived
// projection for calendar UIs, not a second source of truth.
func BlockedDates(ranges []DateRange) []time.Time {
	seen := make(map[time.Time]struct{})
	var days []time.Time
	for _, r := range ranges {
		for _, d := range r.EachDay() {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
