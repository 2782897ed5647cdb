//go:build unit

package builder

import (
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	GearID         uuid.UUID
	GearName       string
	OwnerID        uuid.UUID
	RenterID       uuid.UUID
	StartDate      string
	EndDate        string
	DailyRateCents int64
	Status         booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:             uuid.New(),
		GearID:         uuid.New(),
		GearName:       "Trail Bike",
		OwnerID:        uuid.New(),
		RenterID:       uuid.New(),
		StartDate:      "2026-09-10",
		EndDate:        "2026-09-13",
		DailyRateCents: 80_00,
		Status:         booking.StatusPending,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) dates() booking.DateRange {
	r, err := booking.ParseDateRange(b.StartDate, b.EndDate)
	if err != nil {
		panic(err)
	}
	return r
}

func (b *BookingBuilder) BuildSnapshot() *commands.BookingSnapshot {
	dates := b.dates()
	total := b.DailyRateCents * int64(dates.Days())
	return &commands.BookingSnapshot{
		ID:             b.ID,
		GearID:         b.GearID,
		RenterID:       b.RenterID,
		Dates:          dates,
		TotalDays:      dates.Days(),
		DailyRateCents: b.DailyRateCents,
		TotalCostCents: total,
		DepositCents:   total / 2,
		Status:         b.Status,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	dates := b.dates()
	total := b.DailyRateCents * int64(dates.Days())
	now := time.Now()
	return &queries.BookingView{
		ID:             b.ID,
		GearID:         b.GearID,
		GearName:       b.GearName,
		OwnerID:        b.OwnerID,
		OwnerEmail:     "owner@example.com",
		OwnerName:      "Owen Fields",
		RenterID:       b.RenterID,
		RenterEmail:    "renter@example.com",
		RenterName:     "Ann Bell",
		StartDate:      dates.Start(),
		EndDate:        dates.End(),
		TotalDays:      int32(dates.Days()),
		DailyRateCents: b.DailyRateCents,
		TotalCostCents: total,
		DepositCents:   total / 2,
		DepositPercent: int32(booking.DefaultDepositPercent),
		Status:         b.Status.String(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	dates := b.dates()
	total := b.DailyRateCents * int64(dates.Days())
	return &queries.BookingListItem{
		ID:             b.ID,
		GearID:         b.GearID,
		GearName:       b.GearName,
		StartDate:      dates.Start(),
		EndDate:        dates.End(),
		TotalDays:      int32(dates.Days()),
		TotalCostCents: total,
		Status:         b.Status.String(),
		CreatedAt:      time.Now(),
	}
}
