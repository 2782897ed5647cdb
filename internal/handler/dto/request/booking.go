package request

import (
	"time"

	"github.com/google/uuid"
)

// Dates travel as "2006-01-02" strings; bookings are whole calendar days.
type CreateBookingRequest struct {
	GearID    uuid.UUID `json:"gear_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
}

// ParseDates checks format only. Ordering and past-date rules live in the
// usecase so their failures keep their place in the creation check sequence.
func (r CreateBookingRequest) ParseDates() (start, end time.Time, err error) {
	start, err = time.ParseInLocation(time.DateOnly, r.StartDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = time.ParseInLocation(time.DateOnly, r.EndDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed active completed cancelled"`
}

type CheckAvailabilityRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}
