package response

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	GearID         uuid.UUID `json:"gear_id"`
	GearName       string    `json:"gear_name"`
	OwnerID        uuid.UUID `json:"owner_id"`
	RenterID       uuid.UUID `json:"renter_id"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	TotalDays      int32     `json:"total_days"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	TotalCostCents int64     `json:"total_cost_cents"`
	DepositCents   int64     `json:"deposit_cents"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Warning        string    `json:"warning,omitempty"`
}

type BookingListResponse struct {
	ID             uuid.UUID `json:"id"`
	GearID         uuid.UUID `json:"gear_id"`
	GearName       string    `json:"gear_name"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	TotalDays      int32     `json:"total_days"`
	TotalCostCents int64     `json:"total_cost_cents"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type AvailabilityResponse struct {
	GearID      uuid.UUID `json:"gear_id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	IsAvailable bool      `json:"is_available"`
}

type BlockedDatesResponse struct {
	GearID       uuid.UUID `json:"gear_id"`
	BlockedDates []string  `json:"blocked_dates"`
}

func FromBookingView(v *queries.BookingView, warning string) *BookingResponse {
	return &BookingResponse{
		ID:             v.ID,
		GearID:         v.GearID,
		GearName:       v.GearName,
		OwnerID:        v.OwnerID,
		RenterID:       v.RenterID,
		StartDate:      v.StartDate.Format(time.DateOnly),
		EndDate:        v.EndDate.Format(time.DateOnly),
		TotalDays:      v.TotalDays,
		DailyRateCents: v.DailyRateCents,
		TotalCostCents: v.TotalCostCents,
		DepositCents:   v.DepositCents,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
		Warning:        warning,
	}
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:             item.ID,
		GearID:         item.GearID,
		GearName:       item.GearName,
		StartDate:      item.StartDate.Format(time.DateOnly),
		EndDate:        item.EndDate.Format(time.DateOnly),
		TotalDays:      item.TotalDays,
		TotalCostCents: item.TotalCostCents,
		Status:         item.Status,
		CreatedAt:      item.CreatedAt,
	}
}

func FromAvailabilityResult(result *queries.AvailabilityResult) *AvailabilityResponse {
	return &AvailabilityResponse{
		GearID:      result.GearID,
		StartDate:   result.StartDate.Format(time.DateOnly),
		EndDate:     result.EndDate.Format(time.DateOnly),
		IsAvailable: result.IsAvailable,
	}
}

func FromBlockedDates(gearID uuid.UUID, days []time.Time) *BlockedDatesResponse {
	dates := make([]string, len(days))
	for i, d := range days {
		dates[i] = d.Format(time.DateOnly)
	}
	return &BlockedDatesResponse{
		GearID:       gearID,
		BlockedDates: dates,
	}
}
