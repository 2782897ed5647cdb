package response

import (
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type GearPerformanceResponse struct {
	GearID            uuid.UUID `json:"gear_id"`
	GearName          string    `json:"gear_name"`
	TotalBookings     int       `json:"total_bookings"`
	CompletedBookings int       `json:"completed_bookings"`
	EarningsCents     int64     `json:"earnings_cents"`
	AverageRating     float64   `json:"average_rating"`
	DailyPriceCents   int64     `json:"daily_price_cents"`
}

type OwnerDashboardResponse struct {
	TotalGear            int                        `json:"total_gear"`
	TotalBookings        int                        `json:"total_bookings"`
	TotalEarningsCents   int64                      `json:"total_earnings_cents"`
	PendingEarningsCents int64                      `json:"pending_earnings_cents"`
	ActiveRentals        int                        `json:"active_rentals"`
	CompletedRentals     int                        `json:"completed_rentals"`
	AverageRating        float64                    `json:"average_rating"`
	TotalReviews         int                        `json:"total_reviews"`
	GearPerformance      []*GearPerformanceResponse `json:"gear_performance"`
}

func FromOwnerDashboardView(v *queries.OwnerDashboardView) *OwnerDashboardResponse {
	performance := make([]*GearPerformanceResponse, len(v.GearPerformance))
	for i, p := range v.GearPerformance {
		performance[i] = &GearPerformanceResponse{
			GearID:            p.GearID,
			GearName:          p.GearName,
			TotalBookings:     p.TotalBookings,
			CompletedBookings: p.CompletedBookings,
			EarningsCents:     p.EarningsCents,
			AverageRating:     p.AverageRating,
			DailyPriceCents:   p.DailyPriceCents,
		}
	}
	return &OwnerDashboardResponse{
		TotalGear:            v.TotalGear,
		TotalBookings:        v.TotalBookings,
		TotalEarningsCents:   v.TotalEarningsCents,
		PendingEarningsCents: v.PendingEarningsCents,
		ActiveRentals:        v.ActiveRentals,
		CompletedRentals:     v.CompletedRentals,
		AverageRating:        v.AverageRating,
		TotalReviews:         v.TotalReviews,
		GearPerformance:      performance,
	}
}
