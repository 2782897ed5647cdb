package response

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type GearResponse struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	OwnerName       string    `json:"owner_name"`
	OwnerTrustTier  string    `json:"owner_trust_level"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	DailyPriceCents int64     `json:"daily_price_cents"`
	Location        string    `json:"location"`
	IsAvailable     bool      `json:"is_available"`
	AverageRating   float64   `json:"average_rating"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromGearView(v *queries.GearView) *GearResponse {
	return &GearResponse{
		ID:              v.ID,
		OwnerID:         v.OwnerID,
		OwnerName:       v.OwnerName,
		OwnerTrustTier:  v.OwnerTrustTier,
		Name:            v.Name,
		Description:     v.Description,
		Category:        v.Category,
		DailyPriceCents: v.DailyPriceCents,
		Location:        v.Location,
		IsAvailable:     v.IsAvailable,
		AverageRating:   v.AverageRating,
		CreatedAt:       v.CreatedAt,
	}
}

func FromGearViews(views []*queries.GearView) []*GearResponse {
	out := make([]*GearResponse, len(views))
	for i, v := range views {
		out[i] = FromGearView(v)
	}
	return out
}
