package response

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	GearID     uuid.UUID `json:"gear_id"`
	RenterName string    `json:"renter_name"`
	Rating     int32     `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:         v.ID,
		GearID:     v.GearID,
		RenterName: v.RenterName,
		Rating:     v.Rating,
		Comment:    v.Comment,
		CreatedAt:  v.CreatedAt,
	}
}

type CreateReviewResponse struct {
	ReviewID uuid.UUID `json:"review_id"`
	GearID   uuid.UUID `json:"gear_id"`
}
