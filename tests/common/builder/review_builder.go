//go:build unit

package builder

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	GearID     uuid.UUID
	RenterID   uuid.UUID
	RenterName string
	Rating     int32
	Comment    string
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:         uuid.New(),
		BookingID:  uuid.New(),
		GearID:     uuid.New(),
		RenterID:   uuid.New(),
		RenterName: "Ann B.",
		Rating:     5,
		Comment:    "Bike was in great shape, smooth handoff.",
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

func (b *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:         b.ID,
		GearID:     b.GearID,
		RenterID:   b.RenterID,
		RenterName: b.RenterName,
		Rating:     b.Rating,
		Comment:    b.Comment,
		CreatedAt:  time.Now(),
	}
}
