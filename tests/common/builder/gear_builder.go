//go:build unit

package builder

import (
	"time"

	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type GearBuilder struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	OwnerName       string
	Name            string
	Description     string
	Category        string
	DailyPriceCents int64
	Location        string
	IsAvailable     bool
	AverageRating   float64
}

func NewGearBuilder() *GearBuilder {
	return &GearBuilder{
		ID:              uuid.New(),
		OwnerID:         uuid.New(),
		OwnerName:       "Ann B.",
		Name:            "Trail Bike",
		Description:     "Full suspension, size M",
		Category:        "bikes",
		DailyPriceCents: 45_00,
		Location:        "Boulder, CO",
		IsAvailable:     true,
	}
}

func (b *GearBuilder) With(mutate func(*GearBuilder)) *GearBuilder {
	mutate(b)
	return b
}

func (b *GearBuilder) BuildSnapshot() *commands.GearSnapshot {
	return &commands.GearSnapshot{
		ID:              b.ID,
		OwnerID:         b.OwnerID,
		Name:            b.Name,
		DailyPriceCents: b.DailyPriceCents,
		IsAvailable:     b.IsAvailable,
	}
}

func (b *GearBuilder) BuildView() *queries.GearView {
	return &queries.GearView{
		ID:              b.ID,
		OwnerID:         b.OwnerID,
		OwnerName:       b.OwnerName,
		OwnerTrustTier:  "gold",
		Name:            b.Name,
		Description:     b.Description,
		Category:        b.Category,
		DailyPriceCents: b.DailyPriceCents,
		Location:        b.Location,
		IsAvailable:     b.IsAvailable,
		AverageRating:   b.AverageRating,
		CreatedAt:       time.Now(),
	}
}
