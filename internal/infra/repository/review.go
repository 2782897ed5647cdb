package repository

import (
	"context"

	"gearshare/internal/domain/review"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
)

const createReviewSQL = `
INSERT INTO reviews (
    id, booking_id, gear_id, renter_id, rating, comment
) VALUES ($1, $2, $3, $4, $5, $6)`

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) error {
	_, err := tx.Exec(ctx, createReviewSQL,
		rev.ID(),
		rev.BookingID(),
		rev.GearID(),
		rev.RenterID(),
		int32(rev.Rating().Value()),
		rev.Comment().Value(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}
