package repository

import (
	"context"

	"gearshare/internal/domain/gear"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/commands"

	"github.com/google/uuid"
)

const createGearSQL = `
INSERT INTO gear (
    id, owner_id, name, description, category,
    daily_price_cents, location, is_available
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const findGearSnapshotSQL = `
SELECT id, owner_id, name, daily_price_cents, is_available
FROM gear
WHERE id = $1`

const recalcGearRatingSQL = `
UPDATE gear
SET average_rating = COALESCE(
        (SELECT avg(rating)::float8 FROM reviews WHERE gear_id = $1), 0
    ),
    updated_at = now()
WHERE id = $1`

type GearRepository struct{}

func NewGearRepository() *GearRepository {
	return &GearRepository{}
}

func (r *GearRepository) Create(ctx context.Context, tx db.DBTX, g *gear.Gear) error {
	_, err := tx.Exec(ctx, createGearSQL,
		g.ID(),
		g.OwnerID(),
		g.Name(),
		g.Description(),
		g.Category().String(),
		g.DailyPrice().Cents(),
		g.Location(),
		g.IsAvailable(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create gear", err)
	}
	return nil
}

func (r *GearRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.GearSnapshot, error) {
	var snap commands.GearSnapshot
	err := dbtx.QueryRow(ctx, findGearSnapshotSQL, id).Scan(
		&snap.ID,
		&snap.OwnerID,
		&snap.Name,
		&snap.DailyPriceCents,
		&snap.IsAvailable,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("gear not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find gear by ID", err)
	}
	return &snap, nil
}

func (r *GearRepository) RecalcAverageRating(ctx context.Context, tx db.DBTX, gearID uuid.UUID) error {
	if _, err := tx.Exec(ctx, recalcGearRatingSQL, gearID); err != nil {
		return infra.WrapRepoErr("failed to recalculate gear rating", err)
	}
	return nil
}
