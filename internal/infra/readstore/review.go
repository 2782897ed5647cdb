package readstore

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findReviewsByGearSQL = `
SELECT r.id, r.gear_id, r.renter_id,
       u.first_name || ' ' || left(u.last_name, 1) || '.' AS renter_name,
       r.rating, r.comment, r.created_at
FROM reviews r
JOIN users u ON u.id = r.renter_id
WHERE r.gear_id = $1
ORDER BY r.created_at DESC`

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

func (r *ReviewReadStore) FindByGearID(ctx context.Context, gearID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, findReviewsByGearSQL, gearID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var views []*queries.ReviewView
	for rows.Next() {
		var (
			view    queries.ReviewView
			created pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.GearID, &view.RenterID, &view.RenterName,
			&view.Rating, &view.Comment, &created,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(created)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return views, nil
}
