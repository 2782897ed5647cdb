package readstore

import (
	"context"

	"gearshare/internal/domain/gear"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const gearViewSQL = `
SELECT g.id, g.owner_id,
       o.first_name || ' ' || left(o.last_name, 1) || '.' AS owner_name,
       o.trust_tier AS owner_trust_tier,
       g.name, g.description, g.category, g.daily_price_cents,
       g.location, g.is_available, g.average_rating, g.created_at
FROM gear g
JOIN users o ON o.id = g.owner_id`

const findGearViewByIDSQL = gearViewSQL + `
WHERE g.id = $1`

const findAvailableGearSQL = gearViewSQL + `
WHERE g.is_available
  AND ($1::text IS NULL OR g.category = $1)
ORDER BY g.created_at DESC`

const findGearOwnerSQL = `
SELECT owner_id FROM gear WHERE id = $1`

type GearReadStore struct {
	db db.DBTX
}

func NewGearReadStore(dbtx db.DBTX) *GearReadStore {
	return &GearReadStore{db: dbtx}
}

func (r *GearReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.GearView, error) {
	view, err := scanGearView(r.db.QueryRow(ctx, findGearViewByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("gear not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find gear view", err)
	}
	return view, nil
}

func (r *GearReadStore) FindAvailable(ctx context.Context, category *gear.Category) ([]*queries.GearView, error) {
	var categoryArg pgtype.Text
	if category != nil {
		categoryArg = pgconv.StringToPgtype(category.String())
	}

	rows, err := r.db.Query(ctx, findAvailableGearSQL, categoryArg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available gear", err)
	}
	defer rows.Close()

	var views []*queries.GearView
	for rows.Next() {
		view, err := scanGearView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan gear row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate gear rows", err)
	}
	return views, nil
}

// OwnerOf resolves just the owning user, for authorization checks.
func (r *GearReadStore) OwnerOf(ctx context.Context, gearID uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	if err := r.db.QueryRow(ctx, findGearOwnerSQL, gearID).Scan(&ownerID); err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("gear not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find gear owner", err)
	}
	return ownerID, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGearView(row rowScanner) (*queries.GearView, error) {
	var (
		view    queries.GearView
		created pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.OwnerID, &view.OwnerName, &view.OwnerTrustTier,
		&view.Name, &view.Description, &view.Category, &view.DailyPriceCents,
		&view.Location, &view.IsAvailable, &view.AverageRating, &created,
	)
	if err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(created)
	return &view, nil
}
