package readstore

import (
	"context"

	"gearshare/internal/domain/trust"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

const authorizedUserSQL = `
SELECT id, email, first_name, last_name, account_type,
       trust_tier, completed_rentals,
       (identity_verified OR credit_checked) AS is_verified
FROM users`

const findUserByEmailSQL = `
SELECT id, email, first_name, last_name, account_type,
       trust_tier, completed_rentals,
       (identity_verified OR credit_checked) AS is_verified,
       password_hash
FROM users
WHERE email = $1`

const findUserByIDSQL = authorizedUserSQL + `
WHERE id = $1`

const findTrustProfileSQL = `
SELECT trust_tier, completed_rentals,
       (identity_verified OR credit_checked) AS is_verified
FROM users
WHERE id = $1`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&view.ID, &view.Email, &view.FirstName, &view.LastName, &view.AccountType,
		&view.TrustTier, &view.CompletedRentals, &view.IsVerified,
		&hash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

func (r *UserReadStore) FindAuthorizedView(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(
		&view.ID, &view.Email, &view.FirstName, &view.LastName, &view.AccountType,
		&view.TrustTier, &view.CompletedRentals, &view.IsVerified,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

func (r *UserReadStore) FindTrustProfile(ctx context.Context, userID uuid.UUID) (trust.Tier, int, bool, error) {
	var (
		tier      string
		completed int
		verified  bool
	)
	err := r.db.QueryRow(ctx, findTrustProfileSQL, userID).Scan(&tier, &completed, &verified)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", 0, false, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return "", 0, false, infra.WrapRepoErr("failed to find trust profile", err)
	}
	return trust.Tier(tier), completed, verified, nil
}
