package repository

import (
	"context"

	"gearshare/internal/domain/trust"
	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createUserSQL = `
INSERT INTO users (
    id, email, password_hash, first_name, last_name, account_type,
    trust_tier, completed_rentals, identity_verified, credit_checked
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const findRenterSnapshotSQL = `
SELECT id, trust_tier, completed_rentals,
       (identity_verified OR credit_checked) AS verified
FROM users
WHERE id = $1`

const findPayoutAccountSQL = `
SELECT id, stripe_account_id, payouts_ready
FROM users
WHERE id = $1`

const findContactSQL = `
SELECT id, email, first_name, last_name
FROM users
WHERE id = $1`

const updateUserTrustSQL = `
UPDATE users
SET completed_rentals = $2, trust_tier = $3, updated_at = now()
WHERE id = $1`

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, createUserSQL,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Name().First(),
		u.Name().Last(),
		u.AccountType().String(),
		u.TrustTier().String(),
		int32(u.CompletedRentals()),
		false, // verification happens out of band, never at signup
		false,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindRenterSnapshot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.RenterSnapshot, error) {
	var (
		snap commands.RenterSnapshot
		tier string
	)
	err := dbtx.QueryRow(ctx, findRenterSnapshotSQL, id).Scan(
		&snap.ID,
		&tier,
		&snap.CompletedRentals,
		&snap.Verified,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find renter snapshot", err)
	}
	snap.Tier = trust.Tier(tier)
	return &snap, nil
}

func (r *UserRepository) FindPayoutAccount(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.PayoutAccountSnapshot, error) {
	var (
		snap      commands.PayoutAccountSnapshot
		accountID pgtype.Text
	)
	err := dbtx.QueryRow(ctx, findPayoutAccountSQL, id).Scan(
		&snap.OwnerID,
		&accountID,
		&snap.PayoutsReady,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payout account", err)
	}
	snap.StripeAccountID = pgconv.StringPtrFromPgtype(accountID)
	return &snap, nil
}

func (r *UserRepository) FindContact(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.ContactSnapshot, error) {
	var snap commands.ContactSnapshot
	err := dbtx.QueryRow(ctx, findContactSQL, id).Scan(
		&snap.ID,
		&snap.Email,
		&snap.FirstName,
		&snap.LastName,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user contact", err)
	}
	return &snap, nil
}

func (r *UserRepository) UpdateTrust(ctx context.Context, tx db.DBTX, id uuid.UUID, completedRentals int, tier trust.Tier) error {
	tag, err := tx.Exec(ctx, updateUserTrustSQL, id, int32(completedRentals), tier.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update user trust", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
