package user

import (
	"time"

	"gearshare/internal/domain/trust"

	"github.com/google/uuid"
)

type User struct {
	id               uuid.UUID
	email            Email
	passwordHash     string
	name             Name
	accountType      AccountType
	trustTier        trust.Tier
	completedRentals int
	identityVerified bool
	creditChecked    bool
	stripeAccountID  *string
	payoutsReady     bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewUser(email Email, passwordHash string, name Name, accountType AccountType) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		accountType:  accountType,
		trustTier:    trust.TierNew,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	name Name,
	accountType AccountType,
	tier trust.Tier,
	completedRentals int,
	identityVerified, creditChecked bool,
	stripeAccountID *string,
	payoutsReady bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:               id,
		email:            email,
		passwordHash:     passwordHash,
		name:             name,
		accountType:      accountType,
		trustTier:        tier,
		completedRentals: completedRentals,
		identityVerified: identityVerified,
		creditChecked:    creditChecked,
		stripeAccountID:  stripeAccountID,
		payoutsReady:     payoutsReady,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// IsVerified is true when either the identity or credit check passed.
// Verification forces the gold tier.
func (u *User) IsVerified() bool {
	return u.identityVerified || u.creditChecked
}

// RecordCompletedRental sets the completed count and re-derives the tier.
// The tier invariant holds because this is the only mutation path.
func (u *User) RecordCompletedRental(completedCount int) {
	u.completedRentals = completedCount
	u.trustTier = trust.TierFor(completedCount, u.IsVerified())
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Email() Email             { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Name() Name               { return u.name }
func (u *User) AccountType() AccountType { return u.accountType }
func (u *User) TrustTier() trust.Tier    { return u.trustTier }
func (u *User) CompletedRentals() int    { return u.completedRentals }
func (u *User) StripeAccountID() *string { return u.stripeAccountID }
func (u *User) PayoutsReady() bool       { return u.payoutsReady }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }
