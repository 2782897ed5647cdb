//go:build unit

package builder

import (
	"gearshare/internal/domain/trust"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID               uuid.UUID
	Email            string
	FirstName        string
	LastName         string
	AccountType      string
	Tier             trust.Tier
	CompletedRentals int
	Verified         bool
	StripeAccountID  *string
	PayoutsReady     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:          uuid.New(),
		Email:       "ann@example.com",
		FirstName:   "Ann",
		LastName:    "Bell",
		AccountType: "renter",
		Tier:        trust.TierNew,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildRenterSnapshot() *commands.RenterSnapshot {
	return &commands.RenterSnapshot{
		ID:               b.ID,
		Tier:             b.Tier,
		CompletedRentals: b.CompletedRentals,
		Verified:         b.Verified,
	}
}

func (b *UserBuilder) BuildPayoutAccount() *commands.PayoutAccountSnapshot {
	return &commands.PayoutAccountSnapshot{
		OwnerID:         b.ID,
		StripeAccountID: b.StripeAccountID,
		PayoutsReady:    b.PayoutsReady,
	}
}

func (b *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:               b.ID,
		Email:            b.Email,
		FirstName:        b.FirstName,
		LastName:         b.LastName,
		AccountType:      b.AccountType,
		TrustTier:        b.Tier.String(),
		CompletedRentals: b.CompletedRentals,
		IsVerified:       b.Verified,
	}
}
