package user

// AccountType says which side of the marketplace an account participates on.
// Owners list gear, renters book it, "both" do either.
type AccountType string

const (
	AccountRenter AccountType = "renter"
	AccountOwner  AccountType = "owner"
	AccountBoth   AccountType = "both"
)

func (a AccountType) String() string {
	return string(a)
}

func (a AccountType) IsValid() bool {
	switch a {
	case AccountRenter, AccountOwner, AccountBoth:
		return true
	default:
		return false
	}
}

func NewAccountType(s string) (AccountType, error) {
	a := AccountType(s)
	if !a.IsValid() {
		return "", ErrInvalidAccountType
	}
	return a, nil
}

// CanListGear reports whether the account may create gear listings.
func (a AccountType) CanListGear() bool {
	return a == AccountOwner || a == AccountBoth
}
