package trust

import "errors"

var ErrInvalidTier = errors.New("invalid trust tier")

// Tier is a renter's reputation bucket. It gates the maximum daily price of
// gear the renter may book and is always derived from the completed-rental
// count and the verification flag, never set independently.
type Tier string

const (
	TierNew    Tier = "new"
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	switch t {
	case TierNew, TierBronze, TierSilver, TierGold:
		return true
	default:
		return false
	}
}

func NewTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", ErrInvalidTier
	}
	return t, nil
}

func (t Tier) Label() string {
	switch t {
	case TierBronze:
		return "Bronze"
	case TierSilver:
		return "Silver"
	case TierGold:
		return "Gold"
	default:
		return "New Renter"
	}
}

// Completed-rental thresholds for each tier.
const (
	bronzeMinRentals = 1
	silverMinRentals = 4
	goldMinRentals   = 11
)

// Per-day price caps, in cents. Gold is uncapped.
const (
	newMaxDailyPriceCents    int64 = 100_00
	bronzeMaxDailyPriceCents int64 = 200_00
	silverMaxDailyPriceCents int64 = 500_00
)

// MinCompletedRentals returns the completed-rental count required to reach
// the tier without verification.
func (t Tier) MinCompletedRentals() int {
	switch t {
	case TierBronze:
		return bronzeMinRentals
	case TierSilver:
		return silverMinRentals
	case TierGold:
		return goldMinRentals
	default:
		return 0
	}
}

// MaxDailyPriceCents returns the tier's daily price cap. The second return
// is false for gold, which has no cap.
func (t Tier) MaxDailyPriceCents() (int64, bool) {
	switch t {
	case TierNew:
		return newMaxDailyPriceCents, true
	case TierBronze:
		return bronzeMaxDailyPriceCents, true
	case TierSilver:
		return silverMaxDailyPriceCents, true
	default:
		return 0, false
	}
}
