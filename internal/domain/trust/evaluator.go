package trust

import "fmt"

// TierFor derives the trust tier from rental history. Verified renters
// (identity or credit check passed) are gold regardless of count.
func TierFor(completedRentals int, verified bool) Tier {
	if verified {
		return TierGold
	}

	switch {
	case completedRentals >= goldMinRentals:
		return TierGold
	case completedRentals >= silverMinRentals:
		return TierSilver
	case completedRentals >= bronzeMinRentals:
		return TierBronze
	default:
		return TierNew
	}
}

// CanAfford reports whether a renter at the given tier may book gear at the
// given daily price. The reason is empty when allowed; otherwise it names
// the tier and its limit so the caller can surface it verbatim.
// Pure and deterministic: no side effects.
func CanAfford(tier Tier, verified bool, dailyPriceCents int64) (bool, string) {
	if verified {
		return true, ""
	}

	limit, capped := tier.MaxDailyPriceCents()
	if !capped || dailyPriceCents <= limit {
		return true, ""
	}

	return false, fmt.Sprintf(
		"Your trust level (%s) limits rentals to $%s/day. This item is $%s/day. Complete more rentals or verify your identity to unlock higher-value items.",
		tier.Label(), formatDollars(limit), formatDollars(dailyPriceCents),
	)
}

// NextLevel describes the next attainable tier for an unverified renter.
type NextLevel struct {
	Tier          Tier
	RentalsNeeded int
}

// NextLevelFor returns the progression target, or nil for gold renters.
func NextLevelFor(tier Tier, completedRentals int) *NextLevel {
	var next Tier
	switch tier {
	case TierNew:
		next = TierBronze
	case TierBronze:
		next = TierSilver
	case TierSilver:
		next = TierGold
	default:
		return nil
	}

	needed := next.MinCompletedRentals() - completedRentals
	if needed < 0 {
		needed = 0
	}
	return &NextLevel{Tier: next, RentalsNeeded: needed}
}

func formatDollars(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
