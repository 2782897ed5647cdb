package booking

// DefaultDepositPercent is the refundable hold taken on every booking,
// as a share of total cost. Bookings carry their own deposit percentage
// column so the policy can change without rewriting history.
const DefaultDepositPercent = 50

// Quote is the cost breakdown for a date range at a snapshotted daily rate.
type Quote struct {
	TotalDays int
	DailyRate Money
	TotalCost Money
	Deposit   Money
}

// PriceCalculator derives booking quotes and the marketplace split. The
// split is consumed by the payment collaborator; the calculator never moves
// money itself.
type PriceCalculator struct {
	depositPercent    int
	commissionPercent int
}

func NewPriceCalculator(commissionPercent int) *PriceCalculator {
	return &PriceCalculator{
		depositPercent:    DefaultDepositPercent,
		commissionPercent: commissionPercent,
	}
}

// Price computes total_days, total_cost and deposit for the range:
// total_cost = days * rate, deposit = depositPercent of total.
func (pc *PriceCalculator) Price(dailyRate Money, dates DateRange) Quote {
	days := dates.Days()
	total := dailyRate.MultiplyDays(days)
	return Quote{
		TotalDays: days,
		DailyRate: dailyRate,
		TotalCost: total,
		Deposit:   total.Percent(pc.depositPercent),
	}
}

// DepositPercent is the policy constant applied to new bookings.
func (pc *PriceCalculator) DepositPercent() int {
	return pc.depositPercent
}

// CommissionPercent is the flat share of total cost the platform retains on
// a paid booking.
func (pc *PriceCalculator) CommissionPercent() int {
	return pc.commissionPercent
}

// PlatformFee is the platform's cut of a booking's total cost.
func (pc *PriceCalculator) PlatformFee(totalCost Money) Money {
	return totalCost.Percent(pc.commissionPercent)
}

// OwnerPayout is what remains for the gear owner after the platform fee.
func (pc *PriceCalculator) OwnerPayout(totalCost Money) Money {
	return NewMoney(totalCost.Cents() - pc.PlatformFee(totalCost).Cents())
}
