package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
)

// Result is the transient outcome of a price computation.
type Result struct {
	Price           decimal.Decimal `json:"price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Units           int64           `json:"units"`
	RateType        domain.RateType `json:"rate_type"`
}

// Strategy computes a price for a time window from the car's rates and the
// category's discounts. Implementations are pure: they never mutate their
// inputs and tolerate a nil category (no discount). Callers guarantee
// endAt > startAt; a malformed window still bills one unit.
type Strategy interface {
	Calculate(car *domain.Car, category *domain.Category, startAt, endAt time.Time) Result
}

var hundred = decimal.NewFromInt(100)

// ceilUnits divides d by unit, rounding any remainder up.
func ceilUnits(d time.Duration, unit time.Duration) int64 {
	n := int64(d / unit)
	if d%unit > 0 {
		n++
	}
	return n
}

// atLeastOne clamps a unit count to the one-unit minimum charge.
func atLeastOne(n int64) int64 {
	if n < 1 {
		return 1
	}
	return n
}

// discounted returns rate*units reduced by percent and rounded half-up to
// 2 decimals. A zero percent leaves the gross amount untouched.
func discounted(rate decimal.Decimal, units int64, percent decimal.Decimal) decimal.Decimal {
	gross := rate.Mul(decimal.NewFromInt(units))
	if percent.IsZero() {
		return gross
	}
	factor := hundred.Sub(percent).Div(hundred)
	return gross.Mul(factor).Round(2)
}
