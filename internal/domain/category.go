package domain

import "github.com/shopspring/decimal"

// Category groups cars for discount purposes. Discount percentages are in
// [0,100]; an invalid NullDecimal means no discount for that rate type.
// A category referenced by any car must not be deleted.
type Category struct {
	ID                    int32               `json:"id"`
	Name                  string              `json:"name"`
	Description           string              `json:"description"`
	DailyDiscountPercent  decimal.NullDecimal `json:"daily_discount_percent"`
	WeeklyDiscountPercent decimal.NullDecimal `json:"weekly_discount_percent"`
}
