package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
)

// Weekly bills whole elapsed days rounded up to whole weeks, minimum one
// week, with the category's weekly discount applied. The day count truncates
// before the weekly ceiling so that a rental of exactly 7 days, or 7 days
// plus a few hours, bills a single week.
type Weekly struct{}

func (Weekly) Calculate(car *domain.Car, category *domain.Category, startAt, endAt time.Time) Result {
	days := int64(endAt.Sub(startAt) / (24 * time.Hour))
	weeks := atLeastOne((days + 6) / 7)

	percent := decimal.Zero
	if category != nil && category.WeeklyDiscountPercent.Valid {
		percent = category.WeeklyDiscountPercent.Decimal
	}
	return Result{
		Price:           discounted(car.WeeklyRate, weeks, percent),
		DiscountPercent: percent,
		Units:           weeks,
		RateType:        domain.RateTypeWeekly,
	}
}
