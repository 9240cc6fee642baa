package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
)

// Daily bills elapsed hours rounded up to whole days, minimum one day, with
// the category's daily discount applied.
type Daily struct{}

func (Daily) Calculate(car *domain.Car, category *domain.Category, startAt, endAt time.Time) Result {
	hours := ceilUnits(endAt.Sub(startAt), time.Hour)
	days := atLeastOne((hours + 23) / 24)

	percent := decimal.Zero
	if category != nil && category.DailyDiscountPercent.Valid {
		percent = category.DailyDiscountPercent.Decimal
	}
	return Result{
		Price:           discounted(car.DailyRate, days, percent),
		DiscountPercent: percent,
		Units:           days,
		RateType:        domain.RateTypeDaily,
	}
}
