package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
)

// Hourly bills elapsed minutes rounded up to whole hours, minimum one hour.
// Hourly rentals carry no category discount. The same unit logic prices the
// late-fee overrun on return, regardless of the rental's own rate type.
type Hourly struct{}

func (Hourly) Calculate(car *domain.Car, _ *domain.Category, startAt, endAt time.Time) Result {
	minutes := ceilUnits(endAt.Sub(startAt), time.Minute)
	hours := atLeastOne((minutes + 59) / 60)
	return Result{
		Price:           car.HourlyRate.Mul(decimal.NewFromInt(hours)),
		DiscountPercent: decimal.Zero,
		Units:           hours,
		RateType:        domain.RateTypeHourly,
	}
}
