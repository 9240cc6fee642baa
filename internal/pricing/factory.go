package pricing

import (
	"fmt"

	"carrental-backend/internal/domain"
)

// Factory holds exactly one strategy per rate type.
type Factory struct {
	strategies map[domain.RateType]Strategy
}

// NewFactory registers the three built-in strategies. Adding a rate type
// means adding one strategy and one register call.
func NewFactory() *Factory {
	f := &Factory{strategies: make(map[domain.RateType]Strategy)}
	f.register(domain.RateTypeHourly, Hourly{})
	f.register(domain.RateTypeDaily, Daily{})
	f.register(domain.RateTypeWeekly, Weekly{})
	return f
}

// register panics on a duplicate rate type: two strategies for the same type
// is a configuration error, not a runtime condition.
func (f *Factory) register(rt domain.RateType, s Strategy) {
	if _, dup := f.strategies[rt]; dup {
		panic(fmt.Sprintf("pricing: duplicate strategy registered for rate type %q", rt))
	}
	f.strategies[rt] = s
}

// Get returns the strategy for the requested rate type, or ErrInvalidRateType
// when none is registered. There is no default strategy.
func (f *Factory) Get(rt domain.RateType) (Strategy, error) {
	s, ok := f.strategies[rt]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRateType, rt)
	}
	return s, nil
}
