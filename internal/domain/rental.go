package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RateType string

const (
	RateTypeHourly RateType = "HOURLY"
	RateTypeDaily  RateType = "DAILY"
	RateTypeWeekly RateType = "WEEKLY"
)

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusReturned  RentalStatus = "RETURNED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
	// RentalStatusOverdue is derived at read time, never stored: an ACTIVE
	// rental past its planned end reports as OVERDUE without a transition.
	RentalStatusOverdue RentalStatus = "OVERDUE"
)

// Rental is the aggregate root for a single rental transaction. It references
// customer and car by identity only. Invariants: StartAt < PlannedEndAt,
// ActualReturnAt is never cleared once set, and TotalPrice == BasePrice +
// LateFee after every recompute.
type Rental struct {
	ID             int32           `json:"id"`
	CustomerID     int32           `json:"customer_id"`
	CarID          int32           `json:"car_id"`
	StartAt        time.Time       `json:"start_at"`
	PlannedEndAt   time.Time       `json:"planned_end_at"`
	ActualReturnAt *time.Time      `json:"actual_return_at,omitempty"`
	RateType       RateType        `json:"rate_type"`
	Status         RentalStatus    `json:"status"`
	BasePrice      decimal.Decimal `json:"base_price"`
	LateFee        decimal.Decimal `json:"late_fee"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Notes          string          `json:"notes"`
	CreatedOn      time.Time       `json:"created_on"`
	UpdatedOn      time.Time       `json:"updated_on"`
}

// StatusAt projects the stored status to the observed one: an active rental
// whose planned end has passed reads as OVERDUE.
func (r *Rental) StatusAt(now time.Time) RentalStatus {
	if r.Status == RentalStatusActive && r.PlannedEndAt.Before(now) {
		return RentalStatusOverdue
	}
	return r.Status
}

// IsOverdue reports whether the rental is active and past its planned end.
func (r *Rental) IsOverdue(now time.Time) bool {
	return r.StatusAt(now) == RentalStatusOverdue
}
