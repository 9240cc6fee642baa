package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CarStatus string

const (
	CarStatusAvailable   CarStatus = "AVAILABLE"
	CarStatusRented      CarStatus = "RENTED"
	CarStatusMaintenance CarStatus = "MAINTENANCE"
	CarStatusRetired     CarStatus = "RETIRED"
)

type Brand struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type Model struct {
	ID        int32  `json:"id"`
	BrandID   int32  `json:"brand_id"`
	Name      string `json:"name"`
	BodyStyle string `json:"body_style"`
}

// Car carries the three rate amounts the pricing strategies read. Rates are
// non-negative; VIN and license plate are unique across the fleet.
type Car struct {
	ID             int32           `json:"id"`
	VIN            string          `json:"vin"`
	LicensePlate   string          `json:"license_plate"`
	ModelID        int32           `json:"model_id"`
	CategoryID     int32           `json:"category_id"`
	ProductionYear int32           `json:"production_year"`
	Color          string          `json:"color"`
	Status         CarStatus       `json:"status"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	DailyRate      decimal.Decimal `json:"daily_rate"`
	WeeklyRate     decimal.Decimal `json:"weekly_rate"`
	OdometerKm     int32           `json:"odometer_km"`
	CreatedOn      time.Time       `json:"created_on"`
	UpdatedOn      time.Time       `json:"updated_on"`
}
