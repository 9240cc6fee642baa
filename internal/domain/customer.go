package domain

import "time"

type Customer struct {
	ID            int32     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	DriverLicense string    `json:"driver_license"`
	CreatedOn     time.Time `json:"created_on"`
}

// CustomerActivity is the per-customer fact sheet the inactivity reminder job
// works from. The engine supplies the facts; the decision to send anything is
// made by the job.
type CustomerActivity struct {
	Customer      Customer   `json:"customer"`
	RentalCount   int64      `json:"rental_count"`
	LastRentalEnd *time.Time `json:"last_rental_end,omitempty"`
}
