package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
)

type RentalService interface {
	Create(ctx context.Context, customerID, carID int32, rateType domain.RateType, startAt, plannedEndAt time.Time, notes string) (*domain.Rental, error)
	PreviewPrice(ctx context.Context, carID int32, rateType domain.RateType, startAt, plannedEndAt time.Time) (*pricing.Result, error)
	Extend(ctx context.Context, rentalID int32, newPlannedEndAt time.Time) (*domain.Rental, error)
	Return(ctx context.Context, rentalID int32, actualReturnAt time.Time, notes string) (*domain.Rental, error)
	Cancel(ctx context.Context, rentalID int32) (*domain.Rental, error)
	Get(ctx context.Context, rentalID int32) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
	ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error)
	ListOverdue(ctx context.Context, now time.Time) ([]domain.Rental, error)
	ListByCar(ctx context.Context, carID int32) ([]domain.Rental, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Rental, error)
}

// AvailabilityChecker is the slice of the availability engine the rental
// lifecycle needs. Satisfied by *availability.Checker.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, carID int32, from, to time.Time) (bool, error)
}

type CatalogService interface {
	CreateBrand(ctx context.Context, brand *domain.Brand) error
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	DeleteBrand(ctx context.Context, id int32) error

	CreateModel(ctx context.Context, model *domain.Model) error
	ListModelsByBrand(ctx context.Context, brandID int32) ([]domain.Model, error)
	DeleteModel(ctx context.Context, id int32) error

	CreateCategory(ctx context.Context, category *domain.Category) error
	GetCategory(ctx context.Context, id int32) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id int32) error

	CreateCar(ctx context.Context, car *domain.Car) error
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	ListCars(ctx context.Context) ([]domain.Car, error)
	UpdateCar(ctx context.Context, car *domain.Car) error
	DeleteCar(ctx context.Context, id int32) error
}

type CustomerService interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Get(ctx context.Context, id int32) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int32) error
	ActivityReport(ctx context.Context) ([]domain.CustomerActivity, error)
}

// EmailService is the outbound notification collaborator. Implementations
// own delivery mechanics; callers treat sends as best-effort.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, email, name string, rental *domain.Rental) error
	SendReturnReceipt(ctx context.Context, email, name string, rental *domain.Rental) error
	SendOverdueReminder(ctx context.Context, email, name string, rental *domain.Rental) error
	SendInactivityReminder(ctx context.Context, email, name string, lastRentalEnd *time.Time) error
}
