package repository

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, id int32) (*domain.Brand, error)
	List(ctx context.Context) ([]domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, id int32) error
}

type ModelRepository interface {
	Create(ctx context.Context, model *domain.Model) error
	GetByID(ctx context.Context, id int32) (*domain.Model, error)
	ListByBrand(ctx context.Context, brandID int32) ([]domain.Model, error)
	Update(ctx context.Context, model *domain.Model) error
	Delete(ctx context.Context, id int32) error
	CountByBrand(ctx context.Context, brandID int32) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id int32) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int32) error
}

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	GetByVIN(ctx context.Context, vin string) (*domain.Car, error)
	GetByPlate(ctx context.Context, plate string) (*domain.Car, error)
	List(ctx context.Context) ([]domain.Car, error)
	ListByStatus(ctx context.Context, status domain.CarStatus) ([]domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
	CountByCategory(ctx context.Context, categoryID int32) (int64, error)
	CountByModel(ctx context.Context, modelID int32) (int64, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int32) error
	// ActivityReport returns, per customer, the rental count and the end of
	// the most recent rental. Customers with no rentals appear with a zero
	// count and nil end.
	ActivityReport(ctx context.Context) ([]domain.CustomerActivity, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	List(ctx context.Context) ([]domain.Rental, error)
	ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error)
	// ListOverdue returns active rentals whose planned end precedes now,
	// soonest-overdue first.
	ListOverdue(ctx context.Context, now time.Time) ([]domain.Rental, error)
	ListByCar(ctx context.Context, carID int32) ([]domain.Rental, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Rental, error)
	ListActiveByCar(ctx context.Context, carID int32) ([]domain.Rental, error)
	// ListActiveOverlapping returns active rentals whose [start_at,
	// planned_end_at) window overlaps [from, to).
	ListActiveOverlapping(ctx context.Context, from, to time.Time) ([]domain.Rental, error)
	CountByCar(ctx context.Context, carID int32) (int64, error)
	CountByCustomer(ctx context.Context, customerID int32) (int64, error)
}
