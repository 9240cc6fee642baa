package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type catalogService struct {
	brandRepo    repository.BrandRepository
	modelRepo    repository.ModelRepository
	categoryRepo repository.CategoryRepository
	carRepo      repository.CarRepository
	rentalRepo   repository.RentalRepository
}

func NewCatalogService(
	brandRepo repository.BrandRepository,
	modelRepo repository.ModelRepository,
	categoryRepo repository.CategoryRepository,
	carRepo repository.CarRepository,
	rentalRepo repository.RentalRepository,
) CatalogService {
	return &catalogService{
		brandRepo:    brandRepo,
		modelRepo:    modelRepo,
		categoryRepo: categoryRepo,
		carRepo:      carRepo,
		rentalRepo:   rentalRepo,
	}
}

func (s *catalogService) CreateBrand(ctx context.Context, brand *domain.Brand) error {
	if brand.Name == "" {
		return fmt.Errorf("%w: brand name is required", domain.ErrInvalidInput)
	}
	return s.brandRepo.Create(ctx, brand)
}

func (s *catalogService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return s.brandRepo.List(ctx)
}

func (s *catalogService) DeleteBrand(ctx context.Context, id int32) error {
	count, err := s.modelRepo.CountByBrand(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: brand %d still has %d models", domain.ErrConflict, id, count)
	}
	return s.brandRepo.Delete(ctx, id)
}

func (s *catalogService) CreateModel(ctx context.Context, model *domain.Model) error {
	if model.Name == "" {
		return fmt.Errorf("%w: model name is required", domain.ErrInvalidInput)
	}
	if _, err := s.brandRepo.GetByID(ctx, model.BrandID); err != nil {
		return err
	}
	return s.modelRepo.Create(ctx, model)
}

func (s *catalogService) ListModelsByBrand(ctx context.Context, brandID int32) ([]domain.Model, error) {
	return s.modelRepo.ListByBrand(ctx, brandID)
}

func (s *catalogService) DeleteModel(ctx context.Context, id int32) error {
	count, err := s.carRepo.CountByModel(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: model %d still has %d cars", domain.ErrConflict, id, count)
	}
	return s.modelRepo.Delete(ctx, id)
}

func (s *catalogService) CreateCategory(ctx context.Context, category *domain.Category) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	return s.categoryRepo.Create(ctx, category)
}

func (s *catalogService) GetCategory(ctx context.Context, id int32) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *catalogService) UpdateCategory(ctx context.Context, category *domain.Category) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	if _, err := s.categoryRepo.GetByID(ctx, category.ID); err != nil {
		return err
	}
	return s.categoryRepo.Update(ctx, category)
}

// DeleteCategory refuses while any car references the category.
func (s *catalogService) DeleteCategory(ctx context.Context, id int32) error {
	count, err := s.carRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: category %d is referenced by %d cars", domain.ErrConflict, id, count)
	}
	return s.categoryRepo.Delete(ctx, id)
}

func (s *catalogService) CreateCar(ctx context.Context, car *domain.Car) error {
	if err := validateCar(car); err != nil {
		return err
	}
	if _, err := s.modelRepo.GetByID(ctx, car.ModelID); err != nil {
		return err
	}
	if _, err := s.categoryRepo.GetByID(ctx, car.CategoryID); err != nil {
		return err
	}
	if err := s.checkUniqueIdentity(ctx, car); err != nil {
		return err
	}
	if car.Status == "" {
		car.Status = domain.CarStatusAvailable
	}
	if err := s.carRepo.Create(ctx, car); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Car added to fleet", "car_id", car.ID, "vin", car.VIN)
	return nil
}

func (s *catalogService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *catalogService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}

func (s *catalogService) UpdateCar(ctx context.Context, car *domain.Car) error {
	if err := validateCar(car); err != nil {
		return err
	}
	existing, err := s.carRepo.GetByID(ctx, car.ID)
	if err != nil {
		return err
	}
	if existing.VIN != car.VIN || existing.LicensePlate != car.LicensePlate {
		if err := s.checkUniqueIdentity(ctx, car); err != nil {
			return err
		}
	}
	return s.carRepo.Update(ctx, car)
}

// DeleteCar refuses while the car has rental history.
func (s *catalogService) DeleteCar(ctx context.Context, id int32) error {
	count, err := s.rentalRepo.CountByCar(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: car %d has %d rentals on record", domain.ErrConflict, id, count)
	}
	return s.carRepo.Delete(ctx, id)
}

// checkUniqueIdentity enforces fleet-wide VIN and plate uniqueness. The
// database carries matching unique constraints as the backstop.
func (s *catalogService) checkUniqueIdentity(ctx context.Context, car *domain.Car) error {
	if other, err := s.carRepo.GetByVIN(ctx, car.VIN); err == nil && other.ID != car.ID {
		return fmt.Errorf("%w: VIN %s already registered to car %d", domain.ErrConflict, car.VIN, other.ID)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if other, err := s.carRepo.GetByPlate(ctx, car.LicensePlate); err == nil && other.ID != car.ID {
		return fmt.Errorf("%w: plate %s already registered to car %d", domain.ErrConflict, car.LicensePlate, other.ID)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

func validateCar(car *domain.Car) error {
	if car.VIN == "" || car.LicensePlate == "" {
		return fmt.Errorf("%w: VIN and license plate are required", domain.ErrInvalidInput)
	}
	if car.HourlyRate.IsNegative() || car.DailyRate.IsNegative() || car.WeeklyRate.IsNegative() {
		return fmt.Errorf("%w: rates must be non-negative", domain.ErrInvalidInput)
	}
	return nil
}

func validateCategory(category *domain.Category) error {
	if category.Name == "" {
		return fmt.Errorf("%w: category name is required", domain.ErrInvalidInput)
	}
	for _, d := range []struct {
		name    string
		percent decimal.NullDecimal
	}{
		{"daily", category.DailyDiscountPercent},
		{"weekly", category.WeeklyDiscountPercent},
	} {
		if d.percent.Valid && (d.percent.Decimal.IsNegative() || d.percent.Decimal.GreaterThan(decimal.NewFromInt(100))) {
			return fmt.Errorf("%w: %s discount must be between 0 and 100", domain.ErrInvalidInput, d.name)
		}
	}
	return nil
}
