package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	carRepo      repository.CarRepository
	categoryRepo repository.CategoryRepository
	customerRepo repository.CustomerRepository
	checker      AvailabilityChecker
	pricing      *pricing.Factory
	emailSvc     EmailService
	locks        *carLocks
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	carRepo repository.CarRepository,
	categoryRepo repository.CategoryRepository,
	customerRepo repository.CustomerRepository,
	checker AvailabilityChecker,
	pricingFactory *pricing.Factory,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		carRepo:      carRepo,
		categoryRepo: categoryRepo,
		customerRepo: customerRepo,
		checker:      checker,
		pricing:      pricingFactory,
		emailSvc:     emailSvc,
		locks:        newCarLocks(),
	}
}

func (s *rentalService) Create(ctx context.Context, customerID, carID int32, rateType domain.RateType, startAt, plannedEndAt time.Time, notes string) (*domain.Rental, error) {
	if !startAt.Before(plannedEndAt) {
		return nil, fmt.Errorf("%w: start %s must precede planned end %s", domain.ErrInvalidWindow, startAt, plannedEndAt)
	}
	strategy, err := s.pricing.Get(rateType)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	s.locks.Lock(carID)
	defer s.locks.Unlock(carID)

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	ok, err := s.checker.IsAvailable(ctx, carID, startAt, plannedEndAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: car %d in [%s, %s)", domain.ErrCarUnavailable, carID, startAt, plannedEndAt)
	}

	category, err := s.categoryRepo.GetByID(ctx, car.CategoryID)
	if err != nil {
		return nil, err
	}
	quote := strategy.Calculate(car, category, startAt, plannedEndAt)

	rental := &domain.Rental{
		CustomerID:   customerID,
		CarID:        carID,
		StartAt:      startAt,
		PlannedEndAt: plannedEndAt,
		RateType:     rateType,
		Status:       domain.RentalStatusActive,
		BasePrice:    quote.Price,
		LateFee:      decimal.Zero,
		TotalPrice:   quote.Price,
		Notes:        notes,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	car.Status = domain.CarStatusRented
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Rental created",
		"rental_id", rental.ID, "car_id", carID, "customer_id", customerID,
		"rate_type", rateType, "base_price", quote.Price.String())

	// Best-effort notification; booking stands even if the email bounces.
	_ = s.emailSvc.SendBookingConfirmation(ctx, customer.Email, customer.Name, rental)

	return rental, nil
}

func (s *rentalService) PreviewPrice(ctx context.Context, carID int32, rateType domain.RateType, startAt, plannedEndAt time.Time) (*pricing.Result, error) {
	if !startAt.Before(plannedEndAt) {
		return nil, fmt.Errorf("%w: start %s must precede planned end %s", domain.ErrInvalidWindow, startAt, plannedEndAt)
	}
	strategy, err := s.pricing.Get(rateType)
	if err != nil {
		return nil, err
	}
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.GetByID(ctx, car.CategoryID)
	if err != nil {
		return nil, err
	}
	quote := strategy.Calculate(car, category, startAt, plannedEndAt)
	return &quote, nil
}

func (s *rentalService) Extend(ctx context.Context, rentalID int32, newPlannedEndAt time.Time) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	s.locks.Lock(rt.CarID)
	defer s.locks.Unlock(rt.CarID)

	// Reload under the lock: the first read only located the car to lock on.
	rt, err = s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.Status != domain.RentalStatusActive {
		return nil, fmt.Errorf("%w: cannot extend rental %d in status %s", domain.ErrInvalidState, rentalID, rt.Status)
	}
	if !newPlannedEndAt.After(rt.PlannedEndAt) {
		return nil, fmt.Errorf("%w: new planned end %s must extend current %s", domain.ErrInvalidWindow, newPlannedEndAt, rt.PlannedEndAt)
	}

	car, err := s.carRepo.GetByID(ctx, rt.CarID)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.GetByID(ctx, car.CategoryID)
	if err != nil {
		return nil, err
	}
	strategy, err := s.pricing.Get(rt.RateType)
	if err != nil {
		return nil, err
	}

	// Reprice the full window at the original rate type.
	quote := strategy.Calculate(car, category, rt.StartAt, newPlannedEndAt)
	rt.PlannedEndAt = newPlannedEndAt
	rt.BasePrice = quote.Price
	rt.TotalPrice = quote.Price.Add(rt.LateFee)

	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Rental extended",
		"rental_id", rt.ID, "planned_end_at", newPlannedEndAt, "base_price", rt.BasePrice.String())
	return rt, nil
}

func (s *rentalService) Return(ctx context.Context, rentalID int32, actualReturnAt time.Time, notes string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	s.locks.Lock(rt.CarID)
	defer s.locks.Unlock(rt.CarID)

	rt, err = s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.Status != domain.RentalStatusActive {
		return nil, fmt.Errorf("%w: cannot return rental %d in status %s", domain.ErrInvalidState, rentalID, rt.Status)
	}
	if actualReturnAt.Before(rt.StartAt) {
		return nil, fmt.Errorf("%w: return %s precedes rental start %s", domain.ErrInvalidWindow, actualReturnAt, rt.StartAt)
	}

	car, err := s.carRepo.GetByID(ctx, rt.CarID)
	if err != nil {
		return nil, err
	}

	// Late overrun bills in whole hours at the car's hourly rate, whatever
	// rate type the rental itself uses.
	lateFee := decimal.Zero
	if actualReturnAt.After(rt.PlannedEndAt) {
		lateFee = pricing.Hourly{}.Calculate(car, nil, rt.PlannedEndAt, actualReturnAt).Price
	}

	rt.ActualReturnAt = &actualReturnAt
	rt.LateFee = lateFee
	rt.TotalPrice = rt.BasePrice.Add(lateFee)
	rt.Status = domain.RentalStatusReturned
	if notes != "" {
		rt.Notes = notes
	}
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}

	car.Status = domain.CarStatusAvailable
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Rental returned",
		"rental_id", rt.ID, "late_fee", lateFee.String(), "total_price", rt.TotalPrice.String())

	if customer, cerr := s.customerRepo.GetByID(ctx, rt.CustomerID); cerr == nil {
		_ = s.emailSvc.SendReturnReceipt(ctx, customer.Email, customer.Name, rt)
	}

	return rt, nil
}

func (s *rentalService) Cancel(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	s.locks.Lock(rt.CarID)
	defer s.locks.Unlock(rt.CarID)

	rt, err = s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.Status != domain.RentalStatusActive {
		return nil, fmt.Errorf("%w: cannot cancel rental %d in status %s", domain.ErrInvalidState, rentalID, rt.Status)
	}

	// Prices and fees stay as booked; the record is historical.
	rt.Status = domain.RentalStatusCancelled
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}

	car, err := s.carRepo.GetByID(ctx, rt.CarID)
	if err != nil {
		return nil, err
	}
	car.Status = domain.CarStatusAvailable
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Rental cancelled", "rental_id", rt.ID, "car_id", rt.CarID)
	return rt, nil
}

func (s *rentalService) Get(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, rentalID)
}

func (s *rentalService) List(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	if status == domain.RentalStatusOverdue {
		// Derived status: no OVERDUE rows exist, project it from ACTIVE.
		return s.rentalRepo.ListOverdue(ctx, time.Now())
	}
	return s.rentalRepo.ListByStatus(ctx, status)
}

func (s *rentalService) ListOverdue(ctx context.Context, now time.Time) ([]domain.Rental, error) {
	return s.rentalRepo.ListOverdue(ctx, now)
}

func (s *rentalService) ListByCar(ctx context.Context, carID int32) ([]domain.Rental, error) {
	return s.rentalRepo.ListByCar(ctx, carID)
}

func (s *rentalService) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Rental, error) {
	return s.rentalRepo.ListByCustomer(ctx, customerID)
}
