package service

import (
	"context"
	"errors"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	rentalRepo   repository.RentalRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, rentalRepo repository.RentalRepository) CustomerService {
	return &customerService{customerRepo: customerRepo, rentalRepo: rentalRepo}
}

func (s *customerService) Create(ctx context.Context, customer *domain.Customer) error {
	if customer.Name == "" || customer.Email == "" {
		return fmt.Errorf("%w: customer name and email are required", domain.ErrInvalidInput)
	}
	if other, err := s.customerRepo.GetByEmail(ctx, customer.Email); err == nil {
		return fmt.Errorf("%w: email %s already registered to customer %d", domain.ErrConflict, customer.Email, other.ID)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) Get(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) Update(ctx context.Context, customer *domain.Customer) error {
	if _, err := s.customerRepo.GetByID(ctx, customer.ID); err != nil {
		return err
	}
	return s.customerRepo.Update(ctx, customer)
}

// Delete refuses while the customer has rental history.
func (s *customerService) Delete(ctx context.Context, id int32) error {
	count, err := s.rentalRepo.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: customer %d has %d rentals on record", domain.ErrConflict, id, count)
	}
	return s.customerRepo.Delete(ctx, id)
}

func (s *customerService) ActivityReport(ctx context.Context) ([]domain.CustomerActivity, error) {
	return s.customerRepo.ActivityReport(ctx)
}
