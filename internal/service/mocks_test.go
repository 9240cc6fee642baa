package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/domain"
)

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}
func (m *MockRentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListOverdue(ctx context.Context, now time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByCar(ctx context.Context, carID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, carID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListActiveByCar(ctx context.Context, carID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, carID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListActiveOverlapping(ctx context.Context, from, to time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) CountByCar(ctx context.Context, carID int32) (int64, error) {
	args := m.Called(ctx, carID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRentalRepo) CountByCustomer(ctx context.Context, customerID int32) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	return m.Called(ctx, car).Error(0)
}
func (m *MockCarRepo) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) GetByVIN(ctx context.Context, vin string) (*domain.Car, error) {
	args := m.Called(ctx, vin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) GetByPlate(ctx context.Context, plate string) (*domain.Car, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) ListByStatus(ctx context.Context, status domain.CarStatus) ([]domain.Car, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	return m.Called(ctx, car).Error(0)
}
func (m *MockCarRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCarRepo) CountByCategory(ctx context.Context, categoryID int32) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCarRepo) CountByModel(ctx context.Context, modelID int32) (int64, error) {
	args := m.Called(ctx, modelID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryRepo
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}
func (m *MockCategoryRepo) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}
func (m *MockCategoryRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCustomerRepo) ActivityReport(ctx context.Context) ([]domain.CustomerActivity, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CustomerActivity), args.Error(1)
}

// MockBrandRepo
type MockBrandRepo struct {
	mock.Mock
}

func (m *MockBrandRepo) Create(ctx context.Context, brand *domain.Brand) error {
	return m.Called(ctx, brand).Error(0)
}
func (m *MockBrandRepo) GetByID(ctx context.Context, id int32) (*domain.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}
func (m *MockBrandRepo) List(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Brand), args.Error(1)
}
func (m *MockBrandRepo) Update(ctx context.Context, brand *domain.Brand) error {
	return m.Called(ctx, brand).Error(0)
}
func (m *MockBrandRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

// MockModelRepo
type MockModelRepo struct {
	mock.Mock
}

func (m *MockModelRepo) Create(ctx context.Context, model *domain.Model) error {
	return m.Called(ctx, model).Error(0)
}
func (m *MockModelRepo) GetByID(ctx context.Context, id int32) (*domain.Model, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Model), args.Error(1)
}
func (m *MockModelRepo) ListByBrand(ctx context.Context, brandID int32) ([]domain.Model, error) {
	args := m.Called(ctx, brandID)
	return args.Get(0).([]domain.Model), args.Error(1)
}
func (m *MockModelRepo) Update(ctx context.Context, model *domain.Model) error {
	return m.Called(ctx, model).Error(0)
}
func (m *MockModelRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockModelRepo) CountByBrand(ctx context.Context, brandID int32) (int64, error) {
	args := m.Called(ctx, brandID)
	return args.Get(0).(int64), args.Error(1)
}

// MockChecker
type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) IsAvailable(ctx context.Context, carID int32, from, to time.Time) (bool, error) {
	args := m.Called(ctx, carID, from, to)
	return args.Bool(0), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, email, name string, rental *domain.Rental) error {
	return m.Called(ctx, email, name, rental).Error(0)
}
func (m *MockEmailService) SendReturnReceipt(ctx context.Context, email, name string, rental *domain.Rental) error {
	return m.Called(ctx, email, name, rental).Error(0)
}
func (m *MockEmailService) SendOverdueReminder(ctx context.Context, email, name string, rental *domain.Rental) error {
	return m.Called(ctx, email, name, rental).Error(0)
}
func (m *MockEmailService) SendInactivityReminder(ctx context.Context, email, name string, lastRentalEnd *time.Time) error {
	return m.Called(ctx, email, name, lastRentalEnd).Error(0)
}
