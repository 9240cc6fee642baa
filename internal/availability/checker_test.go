package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/domain"
)

type mockCarRepo struct{ mock.Mock }

func (m *mockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	return m.Called(ctx, car).Error(0)
}
func (m *mockCarRepo) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *mockCarRepo) GetByVIN(ctx context.Context, vin string) (*domain.Car, error) {
	args := m.Called(ctx, vin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *mockCarRepo) GetByPlate(ctx context.Context, plate string) (*domain.Car, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *mockCarRepo) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *mockCarRepo) ListByStatus(ctx context.Context, status domain.CarStatus) ([]domain.Car, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *mockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	return m.Called(ctx, car).Error(0)
}
func (m *mockCarRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockCarRepo) CountByCategory(ctx context.Context, categoryID int32) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockCarRepo) CountByModel(ctx context.Context, modelID int32) (int64, error) {
	args := m.Called(ctx, modelID)
	return args.Get(0).(int64), args.Error(1)
}

type mockRentalRepo struct{ mock.Mock }

func (m *mockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}
func (m *mockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *mockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}
func (m *mockRentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *mockRentalRepo) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *mockRentalRepo) ListOverdue(ctx context.Context, now time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *mockRentalRepo) ListByCar(ctx context.Context, carID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, carID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *mockRentalRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *mockRentalRepo) ListActiveByCar(ctx context.Context, carID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, carID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *mockRentalRepo) ListActiveOverlapping(ctx context.Context, from, to time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *mockRentalRepo) CountByCar(ctx context.Context, carID int32) (int64, error) {
	args := m.Called(ctx, carID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockRentalRepo) CountByCustomer(ctx context.Context, customerID int32) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

var t0 = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Duration
		want                           bool
	}{
		{"Identical windows", 0, 2, 0, 2, true},
		{"Contained window", 0, 10, 2, 4, true},
		{"Partial overlap left", 0, 3, 2, 5, true},
		{"Partial overlap right", 2, 5, 0, 3, true},
		{"Back-to-back, a then b", 0, 2, 2, 4, false},
		{"Back-to-back, b then a", 2, 4, 0, 2, false},
		{"Disjoint", 0, 1, 5, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(
				t0.Add(tt.aStart*time.Hour), t0.Add(tt.aEnd*time.Hour),
				t0.Add(tt.bStart*time.Hour), t0.Add(tt.bEnd*time.Hour),
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecker_IsAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid window", func(t *testing.T) {
		c := NewChecker(new(mockCarRepo), new(mockRentalRepo))
		_, err := c.IsAvailable(ctx, 1, t0.Add(time.Hour), t0)
		assert.ErrorIs(t, err, domain.ErrInvalidWindow)

		_, err = c.IsAvailable(ctx, 1, t0, t0)
		assert.ErrorIs(t, err, domain.ErrInvalidWindow)
	})

	t.Run("Car not AVAILABLE", func(t *testing.T) {
		carRepo := new(mockCarRepo)
		rentalRepo := new(mockRentalRepo)
		carRepo.On("GetByID", ctx, int32(1)).Return(&domain.Car{ID: 1, Status: domain.CarStatusMaintenance}, nil)

		c := NewChecker(carRepo, rentalRepo)
		ok, err := c.IsAvailable(ctx, 1, t0, t0.Add(time.Hour))
		assert.NoError(t, err)
		assert.False(t, ok)
		rentalRepo.AssertNotCalled(t, "ListActiveByCar")
	})

	t.Run("Overlapping active rental blocks", func(t *testing.T) {
		carRepo := new(mockCarRepo)
		rentalRepo := new(mockRentalRepo)
		carRepo.On("GetByID", ctx, int32(1)).Return(&domain.Car{ID: 1, Status: domain.CarStatusAvailable}, nil)
		rentalRepo.On("ListActiveByCar", ctx, int32(1)).Return([]domain.Rental{
			{ID: 7, CarID: 1, StartAt: t0, PlannedEndAt: t0.Add(4 * time.Hour), Status: domain.RentalStatusActive},
		}, nil)

		c := NewChecker(carRepo, rentalRepo)
		ok, err := c.IsAvailable(ctx, 1, t0.Add(2*time.Hour), t0.Add(6*time.Hour))
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Back-to-back window is free", func(t *testing.T) {
		carRepo := new(mockCarRepo)
		rentalRepo := new(mockRentalRepo)
		carRepo.On("GetByID", ctx, int32(1)).Return(&domain.Car{ID: 1, Status: domain.CarStatusAvailable}, nil)
		rentalRepo.On("ListActiveByCar", ctx, int32(1)).Return([]domain.Rental{
			{ID: 7, CarID: 1, StartAt: t0, PlannedEndAt: t0.Add(4 * time.Hour), Status: domain.RentalStatusActive},
		}, nil)

		c := NewChecker(carRepo, rentalRepo)
		ok, err := c.IsAvailable(ctx, 1, t0.Add(4*time.Hour), t0.Add(8*time.Hour))
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Car missing", func(t *testing.T) {
		carRepo := new(mockCarRepo)
		carRepo.On("GetByID", ctx, int32(9)).Return(nil, domain.ErrNotFound)

		c := NewChecker(carRepo, new(mockRentalRepo))
		_, err := c.IsAvailable(ctx, 9, t0, t0.Add(time.Hour))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestChecker_FindAvailable(t *testing.T) {
	ctx := context.Background()
	from, to := t0, t0.Add(24*time.Hour)

	carRepo := new(mockCarRepo)
	rentalRepo := new(mockRentalRepo)
	carRepo.On("ListByStatus", ctx, domain.CarStatusAvailable).Return([]domain.Car{
		{ID: 1, Status: domain.CarStatusAvailable},
		{ID: 2, Status: domain.CarStatusAvailable},
		{ID: 3, Status: domain.CarStatusAvailable},
	}, nil)
	rentalRepo.On("ListActiveOverlapping", ctx, from, to).Return([]domain.Rental{
		{ID: 11, CarID: 2, Status: domain.RentalStatusActive},
	}, nil)

	c := NewChecker(carRepo, rentalRepo)
	cars, err := c.FindAvailable(ctx, from, to)
	assert.NoError(t, err)
	if assert.Len(t, cars, 2) {
		assert.Equal(t, int32(1), cars[0].ID)
		assert.Equal(t, int32(3), cars[1].ID)
	}

	_, err = c.FindAvailable(ctx, to, from)
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}
