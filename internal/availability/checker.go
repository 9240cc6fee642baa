package availability

import (
	"context"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant. Back-to-back windows where one
// ends exactly when the other starts do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Checker decides whether a car can be booked for a window. It reads car and
// rental snapshots through the repositories and never mutates state.
type Checker struct {
	carRepo    repository.CarRepository
	rentalRepo repository.RentalRepository
}

func NewChecker(carRepo repository.CarRepository, rentalRepo repository.RentalRepository) *Checker {
	return &Checker{carRepo: carRepo, rentalRepo: rentalRepo}
}

// IsAvailable reports whether the car's status is AVAILABLE and no active
// rental overlaps [from, to). Returned and cancelled rentals never block.
func (c *Checker) IsAvailable(ctx context.Context, carID int32, from, to time.Time) (bool, error) {
	if !from.Before(to) {
		return false, fmt.Errorf("%w: from %s must precede to %s", domain.ErrInvalidWindow, from, to)
	}

	car, err := c.carRepo.GetByID(ctx, carID)
	if err != nil {
		return false, err
	}
	if car.Status != domain.CarStatusAvailable {
		return false, nil
	}

	active, err := c.rentalRepo.ListActiveByCar(ctx, carID)
	if err != nil {
		return false, err
	}
	for _, rt := range active {
		if Overlaps(rt.StartAt, rt.PlannedEndAt, from, to) {
			return false, nil
		}
	}
	return true, nil
}

// FindAvailable returns every car that could be booked for [from, to).
func (c *Checker) FindAvailable(ctx context.Context, from, to time.Time) ([]domain.Car, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("%w: from %s must precede to %s", domain.ErrInvalidWindow, from, to)
	}

	cars, err := c.carRepo.ListByStatus(ctx, domain.CarStatusAvailable)
	if err != nil {
		return nil, err
	}
	busy, err := c.rentalRepo.ListActiveOverlapping(ctx, from, to)
	if err != nil {
		return nil, err
	}

	blocked := make(map[int32]bool, len(busy))
	for _, rt := range busy {
		blocked[rt.CarID] = true
	}

	available := make([]domain.Car, 0, len(cars))
	for _, car := range cars {
		if !blocked[car.ID] {
			available = append(available, car)
		}
	}
	return available, nil
}
