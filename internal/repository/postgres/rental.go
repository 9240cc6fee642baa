package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, customer_id, car_id, start_at, planned_end_at, actual_return_at,
	rate_type, status, base_price, late_fee, total_price, notes, created_on, updated_on`

func scanRental(row interface{ Scan(...any) error }, rt *domain.Rental) error {
	var actualReturn sql.NullTime
	err := row.Scan(&rt.ID, &rt.CustomerID, &rt.CarID, &rt.StartAt, &rt.PlannedEndAt, &actualReturn,
		&rt.RateType, &rt.Status, &rt.BasePrice, &rt.LateFee, &rt.TotalPrice, &rt.Notes,
		&rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return err
	}
	if actualReturn.Valid {
		t := actualReturn.Time
		rt.ActualReturnAt = &t
	}
	return nil
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (customer_id, car_id, start_at, planned_end_at, rate_type, status,
	          base_price, late_fee, total_price, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		rt.CustomerID, rt.CarID, rt.StartAt, rt.PlannedEndAt, rt.RateType, rt.Status,
		rt.BasePrice, rt.LateFee, rt.TotalPrice, rt.Notes, now, now).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := scanRental(r.db.QueryRowContext(ctx, query, id), rt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rental %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET planned_end_at=$1, actual_return_at=$2, status=$3,
	          base_price=$4, late_fee=$5, total_price=$6, notes=$7, updated_on=$8 WHERE id=$9`
	var actualReturn sql.NullTime
	if rt.ActualReturnAt != nil {
		actualReturn = sql.NullTime{Time: *rt.ActualReturnAt, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, query,
		rt.PlannedEndAt, actualReturn, rt.Status,
		rt.BasePrice, rt.LateFee, rt.TotalPrice, rt.Notes, time.Now(), rt.ID)
	return err
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY start_at DESC`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 ORDER BY start_at DESC`
	return r.queryRentals(ctx, query, status)
}

func (r *rentalRepository) ListOverdue(ctx context.Context, now time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE status = 'ACTIVE' AND planned_end_at < $1 ORDER BY planned_end_at ASC`
	return r.queryRentals(ctx, query, now)
}

func (r *rentalRepository) ListByCar(ctx context.Context, carID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE car_id = $1 ORDER BY start_at DESC`
	return r.queryRentals(ctx, query, carID)
}

func (r *rentalRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE customer_id = $1 ORDER BY start_at DESC`
	return r.queryRentals(ctx, query, customerID)
}

func (r *rentalRepository) ListActiveByCar(ctx context.Context, carID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE car_id = $1 AND status = 'ACTIVE'`
	return r.queryRentals(ctx, query, carID)
}

func (r *rentalRepository) ListActiveOverlapping(ctx context.Context, from, to time.Time) ([]domain.Rental, error) {
	// Half-open interval overlap: [start_at, planned_end_at) meets [from, to).
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE status = 'ACTIVE' AND start_at < $2 AND planned_end_at > $1`
	return r.queryRentals(ctx, query, from, to)
}

func (r *rentalRepository) CountByCar(ctx context.Context, carID int32) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE car_id = $1`, carID).Scan(&count)
	return count, err
}

func (r *rentalRepository) CountByCustomer(ctx context.Context, customerID int32) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE customer_id = $1`, customerID).Scan(&count)
	return count, err
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...any) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := scanRental(rows, &rt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
