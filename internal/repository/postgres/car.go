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

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

const carColumns = `id, vin, license_plate, model_id, category_id, production_year, color, status,
	hourly_rate, daily_rate, weekly_rate, odometer_km, created_on, updated_on`

func scanCar(row interface{ Scan(...any) error }, c *domain.Car) error {
	return row.Scan(&c.ID, &c.VIN, &c.LicensePlate, &c.ModelID, &c.CategoryID,
		&c.ProductionYear, &c.Color, &c.Status,
		&c.HourlyRate, &c.DailyRate, &c.WeeklyRate, &c.OdometerKm,
		&c.CreatedOn, &c.UpdatedOn)
}

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (vin, license_plate, model_id, category_id, production_year, color, status,
	          hourly_rate, daily_rate, weekly_rate, odometer_km, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		c.VIN, c.LicensePlate, c.ModelID, c.CategoryID, c.ProductionYear, c.Color, c.Status,
		c.HourlyRate, c.DailyRate, c.WeeklyRate, c.OdometerKm, now, now).Scan(&c.ID)
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	err := scanCar(r.db.QueryRowContext(ctx, query, id), c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("car %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) GetByVIN(ctx context.Context, vin string) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT ` + carColumns + ` FROM cars WHERE vin = $1`
	err := scanCar(r.db.QueryRowContext(ctx, query, vin), c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("car with VIN %s: %w", vin, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) GetByPlate(ctx context.Context, plate string) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT ` + carColumns + ` FROM cars WHERE license_plate = $1`
	err := scanCar(r.db.QueryRowContext(ctx, query, plate), c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("car with plate %s: %w", plate, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars ORDER BY id`
	return r.queryCars(ctx, query)
}

func (r *carRepository) ListByStatus(ctx context.Context, status domain.CarStatus) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE status = $1 ORDER BY id`
	return r.queryCars(ctx, query, status)
}

func (r *carRepository) queryCars(ctx context.Context, query string, args ...any) ([]domain.Car, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := scanCar(rows, &c); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars SET vin=$1, license_plate=$2, model_id=$3, category_id=$4, production_year=$5,
	          color=$6, status=$7, hourly_rate=$8, daily_rate=$9, weekly_rate=$10, odometer_km=$11, updated_on=$12
	          WHERE id=$13`
	_, err := r.db.ExecContext(ctx, query,
		c.VIN, c.LicensePlate, c.ModelID, c.CategoryID, c.ProductionYear,
		c.Color, c.Status, c.HourlyRate, c.DailyRate, c.WeeklyRate, c.OdometerKm, time.Now(), c.ID)
	return err
}

func (r *carRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id=$1`, id)
	return err
}

func (r *carRepository) CountByCategory(ctx context.Context, categoryID int32) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM cars WHERE category_id = $1`, categoryID).Scan(&count)
	return count, err
}

func (r *carRepository) CountByModel(ctx context.Context, modelID int32) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM cars WHERE model_id = $1`, modelID).Scan(&count)
	return count, err
}
