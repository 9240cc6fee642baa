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

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (name, email, phone, driver_license, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, c.Email, c.Phone, c.DriverLicense, time.Now()).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, email, phone, driver_license, created_on FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.DriverLicense, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, email, phone, driver_license, created_on FROM customers WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.DriverLicense, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer with email %s: %w", email, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, name, email, phone, driver_license, created_on FROM customers ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.DriverLicense, &c.CreatedOn); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, email=$2, phone=$3, driver_license=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Email, c.Phone, c.DriverLicense, c.ID)
	return err
}

func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id=$1`, id)
	return err
}

func (r *customerRepository) ActivityReport(ctx context.Context) ([]domain.CustomerActivity, error) {
	// Last rental end is the actual return when present, else the planned
	// end; cancelled rentals do not count as activity.
	query := `
		SELECT c.id, c.name, c.email, c.phone, c.driver_license, c.created_on,
		       count(r.id) AS rental_count,
		       max(coalesce(r.actual_return_at, r.planned_end_at)) AS last_rental_end
		FROM customers c
		LEFT JOIN rentals r ON r.customer_id = c.id AND r.status <> 'CANCELLED'
		GROUP BY c.id, c.name, c.email, c.phone, c.driver_license, c.created_on
		ORDER BY c.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []domain.CustomerActivity
	for rows.Next() {
		var a domain.CustomerActivity
		var lastEnd sql.NullTime
		if err := rows.Scan(&a.Customer.ID, &a.Customer.Name, &a.Customer.Email,
			&a.Customer.Phone, &a.Customer.DriverLicense, &a.Customer.CreatedOn,
			&a.RentalCount, &lastEnd); err != nil {
			return nil, err
		}
		if lastEnd.Valid {
			end := lastEnd.Time
			a.LastRentalEnd = &end
		}
		report = append(report, a)
	}
	return report, rows.Err()
}
