package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (name, description, daily_discount_percent, weekly_discount_percent)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		c.Name, c.Description, c.DailyDiscountPercent, c.WeeklyDiscountPercent).Scan(&c.ID)
}

func (r *categoryRepository) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	c := &domain.Category{}
	query := `SELECT id, name, description, daily_discount_percent, weekly_discount_percent
	          FROM categories WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.DailyDiscountPercent, &c.WeeklyDiscountPercent)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name, description, daily_discount_percent, weekly_discount_percent
	          FROM categories ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.DailyDiscountPercent, &c.WeeklyDiscountPercent); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	query := `UPDATE categories SET name=$1, description=$2, daily_discount_percent=$3, weekly_discount_percent=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query,
		c.Name, c.Description, c.DailyDiscountPercent, c.WeeklyDiscountPercent, c.ID)
	return err
}

func (r *categoryRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id=$1`, id)
	return err
}
