package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type brandRepository struct {
	db *sql.DB
}

func NewBrandRepository(db *sql.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, b *domain.Brand) error {
	query := `INSERT INTO brands (name) VALUES ($1) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.Name).Scan(&b.ID)
}

func (r *brandRepository) GetByID(ctx context.Context, id int32) (*domain.Brand, error) {
	b := &domain.Brand{}
	query := `SELECT id, name FROM brands WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("brand %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *brandRepository) List(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM brands ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *brandRepository) Update(ctx context.Context, b *domain.Brand) error {
	_, err := r.db.ExecContext(ctx, `UPDATE brands SET name=$1 WHERE id=$2`, b.Name, b.ID)
	return err
}

func (r *brandRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM brands WHERE id=$1`, id)
	return err
}

type modelRepository struct {
	db *sql.DB
}

func NewModelRepository(db *sql.DB) repository.ModelRepository {
	return &modelRepository{db: db}
}

func (r *modelRepository) Create(ctx context.Context, m *domain.Model) error {
	query := `INSERT INTO models (brand_id, name, body_style) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.BrandID, m.Name, m.BodyStyle).Scan(&m.ID)
}

func (r *modelRepository) GetByID(ctx context.Context, id int32) (*domain.Model, error) {
	m := &domain.Model{}
	query := `SELECT id, brand_id, name, body_style FROM models WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.BrandID, &m.Name, &m.BodyStyle)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("model %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *modelRepository) ListByBrand(ctx context.Context, brandID int32) ([]domain.Model, error) {
	query := `SELECT id, brand_id, name, body_style FROM models WHERE brand_id = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, brandID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var models []domain.Model
	for rows.Next() {
		var m domain.Model
		if err := rows.Scan(&m.ID, &m.BrandID, &m.Name, &m.BodyStyle); err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

func (r *modelRepository) Update(ctx context.Context, m *domain.Model) error {
	query := `UPDATE models SET brand_id=$1, name=$2, body_style=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, m.BrandID, m.Name, m.BodyStyle, m.ID)
	return err
}

func (r *modelRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM models WHERE id=$1`, id)
	return err
}

func (r *modelRepository) CountByBrand(ctx context.Context, brandID int32) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM models WHERE brand_id = $1`, brandID).Scan(&count)
	return count, err
}
