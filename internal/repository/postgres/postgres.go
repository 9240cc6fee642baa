package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"carrental-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.BrandRepository
	repository.ModelRepository
	repository.CategoryRepository
	repository.CarRepository
	repository.CustomerRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		BrandRepository:    NewBrandRepository(db),
		ModelRepository:    NewModelRepository(db),
		CategoryRepository: NewCategoryRepository(db),
		CarRepository:      NewCarRepository(db),
		CustomerRepository: NewCustomerRepository(db),
		RentalRepository:   NewRentalRepository(db),
	}
}
