package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental-backend/internal/domain"
)

var rentalColumnList = []string{
	"id", "customer_id", "car_id", "start_at", "planned_end_at", "actual_return_at",
	"rate_type", "status", "base_price", "late_fee", "total_price", "notes",
	"created_on", "updated_on",
}

func rentalRow(id int32, start, plannedEnd time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(rentalColumnList).
		AddRow(id, 42, 7, start, plannedEnd, nil,
			"DAILY", "ACTIVE", "285.00", "0", "285.00", "",
			time.Now(), time.Now())
}

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		rental := &domain.Rental{
			CustomerID:   42,
			CarID:        7,
			StartAt:      start,
			PlannedEndAt: start.Add(3 * 24 * time.Hour),
			RateType:     domain.RateTypeDaily,
			Status:       domain.RentalStatusActive,
			BasePrice:    decimal.RequireFromString("285.00"),
			LateFee:      decimal.Zero,
			TotalPrice:   decimal.RequireFromString("285.00"),
		}

		mock.ExpectQuery("INSERT INTO rentals").
			WithArgs(rental.CustomerID, rental.CarID, rental.StartAt, rental.PlannedEndAt,
				rental.RateType, rental.Status, rental.BasePrice, rental.LateFee,
				rental.TotalPrice, rental.Notes, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))

		err := repo.Create(ctx, rental)
		assert.NoError(t, err)
		assert.Equal(t, int32(101), rental.ID)
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE id = \$1`).
			WithArgs(int32(101)).
			WillReturnRows(rentalRow(101, start, start.Add(3*24*time.Hour)))

		rental, err := repo.GetByID(ctx, 101)
		require.NoError(t, err)
		assert.Equal(t, int32(101), rental.ID)
		assert.Equal(t, domain.RentalStatusActive, rental.Status)
		assert.Nil(t, rental.ActualReturnAt)
		assert.True(t, rental.BasePrice.Equal(decimal.RequireFromString("285.00")))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE id = \$1`).
			WithArgs(int32(999)).
			WillReturnRows(sqlmock.NewRows(rentalColumnList))

		_, err := repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRentalRepository_ListOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	start := now.Add(-5 * 24 * time.Hour)

	mock.ExpectQuery(`SELECT (.+) FROM rentals\s+WHERE status = 'ACTIVE' AND planned_end_at < \$1`).
		WithArgs(now).
		WillReturnRows(rentalRow(101, start, start.Add(3*24*time.Hour)))

	overdue, err := repo.ListOverdue(ctx, now)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, int32(101), overdue[0].ID)
}

func TestRentalRepository_ListActiveOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	from := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery(`SELECT (.+) FROM rentals\s+WHERE status = 'ACTIVE' AND start_at < \$2 AND planned_end_at > \$1`).
		WithArgs(from, to).
		WillReturnRows(rentalRow(101, from.Add(-time.Hour), from.Add(time.Hour)))

	overlapping, err := repo.ListActiveOverlapping(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, overlapping, 1)
	assert.Equal(t, int32(7), overlapping[0].CarID)
}

func TestRentalRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	returnedAt := start.Add(3 * 24 * time.Hour)
	rental := &domain.Rental{
		ID:             101,
		StartAt:        start,
		PlannedEndAt:   returnedAt,
		ActualReturnAt: &returnedAt,
		Status:         domain.RentalStatusReturned,
		BasePrice:      decimal.RequireFromString("285.00"),
		LateFee:        decimal.Zero,
		TotalPrice:     decimal.RequireFromString("285.00"),
	}

	mock.ExpectExec("UPDATE rentals SET").
		WithArgs(rental.PlannedEndAt, sqlmock.AnyArg(), rental.Status,
			rental.BasePrice, rental.LateFee, rental.TotalPrice, rental.Notes,
			sqlmock.AnyArg(), rental.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Update(ctx, rental))
	assert.NoError(t, mock.ExpectationsWereMet())
}
