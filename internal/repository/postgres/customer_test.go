package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental-backend/internal/domain"
)

func TestCustomerRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "driver_license", "created_on"}).
			AddRow(42, "Dana Reyes", "dana@example.com", "", "DL-991", time.Now())

		mock.ExpectQuery(`SELECT (.+) FROM customers WHERE email = \$1`).
			WithArgs("dana@example.com").
			WillReturnRows(rows)

		customer, err := repo.GetByEmail(ctx, "dana@example.com")
		require.NoError(t, err)
		assert.Equal(t, int32(42), customer.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM customers WHERE email = \$1`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "driver_license", "created_on"}))

		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCustomerRepository_ActivityReport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	lastEnd := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "driver_license", "created_on",
		"rental_count", "last_rental_end"}).
		AddRow(42, "Dana Reyes", "dana@example.com", "", "DL-991", time.Now(), 3, lastEnd).
		AddRow(43, "Sam Okafor", "sam@example.com", "", "DL-204", time.Now(), 0, nil)

	mock.ExpectQuery(`SELECT (.+) FROM customers c\s+LEFT JOIN rentals r`).
		WillReturnRows(rows)

	report, err := repo.ActivityReport(ctx)
	require.NoError(t, err)
	require.Len(t, report, 2)

	assert.Equal(t, int64(3), report[0].RentalCount)
	require.NotNil(t, report[0].LastRentalEnd)
	assert.Equal(t, lastEnd, *report[0].LastRentalEnd)

	// Customers with no rentals appear with a zero count and nil end.
	assert.Equal(t, int64(0), report[1].RentalCount)
	assert.Nil(t, report[1].LastRentalEnd)
}
