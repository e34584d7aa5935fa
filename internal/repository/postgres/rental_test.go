package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"aris-backend/internal/domain"
	"aris-backend/internal/repository"
)

var rentalCols = []string{"id", "tenant_id", "equipment_id", "equipment_name", "equipment_type",
	"equipment_serial_number", "customer_id", "customer_name", "customer_company",
	"start_date", "due_date", "return_date", "status", "rate_per_day_cents", "total_days",
	"total_cost_cents", "deposit_cents", "payment_status", "payment_method", "notes",
	"returned_with_damage", "damage_notes", "version", "created_on", "updated_on"}

func testRental() *domain.Rental {
	return &domain.Rental{
		TenantID:              1,
		EquipmentID:           7,
		EquipmentName:         "CAT 320",
		EquipmentType:         "Excavator",
		EquipmentSerialNumber: "SN-1",
		CustomerID:            3,
		CustomerName:          "Alice",
		StartDate:             time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DueDate:               time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Status:                domain.RentalStatusActive,
		RatePerDayCents:       10000,
		TotalDays:             5,
		TotalCostCents:        50000,
		PaymentStatus:         domain.PaymentStatusPending,
	}
}

func TestRentalRepository_CreateWithEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("BooksAndFlipsEquipment", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rentals").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
		mock.ExpectExec("UPDATE equipment").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE customers").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewRentalRepository(db)
		rt := testRental()
		err = repo.CreateWithEquipment(ctx, rt)
		assert.NoError(t, err)
		assert.Equal(t, int32(12), rt.ID)
		assert.Equal(t, int32(1), rt.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EquipmentNoLongerAvailable", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rentals").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
		mock.ExpectExec("UPDATE equipment").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		repo := NewRentalRepository(db)
		err = repo.CreateWithEquipment(ctx, testRental())
		assert.ErrorIs(t, err, repository.ErrEquipmentUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EquipmentDeleted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rentals").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
		mock.ExpectExec("UPDATE equipment").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		repo := NewRentalRepository(db)
		err = repo.CreateWithEquipment(ctx, testRental())
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestRentalRepository_ReturnWithEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("ClosesRentalAndReleasesEquipment", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rentals").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE equipment").
			WithArgs("available", sqlmock.AnyArg(), int32(1), int32(7), "rented").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewRentalRepository(db)
		rt := testRental()
		rt.ID = 12
		rt.Version = 1
		end := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
		rt.ReturnDate = &end
		rt.Status = domain.RentalStatusReturned

		err = repo.ReturnWithEquipment(ctx, rt)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), rt.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MaintenanceFlaggedItemStaysPut", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		// the release matches zero rows when the item is no longer rented;
		// the return itself still commits
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rentals").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE equipment").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		repo := NewRentalRepository(db)
		rt := testRental()
		rt.ID = 12
		rt.Version = 1
		end := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
		rt.ReturnDate = &end
		rt.Status = domain.RentalStatusReturned

		err = repo.ReturnWithEquipment(ctx, rt)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("StaleVersion", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rentals").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		repo := NewRentalRepository(db)
		rt := testRental()
		rt.ID = 12
		rt.Version = 1
		end := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
		rt.ReturnDate = &end

		err = repo.ReturnWithEquipment(ctx, rt)
		assert.ErrorIs(t, err, repository.ErrVersionConflict)
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM rentals").
		WithArgs(int32(1), int32(12)).
		WillReturnRows(sqlmock.NewRows(rentalCols).AddRow(
			12, 1, 7, "CAT 320", "Excavator",
			"SN-1", 3, "Alice", nil,
			start, due, nil, "active", 10000, 5,
			50000, 0, "pending", nil, "",
			false, nil, 1, "2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z"))

	repo := NewRentalRepository(db)
	rt, err := repo.GetByID(context.Background(), 1, 12)
	assert.NoError(t, err)
	assert.Equal(t, "RNT-012", rt.Code())
	assert.Equal(t, int32(5), rt.TotalDays)
	assert.Nil(t, rt.ReturnDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Update_StaleWrite(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE rentals").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewRentalRepository(db)
	rt := testRental()
	rt.ID = 12
	rt.Version = 1
	err = repo.Update(context.Background(), rt)
	assert.ErrorIs(t, err, repository.ErrVersionConflict)
	assert.Equal(t, int32(1), rt.Version)
}

func TestRentalRepository_CountOpenByCustomer(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT count").
		WithArgs(int32(1), int32(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	repo := NewRentalRepository(db)
	count, err := repo.CountOpenByCustomer(context.Background(), 1, 3)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), count)
}
