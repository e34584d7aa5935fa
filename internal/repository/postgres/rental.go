package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"aris-backend/internal/domain"
	"aris-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, tenant_id, equipment_id, equipment_name, equipment_type,
	equipment_serial_number, customer_id, customer_name, customer_company,
	start_date, due_date, return_date, status, rate_per_day_cents, total_days,
	total_cost_cents, deposit_cents, payment_status, payment_method, notes,
	returned_with_damage, damage_notes, version, created_on, updated_on`

func scanRental(row interface{ Scan(...any) error }) (*domain.Rental, error) {
	r := &domain.Rental{}
	err := row.Scan(&r.ID, &r.TenantID, &r.EquipmentID, &r.EquipmentName, &r.EquipmentType,
		&r.EquipmentSerialNumber, &r.CustomerID, &r.CustomerName, &r.CustomerCompany,
		&r.StartDate, &r.DueDate, &r.ReturnDate, &r.Status, &r.RatePerDayCents, &r.TotalDays,
		&r.TotalCostCents, &r.DepositCents, &r.PaymentStatus, &r.PaymentMethod, &r.Notes,
		&r.ReturnedWithDamage, &r.DamageNotes, &r.Version, &r.CreatedOn, &r.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// CreateWithEquipment books a rental: the rental row is inserted and the
// equipment is flipped to rented with the customer assigned, in one
// transaction. The equipment flip requires the row to still be available, so
// a double-booking race loses cleanly.
func (r *rentalRepository) CreateWithEquipment(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insert := `INSERT INTO rentals (tenant_id, equipment_id, equipment_name, equipment_type,
	             equipment_serial_number, customer_id, customer_name, customer_company,
	             start_date, due_date, return_date, status, rate_per_day_cents, total_days,
	             total_cost_cents, deposit_cents, payment_status, payment_method, notes,
	             returned_with_damage, damage_notes, version, created_on, updated_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULL, $11, $12, $13, $14,
	             $15, $16, $17, $18, false, NULL, 1, $19, $20)
	           RETURNING id`
	err = tx.QueryRowContext(ctx, insert,
		rt.TenantID, rt.EquipmentID, rt.EquipmentName, rt.EquipmentType,
		rt.EquipmentSerialNumber, rt.CustomerID, rt.CustomerName, rt.CustomerCompany,
		rt.StartDate, rt.DueDate, rt.Status, rt.RatePerDayCents, rt.TotalDays,
		rt.TotalCostCents, rt.DepositCents, rt.PaymentStatus, rt.PaymentMethod, rt.Notes,
		now(), now()).Scan(&rt.ID)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE equipment SET status = $1, assigned_renter_id = $2, version = version + 1, updated_on = $3
		 WHERE tenant_id = $4 AND id = $5 AND status = $6`,
		domain.EquipmentStatusRented, rt.CustomerID, now(),
		rt.TenantID, rt.EquipmentID, domain.EquipmentStatusAvailable)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM equipment WHERE tenant_id = $1 AND id = $2)`,
			rt.TenantID, rt.EquipmentID).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("equipment %d: %w", rt.EquipmentID, repository.ErrNotFound)
		}
		return repository.ErrEquipmentUnavailable
	}

	// touch the customer's activity clock alongside the booking
	_, err = tx.ExecContext(ctx,
		`UPDATE customers SET last_activity = $1 WHERE tenant_id = $2 AND id = $3`,
		rt.StartDate, rt.TenantID, rt.CustomerID)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	rt.Version = 1
	return nil
}

// ReturnWithEquipment persists a return and releases the equipment together.
// The rental write is optimistic on rt.Version; the equipment release only
// touches rows still marked rented, so an item deleted or moved to
// maintenance meanwhile keeps its state.
func (r *rentalRepository) ReturnWithEquipment(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE rentals SET return_date = $1, status = $2, returned_with_damage = $3,
		   damage_notes = $4, payment_status = $5, version = version + 1, updated_on = $6
		 WHERE tenant_id = $7 AND id = $8 AND version = $9 AND return_date IS NULL`,
		rt.ReturnDate, rt.Status, rt.ReturnedWithDamage,
		rt.DamageNotes, rt.PaymentStatus, now(),
		rt.TenantID, rt.ID, rt.Version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return resolveStaleWrite(ctx, r.db, "rentals", rt.TenantID, rt.ID)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE equipment SET status = $1, assigned_renter_id = NULL, version = version + 1, updated_on = $2
		 WHERE tenant_id = $3 AND id = $4 AND status = $5`,
		domain.EquipmentStatusAvailable, now(), rt.TenantID, rt.EquipmentID, domain.EquipmentStatusRented)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	rt.Version++
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, tenantID, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE tenant_id = $1 AND id = $2`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, tenantID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET due_date=$1, status=$2, total_days=$3, total_cost_cents=$4,
	            deposit_cents=$5, payment_status=$6, payment_method=$7, notes=$8,
	            version=version+1, updated_on=$9
	          WHERE tenant_id=$10 AND id=$11 AND version=$12`
	res, err := r.db.ExecContext(ctx, query,
		rt.DueDate, rt.Status, rt.TotalDays, rt.TotalCostCents,
		rt.DepositCents, rt.PaymentStatus, rt.PaymentMethod, rt.Notes,
		now(), rt.TenantID, rt.ID, rt.Version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return resolveStaleWrite(ctx, r.db, "rentals", rt.TenantID, rt.ID)
	}
	rt.Version++
	return nil
}

func (r *rentalRepository) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE tenant_id = $1 ORDER BY id`
	return r.list(ctx, query, tenantID)
}

func (r *rentalRepository) ListByCustomer(ctx context.Context, tenantID, customerID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE tenant_id = $1 AND customer_id = $2 ORDER BY id`
	return r.list(ctx, query, tenantID, customerID)
}

func (r *rentalRepository) CountOpenByCustomer(ctx context.Context, tenantID, customerID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM rentals WHERE tenant_id = $1 AND customer_id = $2 AND return_date IS NULL`,
		tenantID, customerID).Scan(&count)
	return count, err
}

func (r *rentalRepository) list(ctx context.Context, query string, args ...any) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}
