package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"aris-backend/internal/domain"
	"aris-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, tenant_id, name, type, condition, status, location,
	rate_per_day_cents, utilization_percent, serial_number, purchase_date,
	last_maintenance_date, next_maintenance_date, assigned_renter_id, notes,
	photo_url, version, created_on, updated_on`

func scanEquipment(row interface{ Scan(...any) error }) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	err := row.Scan(&eq.ID, &eq.TenantID, &eq.Name, &eq.Type, &eq.Condition, &eq.Status,
		&eq.Location, &eq.RatePerDayCents, &eq.UtilizationPercent, &eq.SerialNumber,
		&eq.PurchaseDate, &eq.LastMaintenanceDate, &eq.NextMaintenanceDate,
		&eq.AssignedRenterID, &eq.Notes, &eq.PhotoURL, &eq.Version, &eq.CreatedOn, &eq.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return eq, nil
}

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	query := `INSERT INTO equipment (tenant_id, name, type, condition, status, location,
	            rate_per_day_cents, utilization_percent, serial_number, purchase_date,
	            last_maintenance_date, next_maintenance_date, assigned_renter_id, notes,
	            photo_url, version, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, 1, $16, $17)
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		eq.TenantID, eq.Name, eq.Type, eq.Condition, eq.Status, eq.Location,
		eq.RatePerDayCents, eq.UtilizationPercent, eq.SerialNumber, eq.PurchaseDate,
		eq.LastMaintenanceDate, eq.NextMaintenanceDate, eq.AssignedRenterID, eq.Notes,
		eq.PhotoURL, now(), now()).Scan(&eq.ID)
	if err != nil {
		return err
	}
	eq.Version = 1
	return nil
}

func (r *equipmentRepository) GetByID(ctx context.Context, tenantID, id int32) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE tenant_id = $1 AND id = $2`
	eq, err := scanEquipment(r.db.QueryRowContext(ctx, query, tenantID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return eq, nil
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	query := `UPDATE equipment SET name=$1, type=$2, condition=$3, status=$4, location=$5,
	            rate_per_day_cents=$6, utilization_percent=$7, serial_number=$8, purchase_date=$9,
	            last_maintenance_date=$10, next_maintenance_date=$11, assigned_renter_id=$12,
	            notes=$13, photo_url=$14, version=version+1, updated_on=$15
	          WHERE tenant_id=$16 AND id=$17 AND version=$18`
	res, err := r.db.ExecContext(ctx, query,
		eq.Name, eq.Type, eq.Condition, eq.Status, eq.Location,
		eq.RatePerDayCents, eq.UtilizationPercent, eq.SerialNumber, eq.PurchaseDate,
		eq.LastMaintenanceDate, eq.NextMaintenanceDate, eq.AssignedRenterID,
		eq.Notes, eq.PhotoURL, now(), eq.TenantID, eq.ID, eq.Version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return resolveStaleWrite(ctx, r.db, "equipment", eq.TenantID, eq.ID)
	}
	eq.Version++
	return nil
}

func (r *equipmentRepository) Delete(ctx context.Context, tenantID, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *equipmentRepository) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE tenant_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *eq)
	}
	return items, rows.Err()
}

func (r *equipmentRepository) BulkDelete(ctx context.Context, tenantID int32, ids []int32) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM equipment WHERE tenant_id = $1 AND id = ANY($2)`, tenantID, pq.Array(ids))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *equipmentRepository) BulkSetStatus(ctx context.Context, tenantID int32, ids []int32, status domain.EquipmentStatus) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE equipment SET status = $1, version = version + 1, updated_on = $2
		 WHERE tenant_id = $3 AND id = ANY($4)`,
		status, now(), tenantID, pq.Array(ids))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
