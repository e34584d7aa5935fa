package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"aris-backend/internal/domain"
	"aris-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, tenant_id, name, company, email, phone, address, status, type,
	notes, preferred_payment_method, billing_info, version, created_at, last_activity`

func scanCustomer(row interface{ Scan(...any) error }) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := row.Scan(&c.ID, &c.TenantID, &c.Name, &c.Company, &c.Email, &c.Phone, &c.Address,
		&c.Status, &c.Type, &c.Notes, &c.PreferredPaymentMethod, &c.BillingInfo,
		&c.Version, &c.CreatedAt, &c.LastActivity)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (tenant_id, name, company, email, phone, address, status, type,
	            notes, preferred_payment_method, billing_info, version, created_at, last_activity)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1, $12, $13)
	          RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		c.TenantID, c.Name, c.Company, c.Email, c.Phone, c.Address, c.Status, c.Type,
		c.Notes, c.PreferredPaymentMethod, c.BillingInfo, c.CreatedAt, c.LastActivity).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return err
	}
	c.Version = 1
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, tenantID, id int32) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE tenant_id = $1 AND id = $2`
	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, tenantID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, company=$2, email=$3, phone=$4, address=$5,
	            status=$6, type=$7, notes=$8, preferred_payment_method=$9, billing_info=$10,
	            last_activity=$11, version=version+1
	          WHERE tenant_id=$12 AND id=$13 AND version=$14`
	res, err := r.db.ExecContext(ctx, query,
		c.Name, c.Company, c.Email, c.Phone, c.Address,
		c.Status, c.Type, c.Notes, c.PreferredPaymentMethod, c.BillingInfo,
		c.LastActivity, c.TenantID, c.ID, c.Version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return resolveStaleWrite(ctx, r.db, "customers", c.TenantID, c.ID)
	}
	c.Version++
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, tenantID, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE tenant_id = $1 AND id = $2`, tenantID, id)
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

func (r *customerRepository) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE tenant_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) BulkDelete(ctx context.Context, tenantID int32, ids []int32) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM customers WHERE tenant_id = $1 AND id = ANY($2)`, tenantID, pq.Array(ids))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *customerRepository) BulkSetStatus(ctx context.Context, tenantID int32, ids []int32, status domain.CustomerStatus) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE customers SET status = $1, version = version + 1
		 WHERE tenant_id = $2 AND id = ANY($3)`,
		status, tenantID, pq.Array(ids))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
