package postgres

import (
	"context"
	"database/sql"
	"errors"

	"aris-backend/internal/domain"
	"aris-backend/internal/repository"
)

type tenantRepository struct {
	db *sql.DB
}

func NewTenantRepository(db *sql.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

const tenantColumns = `id, slug, display_name, active, created_on`

func (r *tenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE slug = $1`
	err := r.db.QueryRowContext(ctx, query, slug).
		Scan(&t.ID, &t.Slug, &t.DisplayName, &t.Active, &t.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tenantRepository) GetByID(ctx context.Context, id int32) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.Slug, &t.DisplayName, &t.Active, &t.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tenantRepository) ListActive(ctx context.Context) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE active ORDER BY slug`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []domain.Tenant
	for rows.Next() {
		var t domain.Tenant
		if err := rows.Scan(&t.ID, &t.Slug, &t.DisplayName, &t.Active, &t.CreatedOn); err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}
