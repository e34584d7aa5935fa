package postgres

import (
	"context"
	"database/sql"

	"aris-backend/internal/domain"
	"aris-backend/internal/repository"
)

type invoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	query := `INSERT INTO invoices (tenant_id, rental_id, invoice_number, amount_cents, issued_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		inv.TenantID, inv.RentalID, inv.InvoiceNumber, inv.AmountCents, inv.IssuedOn).Scan(&inv.ID)
}

func (r *invoiceRepository) ListByRental(ctx context.Context, tenantID, rentalID int32) ([]domain.Invoice, error) {
	query := `SELECT id, tenant_id, rental_id, invoice_number, amount_cents, issued_on
	          FROM invoices WHERE tenant_id = $1 AND rental_id = $2 ORDER BY issued_on`
	rows, err := r.db.QueryContext(ctx, query, tenantID, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		if err := rows.Scan(&inv.ID, &inv.TenantID, &inv.RentalID, &inv.InvoiceNumber,
			&inv.AmountCents, &inv.IssuedOn); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}
