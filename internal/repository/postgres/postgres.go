package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"aris-backend/internal/repository"
)

// Store bundles every repository over one database handle.
type Store struct {
	db *sql.DB
	repository.TenantRepository
	repository.UserRepository
	repository.EquipmentRepository
	repository.CustomerRepository
	repository.RentalRepository
	repository.InvoiceRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		TenantRepository:    NewTenantRepository(db),
		UserRepository:      NewUserRepository(db),
		EquipmentRepository: NewEquipmentRepository(db),
		CustomerRepository:  NewCustomerRepository(db),
		RentalRepository:    NewRentalRepository(db),
		InvoiceRepository:   NewInvoiceRepository(db),
	}
}

func (s *Store) DB() *sql.DB { return s.db }

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// resolveStaleWrite classifies a zero-row optimistic update: the row is either
// gone (not found) or was bumped past the expected version.
func resolveStaleWrite(ctx context.Context, db *sql.DB, table string, tenantID, id int32) error {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE tenant_id = $1 AND id = $2)", table)
	if err := db.QueryRowContext(ctx, query, tenantID, id).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return repository.ErrVersionConflict
	}
	return repository.ErrNotFound
}
