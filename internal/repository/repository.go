package repository

import (
	"context"
	"errors"

	"aris-backend/internal/domain"
)

var (
	// ErrNotFound is returned when an operation targets a row that does not
	// exist in the caller's tenant.
	ErrNotFound = errors.New("record not found")
	// ErrVersionConflict is returned when an optimistic update loses the race:
	// the row exists but its version moved since it was read.
	ErrVersionConflict = errors.New("record was modified concurrently")
	// ErrEquipmentUnavailable is returned when a rental transaction finds the
	// equipment no longer available.
	ErrEquipmentUnavailable = errors.New("equipment is not available")
)

type TenantRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	GetByID(ctx context.Context, id int32) (*domain.Tenant, error)
	ListActive(ctx context.Context) ([]domain.Tenant, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, tenantID int32, email string) (*domain.User, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, tenantID, id int32) (*domain.Equipment, error)
	// Update applies an optimistic write: the row must still be at eq.Version.
	Update(ctx context.Context, eq *domain.Equipment) error
	Delete(ctx context.Context, tenantID, id int32) error
	ListByTenant(ctx context.Context, tenantID int32) ([]domain.Equipment, error)
	BulkDelete(ctx context.Context, tenantID int32, ids []int32) (int64, error)
	BulkSetStatus(ctx context.Context, tenantID int32, ids []int32, status domain.EquipmentStatus) (int64, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, tenantID, id int32) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, tenantID, id int32) error
	ListByTenant(ctx context.Context, tenantID int32) ([]domain.Customer, error)
	BulkDelete(ctx context.Context, tenantID int32, ids []int32) (int64, error)
	BulkSetStatus(ctx context.Context, tenantID int32, ids []int32, status domain.CustomerStatus) (int64, error)
}

type RentalRepository interface {
	// CreateWithEquipment inserts the rental and marks its equipment rented in
	// one transaction; both commit or neither does.
	CreateWithEquipment(ctx context.Context, r *domain.Rental) error
	// ReturnWithEquipment persists a return and releases the equipment in one
	// transaction.
	ReturnWithEquipment(ctx context.Context, r *domain.Rental) error
	GetByID(ctx context.Context, tenantID, id int32) (*domain.Rental, error)
	Update(ctx context.Context, r *domain.Rental) error
	ListByTenant(ctx context.Context, tenantID int32) ([]domain.Rental, error)
	ListByCustomer(ctx context.Context, tenantID, customerID int32) ([]domain.Rental, error)
	CountOpenByCustomer(ctx context.Context, tenantID, customerID int32) (int32, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	ListByRental(ctx context.Context, tenantID, rentalID int32) ([]domain.Invoice, error)
}
