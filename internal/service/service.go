package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aris-backend/internal/domain"
	"aris-backend/internal/filter"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTenantInactive     = errors.New("tenant is not active")
	ErrUserInactive       = errors.New("user account is disabled")

	// ErrAlreadyReturned makes the return operation idempotent: a second
	// return of the same rental fails without changing anything.
	ErrAlreadyReturned = errors.New("rental has already been returned")
	// ErrDueDateNotExtended guards the extension invariant: the new due date
	// must be strictly after the current one.
	ErrDueDateNotExtended = errors.New("new due date must be after the current due date")
	ErrNotReturned        = errors.New("rental has not been returned yet")

	ErrEquipmentRented        = errors.New("equipment is currently rented")
	ErrCustomerHasOpenRentals = errors.New("customer has open rentals")
	ErrInvalidBulkAction      = errors.New("bulk action is not valid for this entity")
)

// ValidationError reports a rejected input field. Handlers map it to a 400
// with the field name intact.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// BulkAction names a sanctioned multi-select operation. Each entity accepts
// its own subset; anything else is rejected with ErrInvalidBulkAction.
type BulkAction string

const (
	BulkActionDelete          BulkAction = "delete"
	BulkActionMarkAvailable   BulkAction = "mark_available"
	BulkActionMarkMaintenance BulkAction = "mark_maintenance"
	BulkActionActivate        BulkAction = "activate"
	BulkActionDeactivate      BulkAction = "deactivate"
)

type TenantService interface {
	// Resolve maps a tenant slug from the request path to its record.
	Resolve(ctx context.Context, slug string) (*domain.Tenant, error)
	List(ctx context.Context) ([]domain.Tenant, error)
}

type AuthService interface {
	Login(ctx context.Context, tenantSlug, email, password string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (access, refresh string, err error)
	CurrentUser(ctx context.Context, userID int32) (*domain.User, error)
}

type LoginResult struct {
	User         *domain.User
	Tenant       *domain.Tenant
	AccessToken  string
	RefreshToken string
}

type EquipmentService interface {
	Create(ctx context.Context, tenantID int32, eq *domain.Equipment) error
	Get(ctx context.Context, tenantID, id int32) (*domain.Equipment, error)
	Update(ctx context.Context, tenantID int32, eq *domain.Equipment) error
	Delete(ctx context.Context, tenantID, id int32) error
	List(ctx context.Context, tenantID int32, f filter.EquipmentFilters) ([]domain.Equipment, error)
	KPIs(ctx context.Context, tenantID int32) (*domain.EquipmentKPIs, error)
	Bulk(ctx context.Context, tenantID int32, action BulkAction, ids []int32) (int64, error)
	ExportCSV(ctx context.Context, tenantID int32, f filter.EquipmentFilters) (string, error)
}

type CustomerService interface {
	Create(ctx context.Context, tenantID int32, c *domain.Customer) error
	Get(ctx context.Context, tenantID, id int32) (*domain.Customer, *domain.CustomerStats, error)
	Update(ctx context.Context, tenantID int32, c *domain.Customer) error
	Deactivate(ctx context.Context, tenantID, id int32) error
	// Delete removes the record outright and is reserved for erroneous
	// entries; it refuses while the customer still has open rentals.
	Delete(ctx context.Context, tenantID, id int32) error
	List(ctx context.Context, tenantID int32, f filter.CustomerFilters) ([]domain.Customer, map[int32]domain.CustomerStats, error)
	Rentals(ctx context.Context, tenantID, customerID int32) ([]domain.Rental, error)
	KPIs(ctx context.Context, tenantID int32) (*domain.CustomerKPIs, error)
	Bulk(ctx context.Context, tenantID int32, action BulkAction, ids []int32) (int64, error)
	ExportCSV(ctx context.Context, tenantID int32, f filter.CustomerFilters) (string, error)
}

// CreateRentalInput carries the booking form. Rate, snapshots, day count and
// total cost are derived server side, never taken from the client.
type CreateRentalInput struct {
	EquipmentID   int32
	CustomerID    int32
	StartDate     time.Time
	DueDate       time.Time
	DepositCents  int32
	PaymentStatus domain.PaymentStatus
	PaymentMethod *string
	Notes         string
}

type ReturnRentalInput struct {
	ReturnDate    time.Time
	WithDamage    bool
	DamageNotes   *string
	PaymentStatus *domain.PaymentStatus
}

type RentalService interface {
	Create(ctx context.Context, tenantID int32, in CreateRentalInput) (*domain.Rental, error)
	Get(ctx context.Context, tenantID, id int32) (*domain.Rental, error)
	List(ctx context.Context, tenantID int32, f filter.RentalFilters) ([]domain.Rental, error)
	Return(ctx context.Context, tenantID, id int32, in ReturnRentalInput) (*domain.Rental, error)
	Extend(ctx context.Context, tenantID, id int32, newDueDate time.Time) (*domain.Rental, error)
	UpdatePayment(ctx context.Context, tenantID, id int32, status domain.PaymentStatus, method *string) (*domain.Rental, error)
	GenerateInvoice(ctx context.Context, tenantID, rentalID int32) (*domain.Invoice, error)
	KPIs(ctx context.Context, tenantID int32) (*domain.RentalKPIs, error)
	ExportCSV(ctx context.Context, tenantID int32, f filter.RentalFilters) (string, error)
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, email, customerName, equipmentName, rentalCode string, dueDate time.Time) error
	SendReturnReceipt(ctx context.Context, email, customerName, equipmentName, rentalCode string, totalCents int64) error
}
