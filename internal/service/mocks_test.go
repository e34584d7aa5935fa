package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"aris-backend/internal/domain"
)

// MockTenantRepo
type MockTenantRepo struct {
	mock.Mock
}

func (m *MockTenantRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) GetByID(ctx context.Context, id int32) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) ListActive(ctx context.Context) ([]domain.Tenant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, tenantID int32, email string) (*domain.User, error) {
	args := m.Called(ctx, tenantID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, tenantID, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) Delete(ctx context.Context, tenantID, id int32) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
func (m *MockEquipmentRepo) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Equipment, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) BulkDelete(ctx context.Context, tenantID int32, ids []int32) (int64, error) {
	args := m.Called(ctx, tenantID, ids)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockEquipmentRepo) BulkSetStatus(ctx context.Context, tenantID int32, ids []int32, status domain.EquipmentStatus) (int64, error) {
	args := m.Called(ctx, tenantID, ids, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, tenantID, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, tenantID, id int32) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Customer, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) BulkDelete(ctx context.Context, tenantID int32, ids []int32) (int64, error) {
	args := m.Called(ctx, tenantID, ids)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCustomerRepo) BulkSetStatus(ctx context.Context, tenantID int32, ids []int32, status domain.CustomerStatus) (int64, error) {
	args := m.Called(ctx, tenantID, ids, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) CreateWithEquipment(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepo) ReturnWithEquipment(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, tenantID, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepo) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByCustomer(ctx context.Context, tenantID, customerID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, tenantID, customerID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) CountOpenByCustomer(ctx context.Context, tenantID, customerID int32) (int32, error) {
	args := m.Called(ctx, tenantID, customerID)
	return args.Get(0).(int32), args.Error(1)
}

// MockInvoiceRepo
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepo) ListByRental(ctx context.Context, tenantID, rentalID int32) ([]domain.Invoice, error) {
	args := m.Called(ctx, tenantID, rentalID)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOverdueReminder(ctx context.Context, email, customerName, equipmentName, rentalCode string, dueDate time.Time) error {
	args := m.Called(ctx, email, customerName, equipmentName, rentalCode, dueDate)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReceipt(ctx context.Context, email, customerName, equipmentName, rentalCode string, totalCents int64) error {
	args := m.Called(ctx, email, customerName, equipmentName, rentalCode, totalCents)
	return args.Error(0)
}
