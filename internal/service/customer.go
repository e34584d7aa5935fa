package service

import (
	"context"
	"strings"
	"time"

	"aris-backend/internal/domain"
	"aris-backend/internal/export"
	"aris-backend/internal/filter"
	"aris-backend/internal/repository"
	"aris-backend/internal/stats"
)

type customerService struct {
	customerRepo  repository.CustomerRepository
	rentalRepo    repository.RentalRepository
	lookaheadDays int
	now           func() time.Time
}

func NewCustomerService(customerRepo repository.CustomerRepository, rentalRepo repository.RentalRepository, lookaheadDays int) CustomerService {
	return &customerService{
		customerRepo:  customerRepo,
		rentalRepo:    rentalRepo,
		lookaheadDays: lookaheadDays,
		now:           time.Now,
	}
}

func validateCustomer(c *domain.Customer) error {
	if c.Name == "" {
		return invalid("name", "name is required")
	}
	if c.Email == "" || !strings.Contains(c.Email, "@") {
		return invalid("email", "a valid email is required")
	}
	if c.Phone == "" {
		return invalid("phone", "phone is required")
	}
	if !c.Status.Valid() {
		return invalid("status", "unknown status")
	}
	if !c.Type.Valid() {
		return invalid("type", "unknown customer type")
	}
	if c.Type == domain.CustomerTypeCompany && (c.Company == nil || *c.Company == "") {
		return invalid("company", "company name is required for company accounts")
	}
	return nil
}

func (s *customerService) Create(ctx context.Context, tenantID int32, c *domain.Customer) error {
	c.TenantID = tenantID
	if c.Status == "" {
		c.Status = domain.CustomerStatusActive
	}
	if c.Type == "" {
		c.Type = domain.CustomerTypeIndividual
	}
	if err := validateCustomer(c); err != nil {
		return err
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	return s.customerRepo.Create(ctx, c)
}

func (s *customerService) Get(ctx context.Context, tenantID, id int32) (*domain.Customer, *domain.CustomerStats, error) {
	c, err := s.customerRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, nil, err
	}
	rentals, err := s.rentalRepo.ListByCustomer(ctx, tenantID, id)
	if err != nil {
		return nil, nil, err
	}
	refreshRentalStatuses(rentals, s.now(), s.lookaheadDays)
	st := stats.CustomerStats(id, rentals)
	return c, &st, nil
}

func (s *customerService) Update(ctx context.Context, tenantID int32, c *domain.Customer) error {
	c.TenantID = tenantID
	if err := validateCustomer(c); err != nil {
		return err
	}
	return s.customerRepo.Update(ctx, c)
}

// Deactivate is the sanctioned way to retire a customer; the record and its
// rental history stay intact.
func (s *customerService) Deactivate(ctx context.Context, tenantID, id int32) error {
	c, err := s.customerRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if c.Status == domain.CustomerStatusInactive {
		return nil
	}
	c.Status = domain.CustomerStatusInactive
	return s.customerRepo.Update(ctx, c)
}

func (s *customerService) Delete(ctx context.Context, tenantID, id int32) error {
	open, err := s.rentalRepo.CountOpenByCustomer(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if open > 0 {
		return ErrCustomerHasOpenRentals
	}
	return s.customerRepo.Delete(ctx, tenantID, id)
}

func (s *customerService) List(ctx context.Context, tenantID int32, f filter.CustomerFilters) ([]domain.Customer, map[int32]domain.CustomerStats, error) {
	customers, err := s.customerRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}
	rentals, err := s.rentalRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}
	refreshRentalStatuses(rentals, s.now(), s.lookaheadDays)
	statsByID := stats.AllCustomerStats(customers, rentals)
	return filter.ApplyCustomers(customers, statsByID, f), statsByID, nil
}

func (s *customerService) Rentals(ctx context.Context, tenantID, customerID int32) ([]domain.Rental, error) {
	if _, err := s.customerRepo.GetByID(ctx, tenantID, customerID); err != nil {
		return nil, err
	}
	rentals, err := s.rentalRepo.ListByCustomer(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}
	refreshRentalStatuses(rentals, s.now(), s.lookaheadDays)
	return rentals, nil
}

func (s *customerService) KPIs(ctx context.Context, tenantID int32) (*domain.CustomerKPIs, error) {
	customers, statsByID, err := s.List(ctx, tenantID, filter.CustomerFilters{})
	if err != nil {
		return nil, err
	}
	k := stats.CustomerKPIs(customers, statsByID)
	return &k, nil
}

// Bulk delete skips customers with open rentals instead of failing the batch.
func (s *customerService) Bulk(ctx context.Context, tenantID int32, action BulkAction, ids []int32) (int64, error) {
	if len(ids) == 0 {
		return 0, invalid("ids", "at least one id is required")
	}
	switch action {
	case BulkActionActivate:
		return s.customerRepo.BulkSetStatus(ctx, tenantID, ids, domain.CustomerStatusActive)
	case BulkActionDeactivate:
		return s.customerRepo.BulkSetStatus(ctx, tenantID, ids, domain.CustomerStatusInactive)
	case BulkActionDelete:
		deletable := make([]int32, 0, len(ids))
		for _, id := range ids {
			open, err := s.rentalRepo.CountOpenByCustomer(ctx, tenantID, id)
			if err != nil {
				return 0, err
			}
			if open == 0 {
				deletable = append(deletable, id)
			}
		}
		if len(deletable) == 0 {
			return 0, nil
		}
		return s.customerRepo.BulkDelete(ctx, tenantID, deletable)
	default:
		return 0, ErrInvalidBulkAction
	}
}

func (s *customerService) ExportCSV(ctx context.Context, tenantID int32, f filter.CustomerFilters) (string, error) {
	customers, statsByID, err := s.List(ctx, tenantID, f)
	if err != nil {
		return "", err
	}
	return export.CustomersCSV(customers, statsByID)
}
