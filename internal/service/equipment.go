package service

import (
	"context"
	"time"

	"aris-backend/internal/domain"
	"aris-backend/internal/export"
	"aris-backend/internal/filter"
	"aris-backend/internal/repository"
	"aris-backend/internal/stats"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	rentalRepo    repository.RentalRepository
	now           func() time.Time
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, rentalRepo repository.RentalRepository) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		rentalRepo:    rentalRepo,
		now:           time.Now,
	}
}

func validateEquipment(eq *domain.Equipment) error {
	if eq.Name == "" {
		return invalid("name", "name is required")
	}
	if !eq.Type.Valid() {
		return invalid("type", "unknown equipment type")
	}
	if !eq.Condition.Valid() {
		return invalid("condition", "unknown condition")
	}
	if !eq.Status.Valid() {
		return invalid("status", "unknown status")
	}
	if eq.RatePerDayCents <= 0 {
		return invalid("rate_per_day", "daily rate must be positive")
	}
	if eq.SerialNumber == "" {
		return invalid("serial_number", "serial number is required")
	}
	return nil
}

func (s *equipmentService) Create(ctx context.Context, tenantID int32, eq *domain.Equipment) error {
	eq.TenantID = tenantID
	if eq.Status == "" {
		eq.Status = domain.EquipmentStatusAvailable
	}
	if err := validateEquipment(eq); err != nil {
		return err
	}
	// New items cannot start out rented; a rental booking is the only path
	// into that status.
	if eq.Status == domain.EquipmentStatusRented {
		return invalid("status", "new equipment cannot be created as rented")
	}
	return s.equipmentRepo.Create(ctx, eq)
}

func (s *equipmentService) Get(ctx context.Context, tenantID, id int32) (*domain.Equipment, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentalRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	eq.UtilizationPercent = stats.Utilization(eq, rentals, s.now())
	return eq, nil
}

func (s *equipmentService) Update(ctx context.Context, tenantID int32, eq *domain.Equipment) error {
	eq.TenantID = tenantID
	if err := validateEquipment(eq); err != nil {
		return err
	}

	current, err := s.equipmentRepo.GetByID(ctx, tenantID, eq.ID)
	if err != nil {
		return err
	}
	// Rented status is owned by the rental lifecycle; edits cannot move an
	// item into or out of it.
	if current.Status == domain.EquipmentStatusRented && eq.Status != domain.EquipmentStatusRented {
		return ErrEquipmentRented
	}
	if current.Status != domain.EquipmentStatusRented && eq.Status == domain.EquipmentStatusRented {
		return invalid("status", "equipment can only become rented through a rental")
	}
	eq.AssignedRenterID = current.AssignedRenterID

	return s.equipmentRepo.Update(ctx, eq)
}

func (s *equipmentService) Delete(ctx context.Context, tenantID, id int32) error {
	eq, err := s.equipmentRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if eq.Status == domain.EquipmentStatusRented {
		return ErrEquipmentRented
	}
	return s.equipmentRepo.Delete(ctx, tenantID, id)
}

func (s *equipmentService) List(ctx context.Context, tenantID int32, f filter.EquipmentFilters) ([]domain.Equipment, error) {
	items, err := s.equipmentRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentalRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	today := s.now()
	for i := range items {
		items[i].UtilizationPercent = stats.Utilization(&items[i], rentals, today)
	}
	return filter.ApplyEquipment(items, f), nil
}

func (s *equipmentService) KPIs(ctx context.Context, tenantID int32) (*domain.EquipmentKPIs, error) {
	items, err := s.List(ctx, tenantID, filter.EquipmentFilters{})
	if err != nil {
		return nil, err
	}
	k := stats.EquipmentKPIs(items)
	return &k, nil
}

// Bulk applies a sanctioned action to a selection. Rented items are skipped
// rather than failing the whole batch: they cannot be deleted, and their
// status is owned by the rental lifecycle. The returned count is the number
// of rows actually affected.
func (s *equipmentService) Bulk(ctx context.Context, tenantID int32, action BulkAction, ids []int32) (int64, error) {
	if len(ids) == 0 {
		return 0, invalid("ids", "at least one id is required")
	}
	switch action {
	case BulkActionDelete, BulkActionMarkAvailable, BulkActionMarkMaintenance:
	default:
		return 0, ErrInvalidBulkAction
	}

	eligible, err := s.nonRentedIDs(ctx, tenantID, ids)
	if err != nil {
		return 0, err
	}
	if len(eligible) == 0 {
		return 0, nil
	}
	switch action {
	case BulkActionDelete:
		return s.equipmentRepo.BulkDelete(ctx, tenantID, eligible)
	case BulkActionMarkAvailable:
		return s.equipmentRepo.BulkSetStatus(ctx, tenantID, eligible, domain.EquipmentStatusAvailable)
	default:
		return s.equipmentRepo.BulkSetStatus(ctx, tenantID, eligible, domain.EquipmentStatusMaintenance)
	}
}

func (s *equipmentService) nonRentedIDs(ctx context.Context, tenantID int32, ids []int32) ([]int32, error) {
	items, err := s.equipmentRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	rented := make(map[int32]bool)
	for _, eq := range items {
		if eq.Status == domain.EquipmentStatusRented {
			rented[eq.ID] = true
		}
	}
	out := make([]int32, 0, len(ids))
	for _, id := range ids {
		if !rented[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

func (s *equipmentService) ExportCSV(ctx context.Context, tenantID int32, f filter.EquipmentFilters) (string, error) {
	items, err := s.List(ctx, tenantID, f)
	if err != nil {
		return "", err
	}
	return export.EquipmentCSV(items)
}
