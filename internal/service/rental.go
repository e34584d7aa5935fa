package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"aris-backend/internal/domain"
	"aris-backend/internal/export"
	"aris-backend/internal/filter"
	"aris-backend/internal/logger"
	"aris-backend/internal/repository"
	"aris-backend/internal/stats"
	"aris-backend/internal/utils"
)

type rentalService struct {
	rentalRepo    repository.RentalRepository
	equipmentRepo repository.EquipmentRepository
	customerRepo  repository.CustomerRepository
	invoiceRepo   repository.InvoiceRepository
	emailSvc      EmailService
	lookaheadDays int
	now           func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	equipmentRepo repository.EquipmentRepository,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	emailSvc EmailService,
	lookaheadDays int,
) RentalService {
	return &rentalService{
		rentalRepo:    rentalRepo,
		equipmentRepo: equipmentRepo,
		customerRepo:  customerRepo,
		invoiceRepo:   invoiceRepo,
		emailSvc:      emailSvc,
		lookaheadDays: lookaheadDays,
		now:           time.Now,
	}
}

// refreshRentalStatuses re-derives each open rental's status against today.
// Stored statuses are a cache kept fresh by the nightly jobs; reads never
// trust them across a date boundary.
func refreshRentalStatuses(rentals []domain.Rental, today time.Time, lookaheadDays int) {
	for i := range rentals {
		rentals[i].Status = utils.DeriveRentalStatus(&rentals[i], today, lookaheadDays)
	}
}

func (s *rentalService) Create(ctx context.Context, tenantID int32, in CreateRentalInput) (*domain.Rental, error) {
	if in.StartDate.IsZero() {
		return nil, invalid("start_date", "start date is required")
	}
	if in.DueDate.IsZero() {
		return nil, invalid("due_date", "due date is required")
	}
	days, err := utils.RentalDays(in.StartDate, in.DueDate)
	if err != nil {
		return nil, invalid("due_date", err.Error())
	}
	if in.DepositCents < 0 {
		return nil, invalid("deposit", "deposit cannot be negative")
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = domain.PaymentStatusPending
	}
	if !in.PaymentStatus.Valid() {
		return nil, invalid("payment_status", "unknown payment status")
	}

	eq, err := s.equipmentRepo.GetByID(ctx, tenantID, in.EquipmentID)
	if err != nil {
		return nil, err
	}
	if eq.Status != domain.EquipmentStatusAvailable {
		return nil, repository.ErrEquipmentUnavailable
	}

	customer, err := s.customerRepo.GetByID(ctx, tenantID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer.Status != domain.CustomerStatusActive {
		return nil, invalid("customer_id", "customer is inactive")
	}

	rental := &domain.Rental{
		TenantID:              tenantID,
		EquipmentID:           eq.ID,
		EquipmentName:         eq.Name,
		EquipmentType:         string(eq.Type),
		EquipmentSerialNumber: eq.SerialNumber,
		CustomerID:            customer.ID,
		CustomerName:          customer.Name,
		CustomerCompany:       customer.Company,
		StartDate:             utils.Day(in.StartDate),
		DueDate:               utils.Day(in.DueDate),
		RatePerDayCents:       eq.RatePerDayCents,
		TotalDays:             days,
		TotalCostCents:        utils.RentalCostCents(days, eq.RatePerDayCents),
		DepositCents:          in.DepositCents,
		PaymentStatus:         in.PaymentStatus,
		PaymentMethod:         in.PaymentMethod,
		Notes:                 in.Notes,
	}
	rental.Status = utils.DeriveRentalStatus(rental, s.now(), s.lookaheadDays)

	if err := s.rentalRepo.CreateWithEquipment(ctx, rental); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "rental created",
		"tenant_id", tenantID, "rental_id", rental.ID,
		"equipment_id", eq.ID, "customer_id", customer.ID,
		"total_cents", rental.TotalCostCents)
	return rental, nil
}

func (s *rentalService) Get(ctx context.Context, tenantID, id int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	rental.Status = utils.DeriveRentalStatus(rental, s.now(), s.lookaheadDays)
	return rental, nil
}

func (s *rentalService) List(ctx context.Context, tenantID int32, f filter.RentalFilters) ([]domain.Rental, error) {
	rentals, err := s.rentalRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	today := s.now()
	refreshRentalStatuses(rentals, today, s.lookaheadDays)
	return filter.ApplyRentals(rentals, f, today), nil
}

func (s *rentalService) Return(ctx context.Context, tenantID, id int32, in ReturnRentalInput) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if rental.Returned() {
		return nil, ErrAlreadyReturned
	}

	returnDate := in.ReturnDate
	if returnDate.IsZero() {
		returnDate = s.now()
	}
	returnDate = utils.Day(returnDate)

	rental.ReturnDate = &returnDate
	rental.Status = domain.RentalStatusReturned
	rental.ReturnedWithDamage = in.WithDamage
	rental.DamageNotes = in.DamageNotes
	if in.PaymentStatus != nil {
		if !in.PaymentStatus.Valid() {
			return nil, invalid("payment_status", "unknown payment status")
		}
		rental.PaymentStatus = *in.PaymentStatus
	}

	if err := s.rentalRepo.ReturnWithEquipment(ctx, rental); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "rental returned",
		"tenant_id", tenantID, "rental_id", rental.ID,
		"with_damage", rental.ReturnedWithDamage)

	if s.emailSvc != nil {
		if customer, err := s.customerRepo.GetByID(ctx, tenantID, rental.CustomerID); err == nil {
			if err := s.emailSvc.SendReturnReceipt(ctx, customer.Email, customer.DisplayName(),
				rental.EquipmentName, rental.Code(), int64(rental.TotalCostCents)); err != nil {
				logger.WarnContext(ctx, "return receipt not sent",
					"rental_id", rental.ID, "error", err)
			}
		}
	}
	return rental, nil
}

// Extend moves the due date forward and reprices the rental at its original
// daily rate. The due date only ever moves later.
func (s *rentalService) Extend(ctx context.Context, tenantID, id int32, newDueDate time.Time) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if rental.Returned() {
		return nil, ErrAlreadyReturned
	}

	newDueDate = utils.Day(newDueDate)
	if !newDueDate.After(utils.Day(rental.DueDate)) {
		return nil, ErrDueDateNotExtended
	}

	days, err := utils.RentalDays(rental.StartDate, newDueDate)
	if err != nil {
		return nil, invalid("due_date", err.Error())
	}
	rental.DueDate = newDueDate
	rental.TotalDays = days
	rental.TotalCostCents = utils.RentalCostCents(days, rental.RatePerDayCents)
	rental.Status = utils.DeriveRentalStatus(rental, s.now(), s.lookaheadDays)

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "rental extended",
		"tenant_id", tenantID, "rental_id", rental.ID,
		"due_date", newDueDate.Format(utils.DayFormat), "total_days", days)
	return rental, nil
}

func (s *rentalService) UpdatePayment(ctx context.Context, tenantID, id int32, status domain.PaymentStatus, method *string) (*domain.Rental, error) {
	if !status.Valid() {
		return nil, invalid("payment_status", "unknown payment status")
	}
	rental, err := s.rentalRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	rental.PaymentStatus = status
	if method != nil {
		rental.PaymentMethod = method
	}
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

// GenerateInvoice issues an invoice for a completed rental. Open rentals
// cannot be invoiced; their total can still change through extension.
func (s *rentalService) GenerateInvoice(ctx context.Context, tenantID, rentalID int32) (*domain.Invoice, error) {
	rental, err := s.rentalRepo.GetByID(ctx, tenantID, rentalID)
	if err != nil {
		return nil, err
	}
	if !rental.Returned() {
		return nil, ErrNotReturned
	}
	inv := &domain.Invoice{
		TenantID:      tenantID,
		RentalID:      rental.ID,
		InvoiceNumber: uuid.NewString(),
		AmountCents:   rental.TotalCostCents,
		IssuedOn:      s.now(),
	}
	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *rentalService) KPIs(ctx context.Context, tenantID int32) (*domain.RentalKPIs, error) {
	rentals, err := s.rentalRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	today := s.now()
	refreshRentalStatuses(rentals, today, s.lookaheadDays)
	k := stats.RentalKPIs(rentals, today)
	return &k, nil
}

func (s *rentalService) ExportCSV(ctx context.Context, tenantID int32, f filter.RentalFilters) (string, error) {
	rentals, err := s.List(ctx, tenantID, f)
	if err != nil {
		return "", err
	}
	return export.RentalsCSV(rentals)
}
