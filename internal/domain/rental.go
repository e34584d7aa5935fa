package domain

import (
	"fmt"
	"time"
)

type RentalStatus string

const (
	RentalStatusActive   RentalStatus = "active"
	RentalStatusDueSoon  RentalStatus = "due_soon"
	RentalStatusOverdue  RentalStatus = "overdue"
	RentalStatusReturned RentalStatus = "returned"
)

var RentalStatuses = []RentalStatus{
	RentalStatusActive,
	RentalStatusDueSoon,
	RentalStatusOverdue,
	RentalStatusReturned,
}

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusActive, RentalStatusDueSoon, RentalStatusOverdue, RentalStatusReturned:
		return true
	}
	return false
}

func (s RentalStatus) Label() string {
	switch s {
	case RentalStatusActive:
		return "Active"
	case RentalStatusDueSoon:
		return "Due Soon"
	case RentalStatusOverdue:
		return "Overdue"
	case RentalStatusReturned:
		return "Returned"
	}
	return "Unknown"
}

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusPartial:
		return true
	}
	return false
}

type Rental struct {
	ID       int32 `json:"id"`
	TenantID int32 `json:"tenant_id"`

	// Equipment and customer snapshot fields are captured at booking time and
	// intentionally never updated when the source records change.
	EquipmentID           int32   `json:"equipment_id"`
	EquipmentName         string  `json:"equipment_name"`
	EquipmentType         string  `json:"equipment_type"`
	EquipmentSerialNumber string  `json:"equipment_serial_number"`
	CustomerID            int32   `json:"customer_id"`
	CustomerName          string  `json:"customer_name"`
	CustomerCompany       *string `json:"customer_company,omitempty"`

	StartDate  time.Time  `json:"start_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`

	Status             RentalStatus  `json:"status"`
	RatePerDayCents    int32         `json:"rate_per_day_cents"`
	TotalDays          int32         `json:"total_days"`
	TotalCostCents     int32         `json:"total_cost_cents"`
	DepositCents       int32         `json:"deposit_cents"`
	PaymentStatus      PaymentStatus `json:"payment_status"`
	PaymentMethod      *string       `json:"payment_method,omitempty"`
	Notes              string        `json:"notes"`
	ReturnedWithDamage bool          `json:"returned_with_damage"`
	DamageNotes        *string       `json:"damage_notes,omitempty"`

	Version   int32  `json:"version"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

func (r *Rental) Code() string {
	return fmt.Sprintf("RNT-%03d", r.ID)
}

// Returned reports whether the rental has reached its terminal state.
func (r *Rental) Returned() bool {
	return r.ReturnDate != nil
}

// CustomerDisplayName prefers the company snapshot when present.
func (r *Rental) CustomerDisplayName() string {
	if r.CustomerCompany != nil && *r.CustomerCompany != "" {
		return *r.CustomerCompany
	}
	return r.CustomerName
}

// OutstandingCents is the unpaid amount this rental contributes to its
// customer's balance. Paid rentals contribute nothing; partial payments are
// reduced by the deposit and floored at zero.
func (r *Rental) OutstandingCents() int64 {
	switch r.PaymentStatus {
	case PaymentStatusPaid:
		return 0
	case PaymentStatusPartial:
		due := int64(r.TotalCostCents) - int64(r.DepositCents)
		if due < 0 {
			return 0
		}
		return due
	case PaymentStatusPending:
		return int64(r.TotalCostCents)
	}
	return 0
}
