package domain

import "fmt"

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "available"
	EquipmentStatusRented      EquipmentStatus = "rented"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
)

// EquipmentStatuses lists every status in a fixed order, used for
// partitioning views and for exhaustive validation.
var EquipmentStatuses = []EquipmentStatus{
	EquipmentStatusAvailable,
	EquipmentStatusRented,
	EquipmentStatusMaintenance,
}

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentStatusAvailable, EquipmentStatusRented, EquipmentStatusMaintenance:
		return true
	}
	return false
}

func (s EquipmentStatus) Label() string {
	switch s {
	case EquipmentStatusAvailable:
		return "Available"
	case EquipmentStatusRented:
		return "Rented"
	case EquipmentStatusMaintenance:
		return "Maintenance"
	}
	return "Unknown"
}

type EquipmentCondition string

const (
	EquipmentConditionGood EquipmentCondition = "good"
	EquipmentConditionFair EquipmentCondition = "fair"
	EquipmentConditionPoor EquipmentCondition = "poor"
)

func (c EquipmentCondition) Valid() bool {
	switch c {
	case EquipmentConditionGood, EquipmentConditionFair, EquipmentConditionPoor:
		return true
	}
	return false
}

type EquipmentType string

const (
	EquipmentTypeExcavator   EquipmentType = "Excavator"
	EquipmentTypeLoader      EquipmentType = "Loader"
	EquipmentTypeGenerator   EquipmentType = "Generator"
	EquipmentTypeCompactor   EquipmentType = "Compactor"
	EquipmentTypeDozer       EquipmentType = "Dozer"
	EquipmentTypeCrane       EquipmentType = "Crane"
	EquipmentTypeForklift    EquipmentType = "Forklift"
	EquipmentTypeScaffolding EquipmentType = "Scaffolding"
	EquipmentTypeOther       EquipmentType = "Other"
)

func (t EquipmentType) Valid() bool {
	switch t {
	case EquipmentTypeExcavator, EquipmentTypeLoader, EquipmentTypeGenerator,
		EquipmentTypeCompactor, EquipmentTypeDozer, EquipmentTypeCrane,
		EquipmentTypeForklift, EquipmentTypeScaffolding, EquipmentTypeOther:
		return true
	}
	return false
}

type Equipment struct {
	ID                  int32              `json:"id"`
	TenantID            int32              `json:"tenant_id"`
	Name                string             `json:"name"`
	Type                EquipmentType      `json:"type"`
	Condition           EquipmentCondition `json:"condition"`
	Status              EquipmentStatus    `json:"status"`
	Location            string             `json:"location"`
	RatePerDayCents     int32              `json:"rate_per_day_cents"`
	UtilizationPercent  int32              `json:"utilization_percent"`
	SerialNumber        string             `json:"serial_number"`
	PurchaseDate        string             `json:"purchase_date"`
	LastMaintenanceDate *string            `json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate *string            `json:"next_maintenance_date,omitempty"`
	// AssignedRenterID is set exactly when Status is rented.
	AssignedRenterID *int32  `json:"assigned_renter_id,omitempty"`
	Notes            string  `json:"notes"`
	PhotoURL         *string `json:"photo_url,omitempty"`
	Version          int32   `json:"version"`
	CreatedOn        string  `json:"created_on"`
	UpdatedOn        string  `json:"updated_on"`
}

// Code is the display identifier shown in tables and exports.
func (e *Equipment) Code() string {
	return fmt.Sprintf("EQ-%03d", e.ID)
}
