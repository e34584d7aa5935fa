package domain

import (
	"fmt"
	"time"
)

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

var CustomerStatuses = []CustomerStatus{CustomerStatusActive, CustomerStatusInactive}

func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive:
		return true
	}
	return false
}

func (s CustomerStatus) Label() string {
	switch s {
	case CustomerStatusActive:
		return "Active"
	case CustomerStatusInactive:
		return "Inactive"
	}
	return "Unknown"
}

type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "individual"
	CustomerTypeCompany    CustomerType = "company"
)

func (t CustomerType) Valid() bool {
	switch t {
	case CustomerTypeIndividual, CustomerTypeCompany:
		return true
	}
	return false
}

type Customer struct {
	ID                     int32          `json:"id"`
	TenantID               int32          `json:"tenant_id"`
	Name                   string         `json:"name"`
	Company                *string        `json:"company,omitempty"`
	Email                  string         `json:"email"`
	Phone                  string         `json:"phone"`
	Address                *string        `json:"address,omitempty"`
	Status                 CustomerStatus `json:"status"`
	Type                   CustomerType   `json:"type"`
	Notes                  string         `json:"notes"`
	PreferredPaymentMethod *string        `json:"preferred_payment_method,omitempty"`
	BillingInfo            *string        `json:"billing_info,omitempty"`
	Version                int32          `json:"version"`
	CreatedAt              time.Time      `json:"created_at"`
	LastActivity           *time.Time     `json:"last_activity,omitempty"`
}

func (c *Customer) Code() string {
	return fmt.Sprintf("CUST-%03d", c.ID)
}

// DisplayName prefers the company name for company accounts.
func (c *Customer) DisplayName() string {
	if c.Company != nil && *c.Company != "" {
		return *c.Company
	}
	return c.Name
}
