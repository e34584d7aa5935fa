package domain

import "time"

// Invoice is the only record that may be produced against a returned rental.
type Invoice struct {
	ID            int32     `json:"id"`
	TenantID      int32     `json:"tenant_id"`
	RentalID      int32     `json:"rental_id"`
	InvoiceNumber string    `json:"invoice_number"`
	AmountCents   int32     `json:"amount_cents"`
	IssuedOn      time.Time `json:"issued_on"`
}
