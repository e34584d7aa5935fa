package filter

import (
	"strings"
	"time"

	"aris-backend/internal/domain"
	"aris-backend/internal/utils"
)

type RentalFilters struct {
	Status        *domain.RentalStatus
	Customer      *string // matches the customer name or company snapshot
	EquipmentType *string
	DateRange     *utils.DateWindow // buckets by start date
	Search        string
}

// ApplyRentals filters the rental book. The date-range windows are evaluated
// against today, passed in explicitly so views are reproducible in tests.
func ApplyRentals(rentals []domain.Rental, f RentalFilters, today time.Time) []domain.Rental {
	out := make([]domain.Rental, 0, len(rentals))
	for _, r := range rentals {
		if f.Status != nil && r.Status != *f.Status {
			continue
		}
		if f.Customer != nil && r.CustomerName != *f.Customer &&
			(r.CustomerCompany == nil || *r.CustomerCompany != *f.Customer) {
			continue
		}
		if f.EquipmentType != nil && r.EquipmentType != *f.EquipmentType {
			continue
		}
		if f.DateRange != nil && !utils.InWindow(*f.DateRange, r.StartDate, today) {
			continue
		}
		if f.Search != "" && !rentalMatches(&r, f.Search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func rentalMatches(r *domain.Rental, search string) bool {
	search = strings.ToLower(search)
	company := ""
	if r.CustomerCompany != nil {
		company = *r.CustomerCompany
	}
	return containsFold(r.Code(), search) ||
		containsFold(r.EquipmentName, search) ||
		containsFold(r.CustomerName, search) ||
		containsFold(company, search)
}
