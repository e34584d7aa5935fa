package filter

import (
	"sort"
	"strings"

	"aris-backend/internal/domain"
)

type CustomerSort string

const (
	SortByName        CustomerSort = "name"
	SortByBalanceDesc CustomerSort = "balance"
	SortByBalanceAsc  CustomerSort = "balance_low"
	SortByRentalsDesc CustomerSort = "rentals"
)

func (s CustomerSort) Valid() bool {
	switch s {
	case SortByName, SortByBalanceDesc, SortByBalanceAsc, SortByRentalsDesc:
		return true
	}
	return false
}

type CustomerFilters struct {
	Status *domain.CustomerStatus
	Type   *domain.CustomerType
	Sort   *CustomerSort
	Search string
}

// ApplyCustomers filters and orders the customer view. Balance and rental
// sorts read from the derived stats, keyed by customer id. With no explicit
// sort the view orders by most recent activity, records without one last.
func ApplyCustomers(customers []domain.Customer, stats map[int32]domain.CustomerStats, f CustomerFilters) []domain.Customer {
	out := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if f.Status != nil && c.Status != *f.Status {
			continue
		}
		if f.Type != nil && c.Type != *f.Type {
			continue
		}
		if f.Search != "" && !customerMatches(&c, f.Search) {
			continue
		}
		out = append(out, c)
	}

	if f.Sort != nil {
		sortCustomers(out, stats, *f.Sort)
	} else {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].LastActivity, out[j].LastActivity
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.After(*b)
		})
	}
	return out
}

func sortCustomers(customers []domain.Customer, stats map[int32]domain.CustomerStats, key CustomerSort) {
	balance := func(c *domain.Customer) int64 { return stats[c.ID].OutstandingBalanceCents }
	rentals := func(c *domain.Customer) int32 { return stats[c.ID].TotalRentals }

	sort.SliceStable(customers, func(i, j int) bool {
		a, b := &customers[i], &customers[j]
		switch key {
		case SortByName:
			return a.Name < b.Name
		case SortByBalanceDesc:
			return balance(a) > balance(b)
		case SortByBalanceAsc:
			return balance(a) < balance(b)
		case SortByRentalsDesc:
			return rentals(a) > rentals(b)
		}
		return false
	})
}

func customerMatches(c *domain.Customer, search string) bool {
	search = strings.ToLower(search)
	company := ""
	if c.Company != nil {
		company = *c.Company
	}
	return containsFold(c.Name, search) ||
		containsFold(company, search) ||
		containsFold(c.Email, search) ||
		containsFold(c.Phone, search)
}
