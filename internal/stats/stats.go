// Package stats computes the derived aggregate views: per-customer rollups,
// dashboard KPI summaries, and equipment utilization. Everything here is a
// pure function over in-memory collections and is recomputed on every read.
package stats

import (
	"time"

	"aris-backend/internal/domain"
	"aris-backend/internal/utils"
)

// CustomerStats rolls up one customer's rental history. Active counts include
// due_soon rentals since those are still out in the field.
func CustomerStats(customerID int32, rentals []domain.Rental) domain.CustomerStats {
	s := domain.CustomerStats{CustomerID: customerID}
	for _, r := range rentals {
		if r.CustomerID != customerID {
			continue
		}
		s.TotalRentals++
		if r.Status == domain.RentalStatusActive || r.Status == domain.RentalStatusDueSoon {
			s.ActiveRentals++
		}
		s.OutstandingBalanceCents += r.OutstandingCents()
		if r.PaymentStatus == domain.PaymentStatusPaid {
			s.TotalSpentCents += int64(r.TotalCostCents)
		}
	}
	if s.TotalRentals > 0 {
		s.AverageRentalValueCents = s.TotalSpentCents / int64(s.TotalRentals)
	}
	return s
}

// AllCustomerStats computes stats for every customer, keyed by id.
func AllCustomerStats(customers []domain.Customer, rentals []domain.Rental) map[int32]domain.CustomerStats {
	out := make(map[int32]domain.CustomerStats, len(customers))
	for _, c := range customers {
		out[c.ID] = CustomerStats(c.ID, rentals)
	}
	return out
}

// RentalKPIs summarizes the rental book relative to today. Revenue counts
// paid rentals that started in the current calendar month.
func RentalKPIs(rentals []domain.Rental, today time.Time) domain.RentalKPIs {
	today = utils.Day(today)
	weekOut := today.AddDate(0, 0, 7)
	monthStart := utils.StartOfMonth(today)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var k domain.RentalKPIs
	for _, r := range rentals {
		switch r.Status {
		case domain.RentalStatusActive:
			k.Active++
		case domain.RentalStatusOverdue:
			k.Overdue++
		}
		if r.Status == domain.RentalStatusActive || r.Status == domain.RentalStatusDueSoon {
			due := utils.Day(r.DueDate)
			if !due.Before(today) && !due.After(weekOut) {
				k.DueThisWeek++
			}
		}
		if r.PaymentStatus == domain.PaymentStatusPaid {
			start := utils.Day(r.StartDate)
			if !start.Before(monthStart) && start.Before(nextMonth) {
				k.RevenueMonthCents += int64(r.TotalCostCents)
			}
		}
	}
	return k
}

// EquipmentKPIs summarizes the fleet.
func EquipmentKPIs(items []domain.Equipment) domain.EquipmentKPIs {
	var k domain.EquipmentKPIs
	var utilSum int64
	for _, eq := range items {
		k.Total++
		utilSum += int64(eq.UtilizationPercent)
		switch eq.Status {
		case domain.EquipmentStatusAvailable:
			k.Available++
		case domain.EquipmentStatusRented:
			k.Rented++
		case domain.EquipmentStatusMaintenance:
			k.Maintenance++
		}
	}
	if k.Total > 0 {
		k.AverageUtilization = int32(utilSum / int64(k.Total))
	}
	return k
}

// CustomerKPIs summarizes the customer base from the derived rollups.
func CustomerKPIs(customers []domain.Customer, statsByID map[int32]domain.CustomerStats) domain.CustomerKPIs {
	var k domain.CustomerKPIs
	var topRentals int32 = -1
	for _, c := range customers {
		k.Total++
		if c.Status == domain.CustomerStatusActive {
			k.Active++
		}
		s := statsByID[c.ID]
		k.TotalRentals += s.TotalRentals
		k.OutstandingBalanceCents += s.OutstandingBalanceCents
		if s.TotalRentals > topRentals {
			topRentals = s.TotalRentals
			k.TopCustomerName = c.DisplayName()
		}
	}
	if k.Total > 0 {
		k.AverageRentals = (k.TotalRentals + k.Total/2) / k.Total // rounded
	}
	return k
}

// Utilization is the percentage of days an equipment item has been out on
// rent since its purchase date, clamped to [0, 100]. Open rentals count up
// to today.
func Utilization(eq *domain.Equipment, rentals []domain.Rental, today time.Time) int32 {
	today = utils.Day(today)
	purchased, err := utils.ParseDay(eq.PurchaseDate)
	if err != nil || !purchased.Before(today) {
		return 0
	}
	ownedDays := int64(today.Sub(purchased).Hours() / 24)

	var rentedDays int64
	for _, r := range rentals {
		if r.EquipmentID != eq.ID {
			continue
		}
		start := utils.Day(r.StartDate)
		end := today
		if r.ReturnDate != nil {
			end = utils.Day(*r.ReturnDate)
		} else if utils.Day(r.DueDate).Before(today) {
			// overdue rentals keep accruing until returned
			end = today
		}
		if end.After(today) {
			end = today
		}
		if end.Before(start) {
			continue
		}
		rentedDays += int64(end.Sub(start).Hours()/24) + 1
	}

	pct := rentedDays * 100 / ownedDays
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return int32(pct)
}
