// Package export serializes filtered entity views to CSV for download. Column
// sets and order are fixed per entity type.
package export

import (
	"fmt"

	"github.com/gocarina/gocsv"

	"aris-backend/internal/domain"
	"aris-backend/internal/utils"
)

type equipmentRow struct {
	ID          string `csv:"ID"`
	Name        string `csv:"Name"`
	Type        string `csv:"Type"`
	Condition   string `csv:"Condition"`
	Status      string `csv:"Status"`
	Location    string `csv:"Location"`
	RatePerDay  string `csv:"Rate/Day"`
	Utilization int32  `csv:"Utilization"`
}

type rentalRow struct {
	RentalID  string `csv:"Rental ID"`
	Equipment string `csv:"Equipment"`
	Customer  string `csv:"Customer"`
	StartDate string `csv:"Start Date"`
	DueDate   string `csv:"Due Date"`
	Status    string `csv:"Status"`
	Total     string `csv:"Total"`
}

type customerRow struct {
	Customer           string `csv:"Customer"`
	Company            string `csv:"Company"`
	ActiveRentals      int32  `csv:"Active Rentals"`
	TotalRentals       int32  `csv:"Total Rentals"`
	OutstandingBalance string `csv:"Outstanding Balance"`
	LastActivity       string `csv:"Last Activity"`
	Status             string `csv:"Status"`
}

// EquipmentCSV renders the filtered fleet view, one row per item.
func EquipmentCSV(items []domain.Equipment) (string, error) {
	rows := make([]*equipmentRow, 0, len(items))
	for i := range items {
		eq := &items[i]
		rows = append(rows, &equipmentRow{
			ID:          eq.Code(),
			Name:        eq.Name,
			Type:        string(eq.Type),
			Condition:   string(eq.Condition),
			Status:      string(eq.Status),
			Location:    eq.Location,
			RatePerDay:  dollars(int64(eq.RatePerDayCents)),
			Utilization: eq.UtilizationPercent,
		})
	}
	return gocsv.MarshalString(&rows)
}

// RentalsCSV renders the filtered rental view.
func RentalsCSV(rentals []domain.Rental) (string, error) {
	rows := make([]*rentalRow, 0, len(rentals))
	for i := range rentals {
		r := &rentals[i]
		rows = append(rows, &rentalRow{
			RentalID:  r.Code(),
			Equipment: r.EquipmentName,
			Customer:  r.CustomerDisplayName(),
			StartDate: r.StartDate.Format(utils.DayFormat),
			DueDate:   r.DueDate.Format(utils.DayFormat),
			Status:    string(r.Status),
			Total:     dollars(int64(r.TotalCostCents)),
		})
	}
	return gocsv.MarshalString(&rows)
}

// CustomersCSV renders the filtered customer view with its derived stats.
func CustomersCSV(customers []domain.Customer, statsByID map[int32]domain.CustomerStats) (string, error) {
	rows := make([]*customerRow, 0, len(customers))
	for i := range customers {
		c := &customers[i]
		s := statsByID[c.ID]
		company := ""
		if c.Company != nil {
			company = *c.Company
		}
		lastActivity := ""
		if c.LastActivity != nil {
			lastActivity = c.LastActivity.Format(utils.DayFormat)
		}
		rows = append(rows, &customerRow{
			Customer:           c.Name,
			Company:            company,
			ActiveRentals:      s.ActiveRentals,
			TotalRentals:       s.TotalRentals,
			OutstandingBalance: dollars(s.OutstandingBalanceCents),
			LastActivity:       lastActivity,
			Status:             string(c.Status),
		})
	}
	return gocsv.MarshalString(&rows)
}

func dollars(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
