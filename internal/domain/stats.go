package domain

// CustomerStats is derived from the rental collection on every read and is
// never persisted.
type CustomerStats struct {
	CustomerID              int32 `json:"customer_id"`
	ActiveRentals           int32 `json:"active_rentals"`
	TotalRentals            int32 `json:"total_rentals"`
	OutstandingBalanceCents int64 `json:"outstanding_balance_cents"`
	TotalSpentCents         int64 `json:"total_spent_cents"`
	AverageRentalValueCents int64 `json:"average_rental_value_cents"`
}

// RentalKPIs summarizes a tenant's rental book for the dashboard cards.
type RentalKPIs struct {
	Active            int32 `json:"active"`
	DueThisWeek       int32 `json:"due_this_week"`
	Overdue           int32 `json:"overdue"`
	RevenueMonthCents int64 `json:"revenue_month_cents"`
}

// EquipmentKPIs summarizes the fleet.
type EquipmentKPIs struct {
	Total              int32 `json:"total"`
	Available          int32 `json:"available"`
	Rented             int32 `json:"rented"`
	Maintenance        int32 `json:"maintenance"`
	AverageUtilization int32 `json:"average_utilization"`
}

// CustomerKPIs summarizes the customer base.
type CustomerKPIs struct {
	Total                   int32  `json:"total"`
	Active                  int32  `json:"active"`
	TotalRentals            int32  `json:"total_rentals"`
	AverageRentals          int32  `json:"average_rentals"`
	TopCustomerName         string `json:"top_customer_name"`
	OutstandingBalanceCents int64  `json:"outstanding_balance_cents"`
}
