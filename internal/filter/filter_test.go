package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"aris-backend/internal/domain"
	"aris-backend/internal/utils"
)

func day(s string) time.Time {
	t, err := utils.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

func testEquipment() []domain.Equipment {
	return []domain.Equipment{
		{ID: 1, Name: "CAT 320", Type: domain.EquipmentTypeExcavator, Status: domain.EquipmentStatusAvailable, Condition: domain.EquipmentConditionGood, Location: "Yard A"},
		{ID: 2, Name: "Honda EU7000", Type: domain.EquipmentTypeGenerator, Status: domain.EquipmentStatusRented, Condition: domain.EquipmentConditionFair, Location: "Yard B"},
		{ID: 3, Name: "Bobcat S650", Type: domain.EquipmentTypeLoader, Status: domain.EquipmentStatusMaintenance, Condition: domain.EquipmentConditionPoor, Location: "Yard A"},
		{ID: 4, Name: "CAT 336", Type: domain.EquipmentTypeExcavator, Status: domain.EquipmentStatusRented, Condition: domain.EquipmentConditionGood, Location: "Yard B"},
	}
}

func TestApplyEquipment(t *testing.T) {
	items := testEquipment()

	t.Run("NoFiltersReturnsAll", func(t *testing.T) {
		out := ApplyEquipment(items, EquipmentFilters{})
		assert.Len(t, out, 4)
	})

	t.Run("FiltersCompose", func(t *testing.T) {
		typ := domain.EquipmentTypeExcavator
		status := domain.EquipmentStatusRented
		out := ApplyEquipment(items, EquipmentFilters{Type: &typ, Status: &status})
		assert.Len(t, out, 1)
		assert.Equal(t, int32(4), out[0].ID)
	})

	t.Run("SearchMatchesCode", func(t *testing.T) {
		out := ApplyEquipment(items, EquipmentFilters{Search: "eq-003"})
		assert.Len(t, out, 1)
		assert.Equal(t, int32(3), out[0].ID)
	})

	t.Run("SearchIsCaseInsensitive", func(t *testing.T) {
		// "cat" hits both CAT excavators and the substring in "Bobcat S650"
		out := ApplyEquipment(items, EquipmentFilters{Search: "cat"})
		assert.Len(t, out, 3)

		out = ApplyEquipment(items, EquipmentFilters{Search: "HONDA"})
		assert.Len(t, out, 1)
		assert.Equal(t, int32(2), out[0].ID)
	})

	t.Run("InputUntouched", func(t *testing.T) {
		status := domain.EquipmentStatusAvailable
		_ = ApplyEquipment(items, EquipmentFilters{Status: &status})
		assert.Len(t, items, 4)
	})
}

func testRentals() []domain.Rental {
	return []domain.Rental{
		{ID: 1, Status: domain.RentalStatusActive, CustomerName: "Alice", EquipmentName: "CAT 320", EquipmentType: "Excavator", StartDate: day("2024-03-10"), DueDate: day("2024-03-25")},
		{ID: 2, Status: domain.RentalStatusOverdue, CustomerName: "Bob", CustomerCompany: strPtr("Bob Builders"), EquipmentName: "Honda EU7000", EquipmentType: "Generator", StartDate: day("2024-02-10"), DueDate: day("2024-03-01")},
		{ID: 3, Status: domain.RentalStatusDueSoon, CustomerName: "Carol", EquipmentName: "Bobcat S650", EquipmentType: "Loader", StartDate: day("2024-03-14"), DueDate: day("2024-03-16")},
		{ID: 4, Status: domain.RentalStatusReturned, CustomerName: "Alice", EquipmentName: "CAT 336", EquipmentType: "Excavator", StartDate: day("2024-01-05"), DueDate: day("2024-01-10")},
	}
}

func TestApplyRentals(t *testing.T) {
	rentals := testRentals()
	today := day("2024-03-15")

	t.Run("StatusViewsPartitionTheBook", func(t *testing.T) {
		// every rental appears in exactly one status view
		seen := map[int32]int{}
		for _, status := range domain.RentalStatuses {
			s := status
			for _, r := range ApplyRentals(rentals, RentalFilters{Status: &s}, today) {
				seen[r.ID]++
			}
		}
		assert.Len(t, seen, len(rentals))
		for id, n := range seen {
			assert.Equal(t, 1, n, "rental %d in %d views", id, n)
		}
	})

	t.Run("CustomerMatchesCompanySnapshot", func(t *testing.T) {
		out := ApplyRentals(rentals, RentalFilters{Customer: strPtr("Bob Builders")}, today)
		assert.Len(t, out, 1)
		assert.Equal(t, int32(2), out[0].ID)
	})

	t.Run("DateRangeBucketsByStartDate", func(t *testing.T) {
		w := utils.WindowThisWeek
		out := ApplyRentals(rentals, RentalFilters{DateRange: &w}, today)
		assert.Len(t, out, 1)
		assert.Equal(t, int32(3), out[0].ID)

		w = utils.WindowThisMonth
		out = ApplyRentals(rentals, RentalFilters{DateRange: &w}, today)
		assert.Len(t, out, 2)
	})

	t.Run("SearchMatchesEquipmentName", func(t *testing.T) {
		out := ApplyRentals(rentals, RentalFilters{Search: "bobcat"}, today)
		assert.Len(t, out, 1)
		assert.Equal(t, int32(3), out[0].ID)
	})
}

func testCustomers() ([]domain.Customer, map[int32]domain.CustomerStats) {
	t3 := day("2024-03-01")
	t1 := day("2024-01-15")
	customers := []domain.Customer{
		{ID: 1, Name: "Alice", Status: domain.CustomerStatusActive, Type: domain.CustomerTypeIndividual, Email: "alice@example.com", LastActivity: &t1},
		{ID: 2, Name: "Bob", Company: strPtr("Bob Builders"), Status: domain.CustomerStatusActive, Type: domain.CustomerTypeCompany, Email: "bob@example.com", LastActivity: &t3},
		{ID: 3, Name: "Carol", Status: domain.CustomerStatusInactive, Type: domain.CustomerTypeIndividual, Email: "carol@example.com"},
	}
	stats := map[int32]domain.CustomerStats{
		1: {CustomerID: 1, TotalRentals: 5, OutstandingBalanceCents: 40000},
		2: {CustomerID: 2, TotalRentals: 2, OutstandingBalanceCents: 90000},
		3: {CustomerID: 3, TotalRentals: 8, OutstandingBalanceCents: 0},
	}
	return customers, stats
}

func TestApplyCustomers(t *testing.T) {
	customers, stats := testCustomers()

	t.Run("DefaultOrderIsRecentActivityFirst", func(t *testing.T) {
		out := ApplyCustomers(customers, stats, CustomerFilters{})
		assert.Equal(t, []int32{2, 1, 3}, ids(out))
	})

	t.Run("BalanceSortDescending", func(t *testing.T) {
		s := SortByBalanceDesc
		out := ApplyCustomers(customers, stats, CustomerFilters{Sort: &s})
		assert.Equal(t, []int32{2, 1, 3}, ids(out))
	})

	t.Run("BalanceAscReversesBalanceDesc", func(t *testing.T) {
		asc, desc := SortByBalanceAsc, SortByBalanceDesc
		up := ApplyCustomers(customers, stats, CustomerFilters{Sort: &asc})
		down := ApplyCustomers(customers, stats, CustomerFilters{Sort: &desc})
		for i := range up {
			assert.Equal(t, down[len(down)-1-i].ID, up[i].ID)
		}
	})

	t.Run("RentalsSortDescending", func(t *testing.T) {
		s := SortByRentalsDesc
		out := ApplyCustomers(customers, stats, CustomerFilters{Sort: &s})
		assert.Equal(t, []int32{3, 1, 2}, ids(out))
	})

	t.Run("StatusAndSearchCompose", func(t *testing.T) {
		status := domain.CustomerStatusActive
		out := ApplyCustomers(customers, stats, CustomerFilters{Status: &status, Search: "builders"})
		assert.Equal(t, []int32{2}, ids(out))
	})
}

func ids(customers []domain.Customer) []int32 {
	out := make([]int32, 0, len(customers))
	for _, c := range customers {
		out = append(out, c.ID)
	}
	return out
}
