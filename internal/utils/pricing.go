package utils

import (
	"fmt"
	"time"

	"aris-backend/internal/domain"
)

// DayFormat is the wire format for calendar dates.
const DayFormat = "2006-01-02"

// ParseDay parses a yyyy-mm-dd string into a UTC midnight time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd: %w", s, err)
	}
	return t, nil
}

// Day truncates a time to its UTC calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RentalDays counts the billable days of a rental. Both the start and the due
// date are billed, so a rental from Jan 1 to Jan 5 is five days.
func RentalDays(start, due time.Time) (int32, error) {
	start, due = Day(start), Day(due)
	if due.Before(start) {
		return 0, fmt.Errorf("due date %s is before start date %s",
			due.Format(DayFormat), start.Format(DayFormat))
	}
	days := int32(due.Sub(start).Hours()/24) + 1
	return days, nil
}

// RentalCostCents is the exact total for a day count at a daily rate.
func RentalCostCents(days, ratePerDayCents int32) int32 {
	return days * ratePerDayCents
}

// DeriveRentalStatus classifies a rental relative to "today". The lookahead
// window (in days) controls when an active rental becomes due_soon. Returned
// is terminal and always wins.
func DeriveRentalStatus(r *domain.Rental, today time.Time, lookaheadDays int) domain.RentalStatus {
	if r.Returned() {
		return domain.RentalStatusReturned
	}
	today = Day(today)
	due := Day(r.DueDate)
	if today.After(due) {
		return domain.RentalStatusOverdue
	}
	if !due.After(today.AddDate(0, 0, lookaheadDays)) {
		return domain.RentalStatusDueSoon
	}
	return domain.RentalStatusActive
}
