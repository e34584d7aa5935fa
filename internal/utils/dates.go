package utils

import "time"

// DateWindow names a rental date-range bucket. Windows are half-open
// [From, To) and are computed against the calendar at evaluation time.
type DateWindow string

const (
	WindowThisWeek    DateWindow = "this_week"
	WindowThisMonth   DateWindow = "this_month"
	WindowLastMonth   DateWindow = "last_month"
	WindowThisQuarter DateWindow = "this_quarter"
)

func (w DateWindow) Valid() bool {
	switch w {
	case WindowThisWeek, WindowThisMonth, WindowLastMonth, WindowThisQuarter:
		return true
	}
	return false
}

// StartOfWeek returns the Monday of the week containing t. Weeks start on
// Monday (ISO 8601); the original relied on the locale default, which is
// fixed here explicitly.
func StartOfWeek(t time.Time) time.Time {
	t = Day(t)
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return t.AddDate(0, 0, -offset)
}

// StartOfMonth returns the first day of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// StartOfQuarter returns the first day of the calendar quarter containing t.
func StartOfQuarter(t time.Time) time.Time {
	qm := time.Month((int(t.Month())-1)/3*3 + 1)
	return time.Date(t.Year(), qm, 1, 0, 0, 0, 0, time.UTC)
}

// WindowBounds resolves a named window to its half-open [from, to) range
// relative to today. The zero To of open-ended windows is today+1 day so that
// today itself is always included.
func WindowBounds(w DateWindow, today time.Time) (from, to time.Time) {
	today = Day(today)
	tomorrow := today.AddDate(0, 0, 1)
	switch w {
	case WindowThisWeek:
		return StartOfWeek(today), tomorrow
	case WindowThisMonth:
		return StartOfMonth(today), tomorrow
	case WindowLastMonth:
		thisMonth := StartOfMonth(today)
		return thisMonth.AddDate(0, -1, 0), thisMonth
	case WindowThisQuarter:
		return StartOfQuarter(today), tomorrow
	}
	return time.Time{}, tomorrow
}

// InWindow reports whether a date falls inside the named window.
func InWindow(w DateWindow, date, today time.Time) bool {
	from, to := WindowBounds(w, today)
	date = Day(date)
	return !date.Before(from) && date.Before(to)
}
