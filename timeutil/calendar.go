package timeutil

import "time"

const day = 24 * time.Hour

// Date returns midnight UTC of the calendar day (y, m, d) without
// normalizing overflow; callers validate with IsValidDate first.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the calendar day of c.Now() in the clock's location,
// expressed as midnight UTC so day arithmetic ignores DST shifts.
func Today(c Clock) time.Time {
	y, m, d := OrDefault(c).Now().Date()
	return Date(y, m, d)
}

// IsValidDate reports whether (y, m, d) is a real Gregorian calendar day.
func IsValidDate(y int, m time.Month, d int) bool {
	if y < 1 || m < time.January || m > time.December || d < 1 {
		return false
	}
	t := Date(y, m, d)
	return t.Year() == y && t.Month() == m && t.Day() == d
}

// IsLeapYear reports whether y has a February 29.
func IsLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// Anniversary returns the occurrence of (m, d) in year y. February 29 is
// observed on February 28 in non-leap years.
func Anniversary(y int, m time.Month, d int) time.Time {
	if m == time.February && d == 29 && !IsLeapYear(y) {
		d = 28
	}
	return Date(y, m, d)
}

// DaysBetween returns the number of whole calendar days from a to b.
// Both values are truncated to their UTC calendar day first.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return int(Date(by, bm, bd).Sub(Date(ay, am, ad)) / day)
}

// DaysUntilAnniversary returns how many days are left from today until the
// next occurrence of (m, d), zero when it falls on today.
func DaysUntilAnniversary(today time.Time, m time.Month, d int) int {
	y, _, _ := today.Date()
	from := Date(today.Date())
	next := Anniversary(y, m, d)
	if next.Before(from) {
		next = Anniversary(y+1, m, d)
	}
	return DaysBetween(from, next)
}
