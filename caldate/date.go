// Package caldate implements the civil-date primitives the rest of
// fincal is built on: a date is a signed day count since the Unix
// epoch, with no time-of-day or timezone component.
package caldate

import "time"

// Date is a civil calendar day, stored as a signed day count since
// 1970-01-01. It carries no time-of-day or timezone information.
type Date int32

// epoch is the zero value of the Date count, 1970-01-01 UTC.
var epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Of builds a Date from a proleptic Gregorian year/month/day triple.
func Of(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime truncates t to its civil date and converts it to a Date.
// The timezone of t is honored for the truncation; the result itself
// carries no timezone.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	days := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Sub(epoch).Hours() / 24
	return Date(days)
}

// Time returns the UTC midnight instant for d, for interop with APIs
// that still expect a time.Time.
func (d Date) Time() time.Time {
	return epoch.AddDate(0, 0, int(d))
}

// Year returns the proleptic Gregorian year of d.
func (d Date) Year() int {
	y, _, _ := d.Time().Date()
	return y
}

// Month returns the calendar month of d, 1 (January) through 12 (December).
func (d Date) Month() int {
	_, m, _ := d.Time().Date()
	return int(m)
}

// Day returns the day-of-month of d.
func (d Date) Day() int {
	_, _, day := d.Time().Date()
	return day
}

// Weekday returns d's day of the week, 0 = Monday ... 6 = Sunday, matching
// the index convention of a Weekmask.
func (d Date) Weekday() int {
	return (int(d.Time().Weekday()) + 6) % 7
}

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return d + Date(n)
}

// AddMonths returns d's month-anchor (first of month) shifted by n
// months, still truncated to the first of its month. Callers clamp the
// day-of-month back in with AddClampedDay.
func (d Date) AddMonths(n int) Date {
	y, m, _ := d.Time().Date()
	return FromTime(time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0))
}

// AddYears behaves like AddMonths(12 * n).
func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d < o }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d > o }

// IsLeap reports whether year is a leap year in the proleptic
// Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysInMonth returns the length of the given month, using the
// parity rule: month is odd and at most July, or even and above July,
// implies a 31-day month. July (7, odd, at most 7) and August (8,
// even, above 7) both come out as 31 days under this rule; February
// is handled separately via IsLeap.
func daysInMonth(year, month int) int {
	if month == 2 {
		if IsLeap(year) {
			return 29
		}
		return 28
	}
	odd := month%2 == 1
	if (odd && month <= 7) || (!odd && month > 7) {
		return 31
	}
	return 30
}

// IsLastDayOfFeb reports whether d falls on the last day of February
// in its year (the 28th, or the 29th in a leap year).
func IsLastDayOfFeb(d Date) bool {
	return d.Month() == 2 && d.Day() == daysInMonth(d.Year(), 2)
}

// AddClampedDay returns the date in the month anchored by monthStart
// (a first-of-month Date) whose day-of-month is min(dom, length of
// that month). dom must be in [1, 31]; for dom <= 28 this is simply
// monthStart + (dom - 1).
func AddClampedDay(monthStart Date, dom int) Date {
	y, m := monthStart.Year(), monthStart.Month()
	last := daysInMonth(y, m)
	if dom > last {
		dom = last
	}
	return monthStart.AddDays(dom - 1)
}
