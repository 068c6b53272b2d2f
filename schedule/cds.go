package schedule

import (
	"github.com/meenmo/fincal/caldate"
	"github.com/meenmo/fincal/calendar"
	"github.com/meenmo/fincal/convention"
)

// monthStep converts a Month/Year Delta into a plain month count, so
// the CDS and monthly generators can step month-anchored dates with
// Date.AddMonths without re-deriving the unit each time.
func monthStep(period calendar.Delta) int {
	if period.Unit == calendar.UnitYear {
		return 12 * period.N
	}
	return period.N
}

// cdsInitialRange mirrors _get_cds_date_range(date, convention, initial_date=True):
// it anchors on the previous twentieth before d, and picks a 3-month
// window around that anchor's month depending on whether rolling the
// anchor itself under conv would land after d. The first return value
// is the schedule's first date; the second is where interior
// generation resumes.
func cdsInitialRange(cal *calendar.FinancialCalendar, d caldate.Date, conv convention.Roll) (caldate.Date, caldate.Date, error) {
	anchor := calendar.PreviousTwentieth(d, convention.CDS2015)
	base := anchor.AddMonths(0) // month-truncate, matching astype('datetime64[M]')

	rolled, err := cal.Offset(anchor, calendar.Delta{}, conv)
	if err != nil {
		return 0, 0, err
	}
	if rolled.After(d) {
		return base, base.AddMonths(-3), nil
	}
	return base, base.AddMonths(3), nil
}

// cdsTerminalRange mirrors _get_cds_date_range(date, convention, initial_date=False),
// the symmetric terminal-side anchor built from the next twentieth.
func cdsTerminalRange(cal *calendar.FinancialCalendar, d caldate.Date, conv convention.Roll) (caldate.Date, caldate.Date, error) {
	anchor := calendar.NextTwentieth(d, convention.CDS2015)
	base := anchor.AddMonths(0)

	rolled, err := cal.Offset(anchor, calendar.Delta{}, conv)
	if err != nil {
		return 0, 0, err
	}
	if rolled.Before(d) {
		return base, base.AddMonths(3), nil
	}
	return base.AddMonths(-3), base, nil
}
