package schedule

import (
	"github.com/meenmo/fincal/caldate"
	"github.com/meenmo/fincal/calendar"
	"github.com/meenmo/fincal/convention"
)

func monthlyGenerate(
	cal *calendar.FinancialCalendar,
	effective, termination caldate.Date,
	period calendar.Delta,
	eom bool,
	rule convention.Rule,
	conv, termConv convention.Roll,
) ([]caldate.Date, error) {
	switch rule {
	case convention.Forward:
		return monthlyForward(effective, termination, period, eom), nil
	case convention.Backward:
		return monthlyBackward(effective, termination, period, eom), nil
	case convention.Zero:
		return []caldate.Date{effective, termination}, nil
	case convention.CDS, convention.CDS2015:
		return monthlyCDS2015(cal, effective, termination, period, conv, termConv)
	case convention.OldCDS:
		return monthlyOldCDS(cal, effective, termination, period, termConv)
	default:
		return nil, ErrNotImplemented
	}
}

// monthlyForward walks month-truncated anchors from effective's month
// up to (not including) termination's month, reattaches the
// day-of-month (31, clamped, under eom; effective's own day otherwise)
// and forces the first entry back to the exact effective date.
func monthlyForward(effective, termination caldate.Date, period calendar.Delta, eom bool) []caldate.Date {
	step := monthStep(period)
	start := effective.AddMonths(0)
	end := termination.AddMonths(0)

	var anchors []caldate.Date
	for a := start; a.Before(end); a = a.AddMonths(step) {
		anchors = append(anchors, a)
	}

	dom := 31
	if !eom {
		dom = effective.Day()
	}
	dates := make([]caldate.Date, len(anchors))
	for i, a := range anchors {
		dates[i] = caldate.AddClampedDay(a, dom)
	}
	if len(dates) > 0 {
		dates[0] = effective
	}
	if len(dates) == 0 || dates[len(dates)-1] != termination {
		dates = append(dates, termination)
	}
	return dates
}

// monthlyBackward is monthlyForward's mirror: anchors walk down from
// termination's month to effective's, the day-of-month is reattached
// from termination (or 31 under eom), and the result is reversed.
func monthlyBackward(effective, termination caldate.Date, period calendar.Delta, eom bool) []caldate.Date {
	step := monthStep(period)
	start := effective.AddMonths(0)
	end := termination.AddMonths(0)
	stop := start.AddMonths(-step)

	var anchors []caldate.Date
	for a := end; a.After(stop); a = a.AddMonths(-step) {
		anchors = append(anchors, a)
	}

	dom := 31
	if !eom {
		dom = termination.Day()
	}
	dates := make([]caldate.Date, len(anchors))
	for i, a := range anchors {
		dates[i] = caldate.AddClampedDay(a, dom)
	}
	if len(dates) > 0 {
		dates[0] = termination
	}
	if len(dates) == 0 || dates[len(dates)-1] != effective {
		dates = append(dates, effective)
	}
	reverse(dates)
	return dates
}

// monthlyCDS2015 mirrors _monthly_cds_2015: the same initial/terminal
// range as the daily variant, stepped in whole months, with +19 days
// added to every entry at the end — this is what turns the
// month-truncated range markers back into twentieth-of-month dates.
func monthlyCDS2015(
	cal *calendar.FinancialCalendar,
	effective, termination caldate.Date,
	period calendar.Delta,
	conv, termConv convention.Roll,
) ([]caldate.Date, error) {
	first0, first1, err := cdsInitialRange(cal, effective, conv)
	if err != nil {
		return nil, err
	}
	final0, final1, err := cdsTerminalRange(cal, termination, termConv)
	if err != nil {
		return nil, err
	}

	step := monthStep(period)
	stop := final0.AddMonths(step)

	dates := []caldate.Date{first0}
	for a := first1; a.Before(stop); a = a.AddMonths(step) {
		dates = append(dates, a)
	}
	dates = append(dates, final1)

	for i := range dates {
		dates[i] = dates[i].AddDays(19)
	}
	return dates, nil
}

// monthlyOldCDS mirrors _monthly_old_cds verbatim, including the
// effective-equals-next-twentieth branch that overwrites the first
// generated entry rather than prepending a separate one.
func monthlyOldCDS(
	cal *calendar.FinancialCalendar,
	effective, termination caldate.Date,
	period calendar.Delta,
	termConv convention.Roll,
) ([]caldate.Date, error) {
	final0, final1, err := cdsTerminalRange(cal, termination, termConv)
	if err != nil {
		return nil, err
	}

	nextTwentieth := calendar.NextTwentieth(effective, convention.OldCDS)
	if int(nextTwentieth)-int(effective) < 30 {
		nextTwentieth = calendar.NextTwentieth(nextTwentieth.AddDays(1), convention.OldCDS)
	}

	step := monthStep(period)
	stop := final0.AddMonths(step)

	if nextTwentieth != effective {
		dates := []caldate.Date{effective}
		for a := nextTwentieth.AddMonths(0); a.Before(stop); a = a.AddMonths(step) {
			dates = append(dates, a.AddDays(19))
		}
		dates = append(dates, final1.AddDays(19))
		return dates, nil
	}

	var dates []caldate.Date
	for a := effective.AddMonths(0); a.Before(stop); a = a.AddMonths(step) {
		dates = append(dates, a.AddDays(19))
	}
	if len(dates) > 0 {
		dates[0] = effective
	}
	dates = append(dates, final1.AddDays(19))
	return dates, nil
}
