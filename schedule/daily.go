package schedule

import (
	"github.com/meenmo/fincal/caldate"
	"github.com/meenmo/fincal/calendar"
	"github.com/meenmo/fincal/convention"
)

func dailyGenerate(
	cal *calendar.FinancialCalendar,
	effective, termination caldate.Date,
	period calendar.Delta,
	rule convention.Rule,
	conv, termConv convention.Roll,
) ([]caldate.Date, error) {
	switch rule {
	case convention.Forward:
		return dailyForward(effective, termination, period), nil
	case convention.Backward:
		return dailyBackward(effective, termination, period), nil
	case convention.Zero:
		return []caldate.Date{effective, termination}, nil
	case convention.CDS, convention.CDS2015:
		return dailyCDS2015(cal, effective, termination, period, conv, termConv)
	case convention.OldCDS:
		return dailyOldCDS(cal, effective, termination, period, termConv)
	default:
		return nil, ErrNotImplemented
	}
}

func dailyForward(effective, termination caldate.Date, period calendar.Delta) []caldate.Date {
	var dates []caldate.Date
	for d := effective; d.Before(termination); d = period.Add(d) {
		dates = append(dates, d)
	}
	if len(dates) == 0 || dates[len(dates)-1] != termination {
		dates = append(dates, termination)
	}
	return dates
}

func dailyBackward(effective, termination caldate.Date, period calendar.Delta) []caldate.Date {
	neg := calendar.Delta{Unit: period.Unit, N: -period.N}
	var dates []caldate.Date
	for d := termination; d.After(effective); d = neg.Add(d) {
		dates = append(dates, d)
	}
	if len(dates) == 0 || dates[len(dates)-1] != effective {
		dates = append(dates, effective)
	}
	reverse(dates)
	return dates
}

func reverse(dates []caldate.Date) {
	for i, j := 0, len(dates)-1; i < j; i, j = i+1, j-1 {
		dates[i], dates[j] = dates[j], dates[i]
	}
}

// dailyCDS2015 mirrors _daily_cds_2015: the initial/terminal range
// markers are month-truncated (no twentieth-of-month adjustment is
// applied at the daily grain), only the interior steps carry the
// caller's day/week period.
func dailyCDS2015(
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

	stop := period.Add(final0)
	mid := []caldate.Date{first0}
	for d := first1; d.Before(stop); d = period.Add(d) {
		mid = append(mid, d)
	}
	mid = append(mid, final1)
	return mid, nil
}

// dailyOldCDS mirrors _daily_old_cds verbatim, including its +19-day
// shift of the already twentieth-anchored interior dates; this looks
// redundant next to next_twentieth's own 20th-of-month anchor but is
// preserved exactly as the reference implementation computes it.
func dailyOldCDS(
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

	stop := period.Add(final0)
	if nextTwentieth != effective {
		dates := []caldate.Date{effective}
		for d := nextTwentieth; d.Before(stop); d = period.Add(d) {
			dates = append(dates, d.AddDays(19))
		}
		dates = append(dates, final1)
		return dates, nil
	}

	var dates []caldate.Date
	for d := effective; d.Before(stop); d = period.Add(d) {
		dates = append(dates, d)
	}
	dates = append(dates, final1)
	return dates, nil
}
