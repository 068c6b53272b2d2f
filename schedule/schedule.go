// Package schedule implements cash-flow date generation: the
// forward/backward/zero/CDS/CDS-2015/old-CDS generation rules and the
// until/after windowing helpers built on top of them.
//
// This generalizes the teacher's swap/basis/schedule.go, a single
// forward-only generator hard-coded to one leg convention, into the
// full rule dispatch described in
// original_source/src/financial_calendar.py's make_schedule.
package schedule

import (
	"errors"
	"fmt"
	"sort"

	"github.com/meenmo/fincal/caldate"
	"github.com/meenmo/fincal/calendar"
	"github.com/meenmo/fincal/convention"
)

// ErrNotImplemented is returned for a period unit MakeSchedule does
// not know how to generate (anything other than Day, Week, Month or
// Year), or for a schedule Rule with no defined generation behavior
// (ThirdWednesDay, Twentieth, Twentieth_IMM).
var ErrNotImplemented = errors.New("schedule: rule/period combination not implemented")

// ErrEmptyDates is returned by Until and After when given an empty
// date slice; a windowing operation needs at least one date to anchor
// against.
var ErrEmptyDates = errors.New("schedule: dates must have at least one date")

// MakeSchedule generates the cash-flow date vector between effective
// and termination, stepping by period and rolling under rule, conv
// and termConv. first and nextToLast, when non-nil, override the
// generation start/end (but never the reported effective/termination
// endpoints) the way a stub or short first/last period does.
func MakeSchedule(
	cal *calendar.FinancialCalendar,
	effective, termination caldate.Date,
	period calendar.Delta,
	conv, termConv convention.Roll,
	eom bool,
	rule convention.Rule,
	first, nextToLast *caldate.Date,
) ([]caldate.Date, error) {
	if !rule.Implemented() {
		return nil, fmt.Errorf("%w: rule %q", ErrNotImplemented, rule)
	}

	start := effective
	hasFirst := first != nil && rule != convention.Zero
	if hasFirst {
		start = *first
	}

	end := termination
	hasNextToLast := nextToLast != nil && rule != convention.Zero && start.Before(*nextToLast)
	if hasNextToLast {
		end = *nextToLast
	}

	if rule == convention.CDS2015 {
		eom = false
	}

	internalConv := conv

	var dates []caldate.Date
	var err error
	switch period.Unit {
	case calendar.UnitDay, calendar.UnitWeek:
		dates, err = dailyGenerate(cal, start, end, period, rule, conv, termConv)
	case calendar.UnitMonth, calendar.UnitYear:
		if eom && conv != convention.Unadjusted {
			// original_source passes Rule.backward here, whose string
			// value ("backward") numpy's busday_offset treats as an
			// alias for the preceding roll; Roll has no such alias, so
			// the equivalent is spelled out explicitly.
			internalConv = convention.Preceding
		}
		dates, err = monthlyGenerate(cal, start, end, period, eom, rule, conv, termConv)
	default:
		return nil, ErrNotImplemented
	}
	if err != nil {
		return nil, err
	}

	if hasFirst {
		prefix, err := rollOrExact(cal, effective, conv)
		if err != nil {
			return nil, err
		}
		dates = append([]caldate.Date{prefix}, dates...)
	}

	if hasNextToLast {
		suffix, err := rollOrExact(cal, termination, conv)
		if err != nil {
			return nil, err
		}
		dates = append(dates, suffix)
	}

	ind := 0
	if rule == convention.OldCDS {
		ind = 1
	}

	if len(dates) > ind+1 {
		interior, err := cal.OffsetBatch(dates[ind:len(dates)-1], calendar.Delta{}, internalConv)
		if err != nil {
			return nil, err
		}
		copy(dates[ind:len(dates)-1], interior)
	}

	if internalConv != conv && rule != convention.CDS2015 && rule != convention.OldCDS {
		rolled, err := cal.Offset(effective, calendar.Delta{}, conv)
		if err != nil {
			return nil, err
		}
		dates[0] = rolled
	}

	last, err := cal.Offset(termination, calendar.Delta{}, termConv)
	if err != nil {
		return nil, err
	}
	dates[len(dates)-1] = last

	return dedupSort(dates), nil
}

// rollOrExact returns d unchanged under Unadjusted, else d rolled
// under conv. The stub-period prepend/append steps in MakeSchedule use
// the caller's outer conv here, never the internal backward override.
func rollOrExact(cal *calendar.FinancialCalendar, d caldate.Date, conv convention.Roll) (caldate.Date, error) {
	if conv == convention.Unadjusted {
		return d, nil
	}
	return cal.Offset(d, calendar.Delta{}, conv)
}

func dedupSort(dates []caldate.Date) []caldate.Date {
	sorted := append([]caldate.Date(nil), dates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	out := sorted[:0]
	for i, d := range sorted {
		if i == 0 || d != sorted[i-1] {
			out = append(out, d)
		}
	}
	return out
}

// Until returns dates filtered to those at or before untilDate, with
// untilDate itself appended, deduplicated and sorted.
func Until(dates []caldate.Date, untilDate caldate.Date) ([]caldate.Date, error) {
	if len(dates) == 0 {
		return nil, ErrEmptyDates
	}
	kept := make([]caldate.Date, 0, len(dates)+1)
	for _, d := range dates {
		if !d.After(untilDate) {
			kept = append(kept, d)
		}
	}
	kept = append(kept, untilDate)
	return dedupSort(kept), nil
}

// After returns dates filtered to those at or after fromDate, with
// fromDate itself prepended, deduplicated and sorted.
func After(dates []caldate.Date, fromDate caldate.Date) ([]caldate.Date, error) {
	if len(dates) == 0 {
		return nil, ErrEmptyDates
	}
	kept := make([]caldate.Date, 0, len(dates)+1)
	kept = append(kept, fromDate)
	for _, d := range dates {
		if !d.Before(fromDate) {
			kept = append(kept, d)
		}
	}
	return dedupSort(kept), nil
}
