package calendar

import (
	"github.com/meenmo/fincal/caldate"
	"github.com/meenmo/fincal/convention"
)

func monthAnchor(d caldate.Date) caldate.Date {
	return d.AddDays(1 - d.Day())
}

// PreviousTwentieth returns the largest date of the form (Y, M, 20)
// not after d. For CDS, CDS_2015, old_CDS and Twentieth_IMM rules the
// result is additionally snapped down to the nearest IMM quarter
// (March, June, September, December).
func PreviousTwentieth(d caldate.Date, rule convention.Rule) caldate.Date {
	result := caldate.AddClampedDay(monthAnchor(d), 20)
	if result.After(d) {
		result = caldate.AddClampedDay(monthAnchor(d).AddMonths(-1), 20)
	}

	if rule.IsCDSFamily() {
		skip := result.Month() % 3
		if skip != 0 {
			result = caldate.AddClampedDay(monthAnchor(result).AddMonths(-skip), 20)
		}
	}

	return result
}

// NextTwentieth returns the smallest date of the form (Y, M, 20) not
// before d, snapped up to the next IMM quarter under the same rule
// set PreviousTwentieth snaps down under.
func NextTwentieth(d caldate.Date, rule convention.Rule) caldate.Date {
	result := caldate.AddClampedDay(monthAnchor(d), 20)
	if result.Before(d) {
		result = caldate.AddClampedDay(monthAnchor(d).AddMonths(1), 20)
	}

	if rule.IsCDSFamily() {
		skip := (3 - result.Month()%3) % 3
		if skip != 0 {
			result = caldate.AddClampedDay(monthAnchor(result).AddMonths(skip), 20)
		}
	}

	return result
}
