// Package daycount implements the eleven named day-count conventions:
// the rules mapping a date pair (and, for Business/252, a calendar) to
// an integer day count and a year fraction used to accrue interest.
//
// This is new code with no direct teacher analogue — hyperjiang-finance's
// const.go declares the BASIS_* convention constants this package
// implements but never wires them to an algorithm. The formulas
// themselves are grounded in original_source/financialpydate/day_counter.py,
// the reference implementation this spec distills.
package daycount

import (
	"fmt"

	"github.com/meenmo/fincal/caldate"
	"github.com/meenmo/fincal/calendar"
)

// DayCounter is the capability set every named convention exposes:
// a stable string identifier, an integer day count, a year fraction,
// and whether the convention is additive across a partition of dates.
//
// DayCount and YearFraction are the scalar entry points; DayCountBatch
// and YearFractionBatch are the vector ones, accepting scalar-vector,
// vector-scalar (broadcast by fill) and vector-vector (equal length
// required) shapes the way calendar.OffsetBatch does for calendar
// offsets.
type DayCounter interface {
	// Code returns the convention's stable string identifier, as used
	// for serialization (e.g. "ACT/360", "30E/360-ISDA").
	Code() string

	// DayCount returns the integer number of days between start and
	// end under the convention. calendar is only consulted by
	// Business/252; other conventions ignore it.
	DayCount(start, end caldate.Date, cal *calendar.FinancialCalendar) int

	// YearFraction returns the fraction of a year between start and
	// end under the convention.
	YearFraction(start, end caldate.Date, cal *calendar.FinancialCalendar) float64

	// IsAdditive reports whether YearFraction(a, c) == YearFraction(a, b)
	// + YearFraction(b, c) for all a <= b <= c.
	IsAdditive() bool
}

// actualDayCount is the day count shared by every "actual days
// elapsed" convention: the plain signed difference in civil days.
func actualDayCount(start, end caldate.Date) int {
	return int(end) - int(start)
}

// Actual360 is the ACT/360 convention.
type Actual360 struct{}

func (Actual360) Code() string { return "ACT/360" }
func (Actual360) DayCount(start, end caldate.Date, _ *calendar.FinancialCalendar) int {
	return actualDayCount(start, end)
}
func (c Actual360) YearFraction(start, end caldate.Date, cal *calendar.FinancialCalendar) float64 {
	return float64(c.DayCount(start, end, cal)) / 360.0
}
func (Actual360) IsAdditive() bool { return true }

// Actual365 is the ACT/365(Fixed) convention.
type Actual365 struct{}

func (Actual365) Code() string { return "ACT/365" }
func (Actual365) DayCount(start, end caldate.Date, _ *calendar.FinancialCalendar) int {
	return actualDayCount(start, end)
}
func (c Actual365) YearFraction(start, end caldate.Date, cal *calendar.FinancialCalendar) float64 {
	return float64(c.DayCount(start, end, cal)) / 365.0
}
func (Actual365) IsAdditive() bool { return true }

// ActualNL365 is the NL/365 ("no leap day") convention: actual days
// elapsed, minus one for every February 29 the start and end years
// could contain.
type ActualNL365 struct{}

func (ActualNL365) Code() string { return "NL/365" }
func (ActualNL365) DayCount(start, end caldate.Date, _ *calendar.FinancialCalendar) int {
	n := actualDayCount(start, end)
	if caldate.IsLeap(start.Year()) {
		n--
	}
	if caldate.IsLeap(end.Year()) {
		n--
	}
	return n
}
func (c ActualNL365) YearFraction(start, end caldate.Date, cal *calendar.FinancialCalendar) float64 {
	return float64(c.DayCount(start, end, cal)) / 365.0
}
func (ActualNL365) IsAdditive() bool { return false }

// ActualActualISDA is the ACT/ACT-ISDA convention: the accrual period
// is split at each year boundary it straddles, with each sub-period's
// denominator the true length (365 or 366) of the year it falls in.
type ActualActualISDA struct{}

func (ActualActualISDA) Code() string { return "ACT/ACT" }
func (ActualActualISDA) DayCount(start, end caldate.Date, _ *calendar.FinancialCalendar) int {
	return actualDayCount(start, end)
}
func (ActualActualISDA) YearFraction(start, end caldate.Date, _ *calendar.FinancialCalendar) float64 {
	if start == end {
		return 0.0
	}

	startYear, endYear := start.Year(), end.Year()

	startYearLen := 365.0
	if caldate.IsLeap(startYear) {
		startYearLen = 366.0
	}
	endYearLen := 365.0
	if caldate.IsLeap(endYear) {
		endYearLen = 366.0
	}

	startOfNextYear := caldate.Of(startYear+1, 1, 1)
	startFraction := float64(actualDayCount(start, startOfNextYear)) / startYearLen

	startOfEndYear := caldate.Of(endYear, 1, 1)
	endFraction := float64(actualDayCount(startOfEndYear, end)) / endYearLen

	return startFraction + endFraction + float64(endYear-startYear-1)
}
func (ActualActualISDA) IsAdditive() bool { return false }

// Business252 is the "252" convention used in Brazilian and some
// Latin American fixed income markets: the day count is the number of
// business days between start and end under the supplied calendar,
// and the year is assumed to have 252 business days.
//
// A nil calendar falls back to a default Monday-Friday, no-holiday
// calendar. The Python source this is grounded on checks `if
// FinancialCalendar is None` — the imported class, never the
// argument — which can never be true; that is almost certainly a bug
// for `calendar is None`, and this is the corrected, intended
// behavior.
type Business252 struct{}

func (Business252) Code() string { return "252" }
func (Business252) DayCount(start, end caldate.Date, cal *calendar.FinancialCalendar) int {
	if cal == nil {
		cal = calendar.NewWeekendsOnly()
	}
	return cal.BusinessDayCount(start, end)
}
func (c Business252) YearFraction(start, end caldate.Date, cal *calendar.FinancialCalendar) float64 {
	return float64(c.DayCount(start, end, cal)) / 252.0
}
func (Business252) IsAdditive() bool { return true }

// thirty360Numerator computes the shared 30/360-family day count given
// a D1/D2 pair already resolved by the caller's convention-specific rule.
func thirty360Numerator(start, end caldate.Date, d1, d2 int) int {
	return 360*(end.Year()-start.Year()) + 30*(end.Month()-start.Month()) + d2 - d1
}

// bondBasisD1D2 implements the D1/D2 rule shared by 30/360 (BondBasis)
// and 30/365: D1 = min(day(start), 30); D2 = day(end) if D1 < 30, else
// min(day(end), 30).
func bondBasisD1D2(start, end caldate.Date) (int, int) {
	d1 := start.Day()
	if d1 > 30 {
		d1 = 30
	}
	if d1 < 30 {
		return d1, end.Day()
	}
	d2 := end.Day()
	if d2 > 30 {
		d2 = 30
	}
	return d1, d2
}

// Thirty360BondBasis is the 30/360 (MSRB/Bond Basis) convention.
type Thirty360BondBasis struct{}

func (Thirty360BondBasis) Code() string { return "30/360" }
func (Thirty360BondBasis) DayCount(start, end caldate.Date, _ *calendar.FinancialCalendar) int {
	d1, d2 := bondBasisD1D2(start, end)
	return thirty360Numerator(start, end, d1, d2)
}
func (c Thirty360BondBasis) YearFraction(start, end caldate.Date, cal *calendar.FinancialCalendar) float64 {
	return float64(c.DayCount(start, end, cal)) / 360.0
}
func (Thirty360BondBasis) IsAdditive() bool { return false }

// Thirty365 uses the same D1/D2 rule as Thirty360BondBasis but
// expresses the year fraction over a 365-day year.
type Thirty365 struct{}

func (Thirty365) Code() string { return "30/365" }
func (Thirty365) DayCount(start, end caldate.Date, _ *calendar.FinancialCalendar) int {
	d1, d2 := bondBasisD1D2(start, end)
	return thirty360Numerator(start, end, d1, d2)
}
func (c Thirty365) YearFraction(start, end caldate.Date, cal *calendar.FinancialCalendar) float64 {
	return float64(c.DayCount(start, end, cal)) / 365.0
}
func (Thirty365) IsAdditive() bool { return false }

// ThirtyE360 is the 30E/360 (Eurobond Basis) convention: D1 = min(day(start), 30),
// D2 = min(day(end), 30), independent of each other.
type ThirtyE360 struct{}

func (ThirtyE360) Code() string { return "30E/360" }
func (ThirtyE360) DayCount(start, end caldate.Date, _ *calendar.FinancialCalendar) int {
	d1 := min30(start.Day())
	d2 := min30(end.Day())
	return thirty360Numerator(start, end, d1, d2)
}
func (c ThirtyE360) YearFraction(start, end caldate.Date, cal *calendar.FinancialCalendar) float64 {
	return float64(c.DayCount(start, end, cal)) / 360.0
}
func (ThirtyE360) IsAdditive() bool { return false }

func min30(day int) int {
	if day > 30 {
		return 30
	}
	return day
}

// ThirtyE360ISDA is the 30E/360-ISDA convention. IsEndDateOnTermination
// disables the end-of-February rule for D2 when the accrual period
// ends on the contract's termination date, per ISDA's definitions.
// The zero value (false) is the common case.
type ThirtyE360ISDA struct {
	IsEndDateOnTermination bool
}

func (ThirtyE360ISDA) Code() string { return "30E/360-ISDA" }
func (t ThirtyE360ISDA) DayCount(start, end caldate.Date, _ *calendar.FinancialCalendar) int {
	d1 := start.Day()
	if d1 == 31 || caldate.IsLastDayOfFeb(start) {
		d1 = 30
	}

	d2 := end.Day()
	if d2 == 31 || (caldate.IsLastDayOfFeb(end) && !t.IsEndDateOnTermination) {
		d2 = 30
	}

	return thirty360Numerator(start, end, d1, d2)
}
func (t ThirtyE360ISDA) YearFraction(start, end caldate.Date, cal *calendar.FinancialCalendar) float64 {
	return float64(t.DayCount(start, end, cal)) / 360.0
}
func (ThirtyE360ISDA) IsAdditive() bool { return false }

// ThirtyU360 is the 30U/360 (USA) convention. Its D2 rule checks
// IsLastDayOfFeb against the start date, not the end date — an
// asymmetry present in the reference implementation and preserved
// verbatim here.
type ThirtyU360 struct{}

func (ThirtyU360) Code() string { return "30U/360" }
func (ThirtyU360) DayCount(start, end caldate.Date, _ *calendar.FinancialCalendar) int {
	d1EOM := start.Day() >= 30 || caldate.IsLastDayOfFeb(start)

	d1 := start.Day()
	if d1EOM {
		d1 = 30
	}

	d2 := end.Day()
	if (end.Day() == 31 && d1EOM) || (caldate.IsLastDayOfFeb(start) && caldate.IsLastDayOfFeb(end)) {
		d2 = 30
	}

	return thirty360Numerator(start, end, d1, d2)
}
func (c ThirtyU360) YearFraction(start, end caldate.Date, cal *calendar.FinancialCalendar) float64 {
	return float64(c.DayCount(start, end, cal)) / 360.0
}
func (ThirtyU360) IsAdditive() bool { return false }

// OneOne is the degenerate "1/1" convention: every period accrues
// exactly one year, regardless of its actual length. Its day count
// still follows the actual-day family so that DayCount(s, s) == 0
// holds for every counter.
//
// IsAdditive reports true here because the reference implementation
// declares it additive by inheriting from its actual-day base class,
// even though a constant year fraction of 1.0 is not additive in the
// mathematical sense for a non-trivial partition; this is a known
// quirk of the source, preserved rather than silently "fixed".
type OneOne struct{}

func (OneOne) Code() string { return "1/1" }
func (OneOne) DayCount(start, end caldate.Date, _ *calendar.FinancialCalendar) int {
	return actualDayCount(start, end)
}
func (OneOne) YearFraction(_, _ caldate.Date, _ *calendar.FinancialCalendar) float64 {
	return 1.0
}
func (OneOne) IsAdditive() bool { return true }

// ErrShapeMismatch is returned by DayCountBatch and YearFractionBatch
// when starts and ends are both vectors (length > 1) of unequal
// length: neither side is a scalar the other can broadcast against.
type ErrShapeMismatch struct {
	StartLen int
	EndLen   int
}

func (e ErrShapeMismatch) Error() string {
	return fmt.Sprintf("daycount: start dates (len %d) and end dates (len %d) have incompatible shapes", e.StartLen, e.EndLen)
}

// equalizeShape mirrors equalize_variable_types: a single-element side
// broadcasts by fill against the other side's length; two sides of
// equal length (including the scalar-scalar case, length 1 on both)
// pass through unchanged; anything else is a shape mismatch.
func equalizeShape(starts, ends []caldate.Date) ([]caldate.Date, []caldate.Date, error) {
	switch {
	case len(starts) == len(ends):
		return starts, ends, nil
	case len(starts) == 1:
		filled := make([]caldate.Date, len(ends))
		for i := range filled {
			filled[i] = starts[0]
		}
		return filled, ends, nil
	case len(ends) == 1:
		filled := make([]caldate.Date, len(starts))
		for i := range filled {
			filled[i] = ends[0]
		}
		return starts, filled, nil
	default:
		return nil, nil, ErrShapeMismatch{StartLen: len(starts), EndLen: len(ends)}
	}
}

// DayCountBatch applies dc.DayCount elementwise across starts and
// ends, broadcasting a length-1 side by fill against the other and
// requiring equal length otherwise.
func DayCountBatch(dc DayCounter, starts, ends []caldate.Date, cal *calendar.FinancialCalendar) ([]int, error) {
	s, e, err := equalizeShape(starts, ends)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(s))
	for i := range s {
		out[i] = dc.DayCount(s[i], e[i], cal)
	}
	return out, nil
}

// YearFractionBatch applies dc.YearFraction elementwise across starts
// and ends, with the same broadcast-by-fill/equal-length shape rule as
// DayCountBatch.
func YearFractionBatch(dc DayCounter, starts, ends []caldate.Date, cal *calendar.FinancialCalendar) ([]float64, error) {
	s, e, err := equalizeShape(starts, ends)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(s))
	for i := range s {
		out[i] = dc.YearFraction(s[i], e[i], cal)
	}
	return out, nil
}

// Parse resolves a convention's stable string Code to its DayCounter.
// It returns an error for any code outside the eleven named
// conventions.
func Parse(code string) (DayCounter, error) {
	switch code {
	case "ACT/360":
		return Actual360{}, nil
	case "ACT/365":
		return Actual365{}, nil
	case "NL/365":
		return ActualNL365{}, nil
	case "ACT/ACT":
		return ActualActualISDA{}, nil
	case "252":
		return Business252{}, nil
	case "30/360":
		return Thirty360BondBasis{}, nil
	case "30/365":
		return Thirty365{}, nil
	case "30E/360":
		return ThirtyE360{}, nil
	case "30E/360-ISDA":
		return ThirtyE360ISDA{}, nil
	case "30U/360":
		return ThirtyU360{}, nil
	case "1/1":
		return OneOne{}, nil
	default:
		return nil, fmt.Errorf("daycount: unknown convention code %q", code)
	}
}
