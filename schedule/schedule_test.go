package schedule_test

import (
	"testing"
	"time"

	"github.com/meenmo/fincal/caldate"
	"github.com/meenmo/fincal/calendar"
	"github.com/meenmo/fincal/convention"
	"github.com/meenmo/fincal/schedule"
	"github.com/stretchr/testify/require"
)

func d(y int, m time.Month, day int) caldate.Date {
	return caldate.Of(y, m, day)
}

func dates(vals ...caldate.Date) []caldate.Date { return vals }

func TestBackwardMonthlyEOMModifiedFollowing(t *testing.T) {
	should := require.New(t)

	cal := calendar.NewWeekendsOnly()
	effective := d(2023, time.January, 31)
	termination := d(2023, time.July, 31)
	period := calendar.Delta{Unit: calendar.UnitMonth, N: 1}

	got, err := schedule.MakeSchedule(
		cal, effective, termination, period,
		convention.ModifiedFollowing, convention.ModifiedFollowing,
		true, convention.Backward, nil, nil,
	)
	should.NoError(err)

	want := dates(
		d(2023, time.January, 31),
		d(2023, time.February, 28),
		d(2023, time.March, 31),
		d(2023, time.April, 28), // April 30 is a Sunday -> modF -> April 28
		d(2023, time.May, 31),
		d(2023, time.June, 30),
		d(2023, time.July, 31),
	)
	should.Equal(want, got)
}

func TestCDS2015QuarterlyTwentieths(t *testing.T) {
	should := require.New(t)

	cal := calendar.NewWeekendsOnly()
	effective := d(2014, time.March, 20)
	termination := d(2019, time.June, 20)
	period := calendar.Delta{Unit: calendar.UnitMonth, N: 3}

	got, err := schedule.MakeSchedule(
		cal, effective, termination, period,
		convention.Unadjusted, convention.Unadjusted,
		false, convention.CDS2015, nil, nil,
	)
	should.NoError(err)

	should.Equal(effective, got[0])
	should.Equal(termination, got[len(got)-1])
	for _, day := range got {
		should.Equal(20, day.Day(), "every CDS_2015 date should fall on the 20th")
		should.Contains([]int{3, 6, 9, 12}, day.Month(), "every CDS_2015 date should fall on an IMM month")
	}
	should.Len(got, 22) // quarterly from 2014-03 through 2019-06 inclusive
}

func TestMakeScheduleEndpointsAndOrdering(t *testing.T) {
	should := require.New(t)

	cal := calendar.NewWeekendsOnly()
	effective := d(2023, time.January, 15)
	termination := d(2023, time.July, 15)
	period := calendar.Delta{Unit: calendar.UnitMonth, N: 1}

	got, err := schedule.MakeSchedule(
		cal, effective, termination, period,
		convention.Unadjusted, convention.Unadjusted,
		false, convention.Forward, nil, nil,
	)
	should.NoError(err)

	should.Equal(effective, got[0])
	should.Equal(termination, got[len(got)-1])
	for i := 1; i < len(got); i++ {
		should.True(got[i-1].Before(got[i]), "schedule must be strictly increasing after dedup")
	}
}

func TestMakeScheduleRejectsUnimplementedRule(t *testing.T) {
	should := require.New(t)

	cal := calendar.NewWeekendsOnly()
	period := calendar.Delta{Unit: calendar.UnitMonth, N: 1}
	_, err := schedule.MakeSchedule(
		cal, d(2023, time.January, 1), d(2023, time.July, 1), period,
		convention.Unadjusted, convention.Unadjusted, false,
		convention.Twentieth, nil, nil,
	)
	should.Error(err)
}

func TestMakeScheduleRejectsUnsupportedPeriodUnit(t *testing.T) {
	should := require.New(t)

	cal := calendar.NewWeekendsOnly()
	_, err := schedule.MakeSchedule(
		cal, d(2023, time.January, 1), d(2023, time.July, 1),
		calendar.Delta{Unit: calendar.Unit(99), N: 1},
		convention.Unadjusted, convention.Unadjusted, false,
		convention.Forward, nil, nil,
	)
	should.ErrorIs(err, schedule.ErrNotImplemented)
}

func TestZeroRuleReturnsEndpointsOnly(t *testing.T) {
	should := require.New(t)

	cal := calendar.NewWeekendsOnly()
	effective := d(2023, time.January, 1)
	termination := d(2023, time.July, 1)
	period := calendar.Delta{Unit: calendar.UnitMonth, N: 1}

	got, err := schedule.MakeSchedule(
		cal, effective, termination, period,
		convention.Unadjusted, convention.Unadjusted, false,
		convention.Zero, nil, nil,
	)
	should.NoError(err)
	should.Equal(dates(effective, termination), got)
}

func TestUntil(t *testing.T) {
	should := require.New(t)

	in := dates(d(2023, time.January, 1), d(2023, time.February, 1), d(2023, time.March, 1))
	got, err := schedule.Until(in, d(2023, time.February, 15))
	should.NoError(err)
	should.Equal(dates(d(2023, time.January, 1), d(2023, time.February, 1), d(2023, time.February, 15)), got)

	_, err = schedule.Until(nil, d(2023, time.January, 1))
	should.ErrorIs(err, schedule.ErrEmptyDates)
}

func TestAfter(t *testing.T) {
	should := require.New(t)

	in := dates(d(2023, time.January, 1), d(2023, time.February, 1), d(2023, time.March, 1))
	got, err := schedule.After(in, d(2023, time.January, 15))
	should.NoError(err)
	should.Equal(dates(d(2023, time.January, 15), d(2023, time.February, 1), d(2023, time.March, 1)), got)

	_, err = schedule.After(nil, d(2023, time.January, 1))
	should.ErrorIs(err, schedule.ErrEmptyDates)
}

func TestMakeScheduleWithFirstAndNextToLastStub(t *testing.T) {
	should := require.New(t)

	cal := calendar.NewWeekendsOnly()
	effective := d(2023, time.January, 1)
	termination := d(2023, time.July, 1)
	first := d(2023, time.February, 1)
	nextToLast := d(2023, time.June, 1)
	period := calendar.Delta{Unit: calendar.UnitMonth, N: 1}

	got, err := schedule.MakeSchedule(
		cal, effective, termination, period,
		convention.Unadjusted, convention.Unadjusted, false,
		convention.Forward, &first, &nextToLast,
	)
	should.NoError(err)
	should.Equal(effective, got[0])
	should.Equal(termination, got[len(got)-1])
	should.Contains(got, first)
	should.Contains(got, nextToLast)
}
