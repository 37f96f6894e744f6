package services

import (
	"fmt"
	"time"

	"spendlens/internal/models"
)

type periodService struct{}

// NewPeriodService creates a new PeriodServiceInterface instance
func NewPeriodService() PeriodServiceInterface {
	return &periodService{}
}

func (s *periodService) ResolveInterval(kind string, reference time.Time, config models.PeriodBoundaryConfig) (models.Interval, error) {
	if err := config.Validate(); err != nil {
		return models.Interval{}, err
	}

	switch kind {
	case models.PeriodDaily:
		return s.resolveDaily(reference, config), nil
	case models.PeriodWeekly:
		return s.resolveWeekly(reference, config), nil
	case models.PeriodMonthly:
		return s.resolveMonthly(reference, config), nil
	default:
		return models.Interval{}, fmt.Errorf("%w: %q", models.ErrInvalidPeriodKind, kind)
	}
}

// PreviousInterval resolves the period containing the instant just before the
// interval's start, which is the previous period under the same rules.
func (s *periodService) PreviousInterval(kind string, interval models.Interval, config models.PeriodBoundaryConfig) (models.Interval, error) {
	return s.ResolveInterval(kind, interval.Start.Add(-time.Second), config)
}

// resolveDaily computes the 24h window [day at startHour, day+1 at
// startHour). A reference before the start hour belongs to the previous
// logical day.
func (s *periodService) resolveDaily(reference time.Time, config models.PeriodBoundaryConfig) models.Interval {
	start := time.Date(reference.Year(), reference.Month(), reference.Day(),
		config.DailyStartHour, 0, 0, 0, reference.Location())

	if reference.Before(start) {
		start = start.AddDate(0, 0, -1)
	}

	return models.Interval{Start: start, End: start.AddDate(0, 0, 1)}
}

func (s *periodService) resolveWeekly(reference time.Time, config models.PeriodBoundaryConfig) models.Interval {
	dayStart := time.Date(reference.Year(), reference.Month(), reference.Day(),
		0, 0, 0, 0, reference.Location())

	// time.Weekday is already 0=Sunday..6=Saturday
	diff := (int(reference.Weekday()) - config.WeeklyStartDay + 7) % 7
	start := dayStart.AddDate(0, 0, -diff)

	return models.Interval{Start: start, End: start.AddDate(0, 0, 7)}
}

// resolveMonthly builds the candidate start in the reference month with the
// configured day clamped to that month's length, falling back to the
// equivalent day in the previous month when the candidate is still ahead of
// the reference. The end is the same construction one month after the start.
func (s *periodService) resolveMonthly(reference time.Time, config models.PeriodBoundaryConfig) models.Interval {
	loc := reference.Location()

	start := monthlyStart(reference.Year(), reference.Month(), config.MonthlyStartDay, loc)
	if start.After(reference) {
		prev := time.Date(reference.Year(), reference.Month()-1, 1, 0, 0, 0, 0, loc)
		start = monthlyStart(prev.Year(), prev.Month(), config.MonthlyStartDay, loc)
	}

	next := time.Date(start.Year(), start.Month()+1, 1, 0, 0, 0, 0, loc)
	end := monthlyStart(next.Year(), next.Month(), config.MonthlyStartDay, loc)

	return models.Interval{Start: start, End: end}
}

// monthlyStart returns midnight of the configured start day within (year,
// month), clamped to the month's last day when the day does not exist there.
func monthlyStart(year int, month time.Month, day int, loc *time.Location) time.Time {
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// daysInMonth uses day zero of the following month, which time.Date
// normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
