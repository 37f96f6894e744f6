package models

import (
	"errors"
	"fmt"
	"time"
)

// Period kinds
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

var (
	ErrInvalidPeriodKind    = errors.New("invalid period kind")
	ErrInvalidConfiguration = errors.New("invalid period configuration")
)

// Goal amounts are defined at monthly granularity; shorter periods scale the
// monthly amount down by these divisors (daily = monthly/30, weekly =
// monthly/4).
const (
	DailyPeriodDivisor   = 30
	WeeklyPeriodDivisor  = 4
	MonthlyPeriodDivisor = 1
)

// AllPeriodKinds returns every valid period kind.
func AllPeriodKinds() []string {
	return []string{PeriodDaily, PeriodWeekly, PeriodMonthly}
}

// IsValidPeriodKind checks if a period kind string is valid
func IsValidPeriodKind(kind string) bool {
	switch kind {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	default:
		return false
	}
}

// PeriodDivisor returns the monthly-to-period scaling divisor for a kind.
func PeriodDivisor(kind string) (int64, error) {
	switch kind {
	case PeriodDaily:
		return DailyPeriodDivisor, nil
	case PeriodWeekly:
		return WeeklyPeriodDivisor, nil
	case PeriodMonthly:
		return MonthlyPeriodDivisor, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPeriodKind, kind)
	}
}

// PeriodBoundaryConfig holds the user-customizable period boundaries: the
// hour a logical day begins, the weekday a week begins (0=Sunday), and the
// day of month a month begins. MonthlyStartDay may exceed a short month's
// length; interval resolution clamps it to that month's last day.
type PeriodBoundaryConfig struct {
	DailyStartHour  int `json:"daily_start_hour"`
	WeeklyStartDay  int `json:"weekly_start_day"`
	MonthlyStartDay int `json:"monthly_start_day"`
}

// DefaultPeriodBoundaryConfig returns the untouched-settings boundaries:
// days begin at midnight, weeks on Sunday, months on the 1st.
func DefaultPeriodBoundaryConfig() PeriodBoundaryConfig {
	return PeriodBoundaryConfig{
		DailyStartHour:  0,
		WeeklyStartDay:  0,
		MonthlyStartDay: 1,
	}
}

// Validate checks every boundary value against its valid range.
func (c PeriodBoundaryConfig) Validate() error {
	if c.DailyStartHour < 0 || c.DailyStartHour > 23 {
		return fmt.Errorf("%w: daily start hour %d outside [0,23]", ErrInvalidConfiguration, c.DailyStartHour)
	}
	if c.WeeklyStartDay < 0 || c.WeeklyStartDay > 6 {
		return fmt.Errorf("%w: weekly start day %d outside [0,6]", ErrInvalidConfiguration, c.WeeklyStartDay)
	}
	if c.MonthlyStartDay < 1 || c.MonthlyStartDay > 31 {
		return fmt.Errorf("%w: monthly start day %d outside [1,31]", ErrInvalidConfiguration, c.MonthlyStartDay)
	}
	return nil
}

// Interval is a half-open [Start, End) date-time range.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the interval: Start <= t < End.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}
