package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"spendlens/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPeriodCount = errors.New("period count must be positive")
)

type trendService struct {
	periods PeriodServiceInterface
	metrics MetricsRecorderInterface
}

// NewTrendService creates a new TrendServiceInterface instance
func NewTrendService(periods PeriodServiceInterface, metrics MetricsRecorderInterface) TrendServiceInterface {
	return &trendService{
		periods: periods,
		metrics: metrics,
	}
}

func (s *trendService) BuildSeries(transactions []models.Transaction, kind string, reference time.Time, config models.PeriodBoundaryConfig, periodCount int) (*models.TrendSeries, error) {
	if periodCount < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPeriodCount, periodCount)
	}

	started := time.Now()

	intervals, err := s.collectIntervals(kind, reference, config, periodCount)
	if err != nil {
		return nil, err
	}

	// A monthly series that crosses a calendar year would repeat bare
	// month names, so those labels carry the year.
	withYear := kind == models.PeriodMonthly &&
		intervals[0].Start.Year() != intervals[len(intervals)-1].Start.Year()

	points := make([]models.TrendPoint, 0, periodCount)
	for _, interval := range intervals {
		points = append(points, models.TrendPoint{
			IntervalStart: interval.Start,
			IntervalEnd:   interval.End,
			AmountCents:   sumAmounts(FilterByInterval(transactions, interval)),
			Label:         formatIntervalLabel(kind, interval, withYear),
		})
	}

	series := &models.TrendSeries{
		Points:          points,
		AverageSpending: averageNonZero(points),
		Comparison:      compareLastTwo(points),
	}

	s.metrics.RecordAnalyticsQuery("trend_series", time.Since(started))

	slog.Info("trend series built",
		"period_kind", kind,
		"period_count", periodCount,
		"first_start", points[0].IntervalStart,
		"last_start", points[len(points)-1].IntervalStart)

	return series, nil
}

// collectIntervals walks backward from the interval containing the reference
// date and returns periodCount consecutive intervals ordered oldest first.
func (s *trendService) collectIntervals(kind string, reference time.Time, config models.PeriodBoundaryConfig, periodCount int) ([]models.Interval, error) {
	current, err := s.periods.ResolveInterval(kind, reference, config)
	if err != nil {
		return nil, err
	}

	intervals := make([]models.Interval, periodCount)
	intervals[periodCount-1] = current

	for i := periodCount - 2; i >= 0; i-- {
		current, err = s.periods.PreviousInterval(kind, current, config)
		if err != nil {
			return nil, err
		}
		intervals[i] = current
	}

	return intervals, nil
}

// formatIntervalLabel renders the chart label for an interval start:
// "D/M" for days, "Jan 2" for week starts, the month name for months
// ("Jan 26" when withYear is set).
func formatIntervalLabel(kind string, interval models.Interval, withYear bool) string {
	switch kind {
	case models.PeriodDaily:
		return fmt.Sprintf("%d/%d", interval.Start.Day(), int(interval.Start.Month()))
	case models.PeriodWeekly:
		return interval.Start.Format("Jan 2")
	default:
		if withYear {
			return interval.Start.Format("Jan 06")
		}
		return interval.Start.Format("Jan")
	}
}

// averageNonZero is the mean of the non-zero points only; sparse zero periods
// must not deflate the average. Zero when every point is zero.
func averageNonZero(points []models.TrendPoint) models.Money {
	sum := decimal.Zero
	count := int64(0)
	for _, point := range points {
		if point.AmountCents.IsZero() {
			continue
		}
		sum = sum.Add(decimal.NewFromInt(point.AmountCents.Cents()))
		count++
	}

	if count == 0 {
		return 0
	}

	return models.MoneyFromCents(sum.Div(decimal.NewFromInt(count)).Round(0).IntPart())
}

// compareLastTwo derives the change between the final two raw points. Unlike
// the average, zeros count here: only a zero previous point (or a series
// shorter than two) yields the empty comparison.
func compareLastTwo(points []models.TrendPoint) models.TrendComparison {
	if len(points) < 2 {
		return models.TrendComparison{}
	}

	last := points[len(points)-1].AmountCents
	previous := points[len(points)-2].AmountCents
	if previous <= 0 {
		return models.TrendComparison{}
	}

	change := decimal.NewFromInt(last.Cents() - previous.Cents()).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(previous.Cents())).
		Round(0)

	return models.TrendComparison{
		ChangePercent: int(change.Abs().IntPart()),
		Increased:     last > previous,
	}
}
