package services

import (
	"errors"
	"log/slog"
	"sort"
	"time"

	"spendlens/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrSettingsNil = errors.New("settings cannot be nil")
)

type goalService struct {
	periods PeriodServiceInterface
	metrics MetricsRecorderInterface
}

// NewGoalService creates a new GoalServiceInterface instance
func NewGoalService(periods PeriodServiceInterface, metrics MetricsRecorderInterface) GoalServiceInterface {
	return &goalService{
		periods: periods,
		metrics: metrics,
	}
}

func (s *goalService) ComputeGoals(transactions []models.Transaction, kind string, reference time.Time, settings *models.Settings) (*models.GoalReport, error) {
	if settings == nil {
		return nil, ErrSettingsNil
	}

	started := time.Now()

	config := settings.BoundaryConfig()
	interval, err := s.periods.ResolveInterval(kind, reference, config)
	if err != nil {
		return nil, err
	}

	divisor, err := models.PeriodDivisor(kind)
	if err != nil {
		return nil, err
	}

	// Goal tracking only covers opted-in categories; this sum is narrower
	// than the full category breakdown.
	enabled := settings.EnabledCategories(kind)
	spentByCategory := sumByKey(FilterByInterval(transactions, interval),
		func(t *models.Transaction) string { return t.Category })

	goals := make([]models.SpendingGoal, 0, len(enabled))
	var totalBudget, totalSpent models.Money
	for _, category := range enabled {
		goal := models.SpendingGoal{
			Category:             category,
			LimitCents:           scaleMonthlyGoal(settings.GoalAmount(category), divisor),
			CurrentSpendingCents: spentByCategory[category],
		}
		goals = append(goals, goal)
		totalBudget += goal.LimitCents
		totalSpent += goal.CurrentSpendingCents
	}

	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].ProgressRatio() > goals[j].ProgressRatio()
	})

	report := &models.GoalReport{
		Interval:        interval,
		PeriodKind:      kind,
		Goals:           goals,
		TotalBudget:     totalBudget,
		TotalSpent:      totalSpent,
		OverallProgress: overallProgress(totalSpent, totalBudget),
	}

	s.metrics.RecordAnalyticsQuery("goal_report", time.Since(started))

	slog.Info("goal report computed",
		"period_kind", kind,
		"interval_start", interval.Start,
		"enabled_categories", len(enabled),
		"over_budget", countOverBudget(goals))

	return report, nil
}

// scaleMonthlyGoal scales a monthly goal amount down to the period
// granularity, rounding half-up.
func scaleMonthlyGoal(monthly models.Money, divisor int64) models.Money {
	if divisor == 1 {
		return monthly
	}

	scaled := decimal.NewFromInt(monthly.Cents()).
		Div(decimal.NewFromInt(divisor)).
		Round(0)

	return models.MoneyFromCents(scaled.IntPart())
}

// overallProgress is spent/budget capped at 1.0, or 0 on a zero budget.
func overallProgress(spent, budget models.Money) float64 {
	if budget <= 0 {
		return 0
	}
	progress := float64(spent) / float64(budget)
	if progress > 1.0 {
		return 1.0
	}
	return progress
}

func countOverBudget(goals []models.SpendingGoal) int {
	count := 0
	for _, goal := range goals {
		if goal.IsOverBudget() {
			count++
		}
	}
	return count
}
