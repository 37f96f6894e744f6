package services

import (
	"time"

	"spendlens/internal/models"
)

// PeriodServiceInterface resolves the concrete half-open date interval a
// reference date falls into, honoring the user's custom period boundaries.
type PeriodServiceInterface interface {
	// ResolveInterval computes the [start, end) interval of the given kind
	// containing the reference date.
	ResolveInterval(kind string, reference time.Time, config models.PeriodBoundaryConfig) (models.Interval, error)

	// PreviousInterval steps one period backward from an interval, applying
	// the same boundary rules (monthly stepping re-clamps the start day per
	// month).
	PreviousInterval(kind string, interval models.Interval, config models.PeriodBoundaryConfig) (models.Interval, error)
}

// AnalyticsServiceInterface computes in-period spending breakdowns.
type AnalyticsServiceInterface interface {
	// CategoryBreakdown groups in-period transactions by category with
	// amounts and rounded percentage shares, sorted by descending amount.
	CategoryBreakdown(transactions []models.Transaction, kind string, reference time.Time, config models.PeriodBoundaryConfig) ([]models.CategorySpending, error)

	// PaymentMethodBreakdown is the payment-method analogue of
	// CategoryBreakdown.
	PaymentMethodBreakdown(transactions []models.Transaction, kind string, reference time.Time, config models.PeriodBoundaryConfig) ([]models.PaymentMethodSpending, error)

	// TotalSpending sums all in-period transaction amounts.
	TotalSpending(transactions []models.Transaction, kind string, reference time.Time, config models.PeriodBoundaryConfig) (models.Money, error)
}

// TrendServiceInterface builds multi-period spending series for charting.
type TrendServiceInterface interface {
	// BuildSeries returns exactly periodCount consecutive period totals
	// ending at the period containing the reference date, oldest first.
	BuildSeries(transactions []models.Transaction, kind string, reference time.Time, config models.PeriodBoundaryConfig, periodCount int) (*models.TrendSeries, error)
}

// GoalServiceInterface evaluates budget goals against in-period spending.
type GoalServiceInterface interface {
	// ComputeGoals scales each enabled category's monthly goal to the period
	// kind, compares it to actual in-period spend, and reports per-category
	// progress plus combined totals.
	ComputeGoals(transactions []models.Transaction, kind string, reference time.Time, settings *models.Settings) (*models.GoalReport, error)
}

// TransactionGeneratorInterface produces realistic sample transactions for
// development seeding.
type TransactionGeneratorInterface interface {
	Generate(count int, from, to time.Time) []models.Transaction
}

// MetricsRecorderInterface records operational metrics for analytics
// computations and transaction writes.
type MetricsRecorderInterface interface {
	RecordAnalyticsQuery(operation string, duration time.Duration)
	RecordTransactionWrite(operation string)
	RecordTransactionsAnalyzed(count int)
}
