package services

import (
	"log/slog"
	"sort"
	"time"

	"spendlens/internal/models"

	"github.com/shopspring/decimal"
)

type analyticsService struct {
	periods PeriodServiceInterface
	metrics MetricsRecorderInterface
}

// NewAnalyticsService creates a new AnalyticsServiceInterface instance
func NewAnalyticsService(periods PeriodServiceInterface, metrics MetricsRecorderInterface) AnalyticsServiceInterface {
	return &analyticsService{
		periods: periods,
		metrics: metrics,
	}
}

func (s *analyticsService) CategoryBreakdown(transactions []models.Transaction, kind string, reference time.Time, config models.PeriodBoundaryConfig) ([]models.CategorySpending, error) {
	started := time.Now()

	interval, err := s.periods.ResolveInterval(kind, reference, config)
	if err != nil {
		return nil, err
	}

	inPeriod := FilterByInterval(transactions, interval)
	buckets := sumByKey(inPeriod, func(t *models.Transaction) string { return t.Category })

	breakdown := make([]models.CategorySpending, 0, len(buckets))
	total := bucketTotal(buckets)
	for category, amount := range buckets {
		breakdown = append(breakdown, models.CategorySpending{
			Category:    category,
			AmountCents: amount,
			Percentage:  percentageOf(amount, total),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].AmountCents != breakdown[j].AmountCents {
			return breakdown[i].AmountCents > breakdown[j].AmountCents
		}
		return models.CategoryRank(breakdown[i].Category) < models.CategoryRank(breakdown[j].Category)
	})

	s.metrics.RecordAnalyticsQuery("category_breakdown", time.Since(started))
	s.metrics.RecordTransactionsAnalyzed(len(inPeriod))

	slog.Info("category breakdown computed",
		"period_kind", kind,
		"interval_start", interval.Start,
		"transaction_count", len(inPeriod),
		"bucket_count", len(breakdown))

	return breakdown, nil
}

func (s *analyticsService) PaymentMethodBreakdown(transactions []models.Transaction, kind string, reference time.Time, config models.PeriodBoundaryConfig) ([]models.PaymentMethodSpending, error) {
	started := time.Now()

	interval, err := s.periods.ResolveInterval(kind, reference, config)
	if err != nil {
		return nil, err
	}

	inPeriod := FilterByInterval(transactions, interval)
	buckets := sumByKey(inPeriod, func(t *models.Transaction) string { return t.PaymentMethod })

	breakdown := make([]models.PaymentMethodSpending, 0, len(buckets))
	total := bucketTotal(buckets)
	for method, amount := range buckets {
		breakdown = append(breakdown, models.PaymentMethodSpending{
			PaymentMethod: method,
			AmountCents:   amount,
			Percentage:    percentageOf(amount, total),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].AmountCents != breakdown[j].AmountCents {
			return breakdown[i].AmountCents > breakdown[j].AmountCents
		}
		return models.PaymentMethodRank(breakdown[i].PaymentMethod) < models.PaymentMethodRank(breakdown[j].PaymentMethod)
	})

	s.metrics.RecordAnalyticsQuery("payment_method_breakdown", time.Since(started))
	s.metrics.RecordTransactionsAnalyzed(len(inPeriod))

	return breakdown, nil
}

func (s *analyticsService) TotalSpending(transactions []models.Transaction, kind string, reference time.Time, config models.PeriodBoundaryConfig) (models.Money, error) {
	interval, err := s.periods.ResolveInterval(kind, reference, config)
	if err != nil {
		return 0, err
	}

	return sumAmounts(FilterByInterval(transactions, interval)), nil
}

// sumByKey groups transactions by the extracted key and sums their amounts.
// Zero-sum buckets are dropped: only strictly positive totals carry
// information for a breakdown.
func sumByKey(transactions []models.Transaction, keyFn func(*models.Transaction) string) map[string]models.Money {
	buckets := make(map[string]models.Money)
	for i := range transactions {
		buckets[keyFn(&transactions[i])] += transactions[i].AmountCents
	}

	for key, amount := range buckets {
		if amount <= 0 {
			delete(buckets, key)
		}
	}

	return buckets
}

func bucketTotal(buckets map[string]models.Money) models.Money {
	var total models.Money
	for _, amount := range buckets {
		total += amount
	}
	return total
}

func sumAmounts(transactions []models.Transaction) models.Money {
	var total models.Money
	for i := range transactions {
		total += transactions[i].AmountCents
	}
	return total
}

// percentageOf returns part's rounded share of total as 0..100. Rounding is
// half-up (decimal round half away from zero on these positive amounts), the
// single rounding policy used throughout. Returns 0 when total is not
// positive.
func percentageOf(part, total models.Money) int {
	if total <= 0 {
		return 0
	}

	pct := decimal.NewFromInt(part.Cents()).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total.Cents())).
		Round(0)

	return int(pct.IntPart())
}
