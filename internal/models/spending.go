package models

import "time"

// CategorySpending is one bucket of a per-category breakdown. Percentage is
// the bucket's rounded share of the breakdown total, 0..100.
type CategorySpending struct {
	Category    string `json:"category"`
	AmountCents Money  `json:"amount_cents"`
	Percentage  int    `json:"percentage"`
}

// PaymentMethodSpending is one bucket of a per-payment-method breakdown.
type PaymentMethodSpending struct {
	PaymentMethod string `json:"payment_method"`
	AmountCents   Money  `json:"amount_cents"`
	Percentage    int    `json:"percentage"`
}

// TrendPoint is the total spend in one period interval of a trend series.
type TrendPoint struct {
	IntervalStart time.Time `json:"interval_start"`
	IntervalEnd   time.Time `json:"interval_end"`
	AmountCents   Money     `json:"amount_cents"`
	Label         string    `json:"label"`
}

// TrendComparison describes the change between the last two points of a
// series. ChangePercent is the rounded absolute percentage change; Increased
// carries the sign. Both are zero-valued when there are fewer than two points
// or the previous point is zero.
type TrendComparison struct {
	ChangePercent int  `json:"change_percent"`
	Increased     bool `json:"increased"`
}

// TrendSeries is a fixed-length sequence of consecutive period totals,
// ordered oldest to newest.
type TrendSeries struct {
	Points []TrendPoint `json:"points"`
	// AverageSpending is the mean of the non-zero points only; sparse zero
	// periods would otherwise deflate it. Zero when no point is non-zero.
	AverageSpending Money           `json:"average_spending_cents"`
	Comparison      TrendComparison `json:"comparison"`
}

// SpendingGoal is the tracked budget state of one category for a period:
// the period-scaled limit against the actual in-period spend.
type SpendingGoal struct {
	Category             string `json:"category"`
	LimitCents           Money  `json:"limit_cents"`
	CurrentSpendingCents Money  `json:"current_spending_cents"`
}

// ProgressRatio returns current/limit capped at 1.0, or 0 when the limit is
// not positive.
func (g SpendingGoal) ProgressRatio() float64 {
	if g.LimitCents <= 0 {
		return 0
	}
	ratio := float64(g.CurrentSpendingCents) / float64(g.LimitCents)
	if ratio > 1.0 {
		return 1.0
	}
	return ratio
}

// IsOverBudget reports whether spending strictly exceeds the limit.
func (g SpendingGoal) IsOverBudget() bool {
	return g.CurrentSpendingCents > g.LimitCents
}

// Remaining returns limit minus current spending; negative when over budget.
func (g SpendingGoal) Remaining() Money {
	return g.LimitCents.Sub(g.CurrentSpendingCents)
}

// OverBudgetAmount returns how far spending exceeds the limit, always
// positive, or zero when within budget.
func (g SpendingGoal) OverBudgetAmount() Money {
	if !g.IsOverBudget() {
		return 0
	}
	return g.CurrentSpendingCents.Sub(g.LimitCents)
}

// OverBudgetLabel returns the display string for an exceeded goal, e.g.
// "Over by $25.00", or empty when within budget.
func (g SpendingGoal) OverBudgetLabel() string {
	if !g.IsOverBudget() {
		return ""
	}
	return "Over by " + g.OverBudgetAmount().Display()
}

// GoalReport is the aggregate budget picture for one period: the per-category
// goals sorted by descending progress, plus combined totals.
type GoalReport struct {
	Interval        Interval       `json:"interval"`
	PeriodKind      string         `json:"period_kind"`
	Goals           []SpendingGoal `json:"goals"`
	TotalBudget     Money          `json:"total_budget_cents"`
	TotalSpent      Money          `json:"total_spent_cents"`
	OverallProgress float64        `json:"overall_progress"`
}
