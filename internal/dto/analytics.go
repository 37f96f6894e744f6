package dto

import (
	"time"

	"spendlens/internal/models"
)

// IntervalView describes the half-open time window an analysis covers.
type IntervalView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewIntervalView converts a model interval.
func NewIntervalView(interval models.Interval) IntervalView {
	return IntervalView{Start: interval.Start, End: interval.End}
}

// CategoryBreakdownItem is one category bucket of a spending breakdown.
type CategoryBreakdownItem struct {
	Category    string `json:"category"`
	DisplayName string `json:"display_name"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
	Percentage  int    `json:"percentage"`
}

// CategoryBreakdownResponse is the payload for a per-category analysis.
type CategoryBreakdownResponse struct {
	Period     string                  `json:"period"`
	Interval   IntervalView            `json:"interval"`
	TotalCents int64                   `json:"total_cents"`
	Total      string                  `json:"total"`
	Items      []CategoryBreakdownItem `json:"items"`
}

// NewCategoryBreakdownResponse assembles the API view of a category breakdown.
func NewCategoryBreakdownResponse(kind string, interval models.Interval, items []models.CategorySpending, total models.Money) CategoryBreakdownResponse {
	views := make([]CategoryBreakdownItem, 0, len(items))
	for _, item := range items {
		views = append(views, CategoryBreakdownItem{
			Category:    item.Category,
			DisplayName: models.CategoryDisplayName(item.Category),
			AmountCents: item.AmountCents.Cents(),
			Amount:      item.AmountCents.String(),
			Percentage:  item.Percentage,
		})
	}
	return CategoryBreakdownResponse{
		Period:     kind,
		Interval:   NewIntervalView(interval),
		TotalCents: total.Cents(),
		Total:      total.String(),
		Items:      views,
	}
}

// PaymentMethodBreakdownItem is one payment-method bucket of a breakdown.
type PaymentMethodBreakdownItem struct {
	PaymentMethod string `json:"payment_method"`
	DisplayName   string `json:"display_name"`
	AmountCents   int64  `json:"amount_cents"`
	Amount        string `json:"amount"`
	Percentage    int    `json:"percentage"`
}

// PaymentMethodBreakdownResponse is the payload for a per-method analysis.
type PaymentMethodBreakdownResponse struct {
	Period     string                       `json:"period"`
	Interval   IntervalView                 `json:"interval"`
	TotalCents int64                        `json:"total_cents"`
	Total      string                       `json:"total"`
	Items      []PaymentMethodBreakdownItem `json:"items"`
}

// NewPaymentMethodBreakdownResponse assembles the API view of a payment-method breakdown.
func NewPaymentMethodBreakdownResponse(kind string, interval models.Interval, items []models.PaymentMethodSpending, total models.Money) PaymentMethodBreakdownResponse {
	views := make([]PaymentMethodBreakdownItem, 0, len(items))
	for _, item := range items {
		views = append(views, PaymentMethodBreakdownItem{
			PaymentMethod: item.PaymentMethod,
			DisplayName:   models.PaymentMethodDisplayName(item.PaymentMethod),
			AmountCents:   item.AmountCents.Cents(),
			Amount:        item.AmountCents.String(),
			Percentage:    item.Percentage,
		})
	}
	return PaymentMethodBreakdownResponse{
		Period:     kind,
		Interval:   NewIntervalView(interval),
		TotalCents: total.Cents(),
		Total:      total.String(),
		Items:      views,
	}
}

// TrendPointView is one interval of a trend series.
type TrendPointView struct {
	IntervalStart time.Time `json:"interval_start"`
	IntervalEnd   time.Time `json:"interval_end"`
	AmountCents   int64     `json:"amount_cents"`
	Amount        string    `json:"amount"`
	Label         string    `json:"label"`
}

// TrendComparisonView compares the two most recent intervals of a series.
type TrendComparisonView struct {
	ChangePercent int  `json:"change_percent"`
	Increased     bool `json:"increased"`
}

// TrendSeriesResponse is the payload for a spending trend query.
type TrendSeriesResponse struct {
	Period       string              `json:"period"`
	Points       []TrendPointView    `json:"points"`
	AverageCents int64               `json:"average_cents"`
	Average      string              `json:"average"`
	Comparison   TrendComparisonView `json:"comparison"`
}

// NewTrendSeriesResponse assembles the API view of a trend series.
func NewTrendSeriesResponse(kind string, series models.TrendSeries) TrendSeriesResponse {
	points := make([]TrendPointView, 0, len(series.Points))
	for _, point := range series.Points {
		points = append(points, TrendPointView{
			IntervalStart: point.IntervalStart,
			IntervalEnd:   point.IntervalEnd,
			AmountCents:   point.AmountCents.Cents(),
			Amount:        point.AmountCents.String(),
			Label:         point.Label,
		})
	}
	return TrendSeriesResponse{
		Period:       kind,
		Points:       points,
		AverageCents: series.AverageSpending.Cents(),
		Average:      series.AverageSpending.String(),
		Comparison: TrendComparisonView{
			ChangePercent: series.Comparison.ChangePercent,
			Increased:     series.Comparison.Increased,
		},
	}
}

// GoalView is the progress of a single category goal.
type GoalView struct {
	Category        string  `json:"category"`
	DisplayName     string  `json:"display_name"`
	LimitCents      int64   `json:"limit_cents"`
	SpentCents      int64   `json:"spent_cents"`
	RemainingCents  int64   `json:"remaining_cents"`
	ProgressRatio   float64 `json:"progress_ratio"`
	IsOverBudget    bool    `json:"is_over_budget"`
	OverBudgetLabel string  `json:"over_budget_label,omitempty"`
}

// GoalReportResponse is the payload for a goal progress query.
type GoalReportResponse struct {
	Period          string       `json:"period"`
	Interval        IntervalView `json:"interval"`
	Goals           []GoalView   `json:"goals"`
	TotalBudget     int64        `json:"total_budget_cents"`
	TotalSpent      int64        `json:"total_spent_cents"`
	OverallProgress float64      `json:"overall_progress"`
}

// NewGoalReportResponse assembles the API view of a goal report.
func NewGoalReportResponse(report models.GoalReport) GoalReportResponse {
	goals := make([]GoalView, 0, len(report.Goals))
	for _, goal := range report.Goals {
		view := GoalView{
			Category:       goal.Category,
			DisplayName:    models.CategoryDisplayName(goal.Category),
			LimitCents:     goal.LimitCents.Cents(),
			SpentCents:     goal.CurrentSpendingCents.Cents(),
			RemainingCents: goal.Remaining().Cents(),
			ProgressRatio:  goal.ProgressRatio(),
			IsOverBudget:   goal.IsOverBudget(),
		}
		if goal.IsOverBudget() {
			view.OverBudgetLabel = goal.OverBudgetLabel()
		}
		goals = append(goals, view)
	}
	return GoalReportResponse{
		Period:          report.PeriodKind,
		Interval:        NewIntervalView(report.Interval),
		Goals:           goals,
		TotalBudget:     report.TotalBudget.Cents(),
		TotalSpent:      report.TotalSpent.Cents(),
		OverallProgress: report.OverallProgress,
	}
}
