package handlers

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"spendlens/internal/config"
	"spendlens/internal/dto"
	"spendlens/internal/errors"
	"spendlens/internal/models"
	"spendlens/internal/repositories"
	"spendlens/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves spending breakdowns, trend series and goal reports.
// Every endpoint accepts an explicit reference_date so clients replay past
// periods; the server clock is only the fallback.
type AnalyticsHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	settingsRepo    repositories.SettingsRepositoryInterface
	periodService   services.PeriodServiceInterface
	analyticsSvc    services.AnalyticsServiceInterface
	trendService    services.TrendServiceInterface
	goalService     services.GoalServiceInterface
	analyticsConfig config.AnalyticsConfig
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	settingsRepo repositories.SettingsRepositoryInterface,
	periodService services.PeriodServiceInterface,
	analyticsSvc services.AnalyticsServiceInterface,
	trendService services.TrendServiceInterface,
	goalService services.GoalServiceInterface,
	analyticsConfig config.AnalyticsConfig,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
		periodService:   periodService,
		analyticsSvc:    analyticsSvc,
		trendService:    trendService,
		goalService:     goalService,
		analyticsConfig: analyticsConfig,
	}
}

// analyticsParams holds the validated query parameters shared by the
// analytics endpoints.
type analyticsParams struct {
	kind      string
	reference time.Time
}

// parseAnalyticsParams validates the period kind and reference date query
// parameters. reference_date accepts RFC 3339 or a bare YYYY-MM-DD date.
func parseAnalyticsParams(c echo.Context) (analyticsParams, *errors.ErrorCode) {
	params := analyticsParams{
		kind:      models.PeriodMonthly,
		reference: time.Now().UTC(),
	}

	if kind := c.QueryParam("period"); kind != "" {
		if !models.IsValidPeriodKind(kind) {
			code := errors.PeriodInvalidKind
			return params, &code
		}
		params.kind = kind
	}

	if refStr := c.QueryParam("reference_date"); refStr != "" {
		ref, err := time.Parse(time.RFC3339, refStr)
		if err != nil {
			ref, err = time.Parse("2006-01-02", refStr)
		}
		if err != nil {
			code := errors.ValidationInvalidDate
			return params, &code
		}
		params.reference = ref
	}

	return params, nil
}

// CategoryBreakdown returns the per-category spending breakdown for one period
// @Summary Category spending breakdown
// @Tags Analytics
// @Produce json
// @Param period query string false "Period kind" Enums(daily, weekly, monthly) default(monthly)
// @Param reference_date query string false "Date inside the target period (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.CategoryBreakdownResponse "Breakdown sorted by descending amount"
// @Failure 400 {object} errors.ErrorResponse "PERIOD_001 - Invalid period kind"
// @Failure 422 {object} errors.ErrorResponse "PERIOD_002 - Invalid boundary configuration"
// @Router /analytics/categories [get]
func (h *AnalyticsHandler) CategoryBreakdown(c echo.Context) error {
	params, errCode := parseAnalyticsParams(c)
	if errCode != nil {
		return SendError(c, *errCode)
	}

	settings, err := h.settingsRepo.Get()
	if err != nil {
		return SendSystemError(c, err)
	}
	boundary := settings.BoundaryConfig()

	transactions, err := h.transactionRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	breakdown, err := h.analyticsSvc.CategoryBreakdown(transactions, params.kind, params.reference, boundary)
	if err != nil {
		return sendPeriodError(c, err)
	}

	total, err := h.analyticsSvc.TotalSpending(transactions, params.kind, params.reference, boundary)
	if err != nil {
		return sendPeriodError(c, err)
	}

	interval, err := h.periodService.ResolveInterval(params.kind, params.reference, boundary)
	if err != nil {
		return sendPeriodError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryBreakdownResponse(params.kind, interval, breakdown, total))
}

// PaymentMethodBreakdown returns the per-payment-method breakdown for one period
// @Summary Payment method spending breakdown
// @Tags Analytics
// @Produce json
// @Param period query string false "Period kind" Enums(daily, weekly, monthly) default(monthly)
// @Param reference_date query string false "Date inside the target period (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.PaymentMethodBreakdownResponse "Breakdown sorted by descending amount"
// @Failure 400 {object} errors.ErrorResponse "PERIOD_001 - Invalid period kind"
// @Router /analytics/payment-methods [get]
func (h *AnalyticsHandler) PaymentMethodBreakdown(c echo.Context) error {
	params, errCode := parseAnalyticsParams(c)
	if errCode != nil {
		return SendError(c, *errCode)
	}

	settings, err := h.settingsRepo.Get()
	if err != nil {
		return SendSystemError(c, err)
	}
	boundary := settings.BoundaryConfig()

	transactions, err := h.transactionRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	breakdown, err := h.analyticsSvc.PaymentMethodBreakdown(transactions, params.kind, params.reference, boundary)
	if err != nil {
		return sendPeriodError(c, err)
	}

	total, err := h.analyticsSvc.TotalSpending(transactions, params.kind, params.reference, boundary)
	if err != nil {
		return sendPeriodError(c, err)
	}

	interval, err := h.periodService.ResolveInterval(params.kind, params.reference, boundary)
	if err != nil {
		return sendPeriodError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPaymentMethodBreakdownResponse(params.kind, interval, breakdown, total))
}

// Trend returns consecutive period totals ending at the reference period
// @Summary Spending trend series
// @Tags Analytics
// @Produce json
// @Param period query string false "Period kind" Enums(daily, weekly, monthly) default(monthly)
// @Param reference_date query string false "Date inside the newest period (RFC 3339 or YYYY-MM-DD)"
// @Param count query int false "Number of periods; defaults per period kind"
// @Success 200 {object} dto.TrendSeriesResponse "Series ordered oldest to newest"
// @Failure 400 {object} errors.ErrorResponse "PERIOD_003 - Invalid period count"
// @Router /analytics/trend [get]
func (h *AnalyticsHandler) Trend(c echo.Context) error {
	params, errCode := parseAnalyticsParams(c)
	if errCode != nil {
		return SendError(c, *errCode)
	}

	count := h.analyticsConfig.TrendCount(params.kind)
	if countStr := c.QueryParam("count"); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil || parsed < 1 {
			return SendError(c, errors.PeriodInvalidCount)
		}
		if parsed > maxTrendCount {
			parsed = maxTrendCount
		}
		count = parsed
	}

	settings, err := h.settingsRepo.Get()
	if err != nil {
		return SendSystemError(c, err)
	}

	transactions, err := h.transactionRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	series, err := h.trendService.BuildSeries(transactions, params.kind, params.reference, settings.BoundaryConfig(), count)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidPeriodCount) {
			return SendError(c, errors.PeriodInvalidCount)
		}
		return sendPeriodError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTrendSeriesResponse(params.kind, *series))
}

// Goals returns the goal progress report for one period
// @Summary Budget goal progress
// @Tags Analytics
// @Produce json
// @Param period query string false "Period kind" Enums(daily, weekly, monthly) default(monthly)
// @Param reference_date query string false "Date inside the target period (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.GoalReportResponse "Goals sorted by descending progress"
// @Failure 400 {object} errors.ErrorResponse "PERIOD_001 - Invalid period kind"
// @Router /analytics/goals [get]
func (h *AnalyticsHandler) Goals(c echo.Context) error {
	params, errCode := parseAnalyticsParams(c)
	if errCode != nil {
		return SendError(c, *errCode)
	}

	settings, err := h.settingsRepo.Get()
	if err != nil {
		return SendSystemError(c, err)
	}

	transactions, err := h.transactionRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	report, err := h.goalService.ComputeGoals(transactions, params.kind, params.reference, settings)
	if err != nil {
		return sendPeriodError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewGoalReportResponse(*report))
}

const maxTrendCount = 60

// sendPeriodError maps period resolution failures to API error codes.
func sendPeriodError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, models.ErrInvalidPeriodKind):
		return SendError(c, errors.PeriodInvalidKind)
	case stderrors.Is(err, models.ErrInvalidConfiguration):
		return SendError(c, errors.PeriodInvalidConfiguration, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
