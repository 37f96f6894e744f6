package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spendlens/internal/config"
	"spendlens/internal/database"
	"spendlens/internal/dto"
	"spendlens/internal/errors"
	"spendlens/internal/models"
	"spendlens/internal/repositories"
	"spendlens/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AnalyticsHandlerTestSuite struct {
	suite.Suite
	echo         *echo.Echo
	db           *database.DB
	settingsRepo repositories.SettingsRepositoryInterface
	handler      *AnalyticsHandler
}

func TestAnalyticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func (s *AnalyticsHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.db = database.SetupTestDB(s.T())

	transactionRepo := repositories.NewTransactionRepository(s.db.DB)
	s.settingsRepo = repositories.NewSettingsRepository(s.db.DB, models.DefaultPeriodBoundaryConfig())

	metrics := services.NewNoopMetrics()
	periodService := services.NewPeriodService()
	analyticsConfig := config.AnalyticsConfig{
		DailyTrendCount:   7,
		WeeklyTrendCount:  8,
		MonthlyTrendCount: 6,
	}

	s.handler = NewAnalyticsHandler(
		transactionRepo,
		s.settingsRepo,
		periodService,
		services.NewAnalyticsService(periodService, metrics),
		services.NewTrendService(periodService, metrics),
		services.NewGoalService(periodService, metrics),
		analyticsConfig,
	)
}

func (s *AnalyticsHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AnalyticsHandlerTestSuite) get(fn echo.HandlerFunc, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics?"+query, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(fn(c))
	return rec
}

func (s *AnalyticsHandlerTestSuite) seed(title, category, paymentMethod string, amountCents int64, date time.Time) {
	database.CreateTestTransaction(s.T(), s.db, title, category, paymentMethod, amountCents, date)
}

func (s *AnalyticsHandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) errors.ErrorResponse {
	var response errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *AnalyticsHandlerTestSuite) TestCategoryBreakdown() {
	s.seed("Lunch", models.CategoryFoodDrink, models.PaymentMethodOctopus, 1000,
		time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	s.seed("Sneakers", models.CategoryShopping, models.PaymentMethodCreditCard, 500,
		time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC))
	s.seed("Old dinner", models.CategoryFoodDrink, models.PaymentMethodCash, 9999,
		time.Date(2024, 2, 10, 19, 0, 0, 0, time.UTC))

	rec := s.get(s.handler.CategoryBreakdown, "period=monthly&reference_date=2024-03-15")
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CategoryBreakdownResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	s.Equal(models.PeriodMonthly, response.Period)
	s.Equal(int64(1500), response.TotalCents)
	s.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), response.Interval.Start)
	s.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), response.Interval.End)

	s.Require().Len(response.Items, 2)
	s.Equal(models.CategoryFoodDrink, response.Items[0].Category)
	s.Equal("Food & Drink", response.Items[0].DisplayName)
	s.Equal(int64(1000), response.Items[0].AmountCents)
	s.Equal(67, response.Items[0].Percentage)
	s.Equal(models.CategoryShopping, response.Items[1].Category)
	s.Equal(33, response.Items[1].Percentage)
}

func (s *AnalyticsHandlerTestSuite) TestCategoryBreakdown_EmptyPeriod() {
	rec := s.get(s.handler.CategoryBreakdown, "period=weekly&reference_date=2024-03-15")
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CategoryBreakdownResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Empty(response.Items)
	s.Equal(int64(0), response.TotalCents)
}

func (s *AnalyticsHandlerTestSuite) TestCategoryBreakdown_InvalidPeriod() {
	rec := s.get(s.handler.CategoryBreakdown, "period=yearly")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("PERIOD_001", s.decodeError(rec).Error.Code)
}

func (s *AnalyticsHandlerTestSuite) TestCategoryBreakdown_InvalidReferenceDate() {
	rec := s.get(s.handler.CategoryBreakdown, "reference_date=15-03-2024")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_005", s.decodeError(rec).Error.Code)
}

func (s *AnalyticsHandlerTestSuite) TestPaymentMethodBreakdown() {
	s.seed("Lunch", models.CategoryFoodDrink, models.PaymentMethodOctopus, 750,
		time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	s.seed("Taxi", models.CategoryTransportation, models.PaymentMethodCash, 250,
		time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC))

	rec := s.get(s.handler.PaymentMethodBreakdown, "period=monthly&reference_date=2024-03-15")
	s.Equal(http.StatusOK, rec.Code)

	var response dto.PaymentMethodBreakdownResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	s.Require().Len(response.Items, 2)
	s.Equal(models.PaymentMethodOctopus, response.Items[0].PaymentMethod)
	s.Equal(75, response.Items[0].Percentage)
	s.Equal(models.PaymentMethodCash, response.Items[1].PaymentMethod)
	s.Equal(25, response.Items[1].Percentage)
}

func (s *AnalyticsHandlerTestSuite) TestTrend_DefaultCount() {
	rec := s.get(s.handler.Trend, "period=monthly&reference_date=2024-06-15")
	s.Equal(http.StatusOK, rec.Code)

	var response dto.TrendSeriesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Points, 6, "monthly chart length comes from configuration")
}

func (s *AnalyticsHandlerTestSuite) TestTrend_ExplicitCount() {
	s.seed("January lunch", models.CategoryFoodDrink, models.PaymentMethodOctopus, 400,
		time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC))
	s.seed("March lunch", models.CategoryFoodDrink, models.PaymentMethodOctopus, 600,
		time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	rec := s.get(s.handler.Trend, "period=monthly&reference_date=2024-03-15&count=3")
	s.Equal(http.StatusOK, rec.Code)

	var response dto.TrendSeriesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	s.Require().Len(response.Points, 3)
	s.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), response.Points[0].IntervalStart)
	s.Equal(int64(400), response.Points[0].AmountCents)
	s.Equal(int64(0), response.Points[1].AmountCents)
	s.Equal(int64(600), response.Points[2].AmountCents)
	s.Equal(int64(500), response.AverageCents, "zero months stay out of the average")
}

func (s *AnalyticsHandlerTestSuite) TestTrend_InvalidCount() {
	for _, count := range []string{"0", "-3", "abc"} {
		rec := s.get(s.handler.Trend, "period=monthly&count="+count)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("PERIOD_003", s.decodeError(rec).Error.Code)
	}
}

func (s *AnalyticsHandlerTestSuite) TestGoals_MonthlyProgress() {
	settings, err := s.settingsRepo.Get()
	s.Require().NoError(err)
	settings.GoalAmounts = models.GoalAmountMap{
		models.CategoryFoodDrink: models.MoneyFromCents(150000),
	}
	settings.GoalCategories = models.EnabledCategoryMap{
		models.PeriodMonthly: {models.CategoryFoodDrink},
	}
	s.Require().NoError(s.settingsRepo.Save(settings))

	s.seed("Groceries", models.CategoryFoodDrink, models.PaymentMethodCreditCard, 75000,
		time.Date(2024, 3, 5, 18, 0, 0, 0, time.UTC))

	rec := s.get(s.handler.Goals, "period=monthly&reference_date=2024-03-15")
	s.Equal(http.StatusOK, rec.Code)

	var response dto.GoalReportResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	s.Require().Len(response.Goals, 1)
	goal := response.Goals[0]
	s.Equal(models.CategoryFoodDrink, goal.Category)
	s.Equal(int64(150000), goal.LimitCents)
	s.Equal(int64(75000), goal.SpentCents)
	s.InDelta(0.5, goal.ProgressRatio, 0.001)
	s.False(goal.IsOverBudget)
	s.Empty(goal.OverBudgetLabel)
	s.InDelta(0.5, response.OverallProgress, 0.001)
}

func (s *AnalyticsHandlerTestSuite) TestGoals_WeeklyScalingAndOverBudget() {
	settings, err := s.settingsRepo.Get()
	s.Require().NoError(err)
	settings.GoalAmounts = models.GoalAmountMap{
		models.CategoryFoodDrink: models.MoneyFromCents(150000),
	}
	settings.GoalCategories = models.EnabledCategoryMap{
		models.PeriodWeekly: {models.CategoryFoodDrink},
	}
	s.Require().NoError(s.settingsRepo.Save(settings))

	s.seed("Big dinner", models.CategoryFoodDrink, models.PaymentMethodCreditCard, 40000,
		time.Date(2024, 3, 12, 20, 0, 0, 0, time.UTC))

	rec := s.get(s.handler.Goals, "period=weekly&reference_date=2024-03-15")
	s.Equal(http.StatusOK, rec.Code)

	var response dto.GoalReportResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	s.Require().Len(response.Goals, 1)
	goal := response.Goals[0]
	s.Equal(int64(37500), goal.LimitCents, "monthly amount scaled to a weekly limit")
	s.Equal(int64(40000), goal.SpentCents)
	s.True(goal.IsOverBudget)
	s.Equal("Over by $25.00", goal.OverBudgetLabel)
	s.Equal(int64(-2500), goal.RemainingCents)
}

func (s *AnalyticsHandlerTestSuite) TestGoals_NoConfiguredGoals() {
	rec := s.get(s.handler.Goals, "period=monthly&reference_date=2024-03-15")
	s.Equal(http.StatusOK, rec.Code)

	var response dto.GoalReportResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Empty(response.Goals)
	s.Equal(int64(0), response.TotalBudget)
	s.Equal(float64(0), response.OverallProgress)
}
