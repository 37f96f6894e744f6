package handlers

import (
	"net/http"
	"strconv"
	"time"

	"spendlens/internal/repositories"
	"spendlens/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler serves endpoints that only exist in development builds.
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.TransactionGeneratorInterface
}

func NewDevHandler(transactionRepo repositories.TransactionRepositoryInterface) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       services.NewTransactionGenerator(),
	}
}

// GenerateTestData seeds the database with realistic sample transactions.
//
// POST /api/v1/dev/generate-test-data?count=100&days=90
//
// count is capped at 1000 and days at 365 so a typo cannot flood the
// database.
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	count := clampQueryInt(c, "count", 100, 1, 1000)
	days := clampQueryInt(c, "days", 90, 1, 365)

	end := time.Now()
	start := end.AddDate(0, 0, -days)

	transactions := h.generator.Generate(count, start, end)
	if err := h.transactionRepo.CreateBatch(transactions); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store generated transactions")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "test data generated successfully",
		"transactions_created": len(transactions),
		"date_range": map[string]string{
			"start": start.Format(time.RFC3339),
			"end":   end.Format(time.RFC3339),
		},
	})
}

// clampQueryInt reads an integer query parameter, substituting def when
// absent or unparseable, and clamping the result into [min, max].
func clampQueryInt(c echo.Context, key string, def, min, max int) int {
	value := def
	if raw := c.QueryParam(key); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			value = parsed
		}
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
