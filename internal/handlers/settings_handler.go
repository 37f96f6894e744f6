package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"spendlens/internal/dto"
	"spendlens/internal/errors"
	"spendlens/internal/models"
	"spendlens/internal/repositories"

	"github.com/labstack/echo/v4"
)

// SettingsHandler handles the period-boundary and goal configuration endpoints
type SettingsHandler struct {
	settingsRepo repositories.SettingsRepositoryInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsRepo repositories.SettingsRepositoryInterface) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo}
}

// GetSettings returns the stored configuration
// @Summary Get settings
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse "Current settings"
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsRepo.Get()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSettingsResponse(settings))
}

// UpdateSettings patches the stored configuration. Absent fields keep their
// current values; goal maps replace wholesale when present.
// @Summary Update settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} dto.SettingsResponse "Updated settings"
// @Failure 422 {object} errors.ErrorResponse "SETTINGS_002 - Boundary out of range or SETTINGS_003 - Unknown category"
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req dto.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	settings, err := h.settingsRepo.Get()
	if err != nil {
		return SendSystemError(c, err)
	}

	if req.DailyStartHour != nil {
		settings.DailyStartHour = *req.DailyStartHour
	}
	if req.WeeklyStartDay != nil {
		settings.WeeklyStartDay = *req.WeeklyStartDay
	}
	if req.MonthlyStartDay != nil {
		settings.MonthlyStartDay = *req.MonthlyStartDay
	}

	if req.GoalAmounts != nil {
		amounts := make(models.GoalAmountMap, len(req.GoalAmounts))
		for category, cents := range req.GoalAmounts {
			if !models.IsValidCategory(category) {
				return SendError(c, errors.SettingsInvalidCategory,
					errors.WithDetails(fmt.Sprintf("Unknown category %q in goal_amounts", category)))
			}
			if cents < 0 {
				return SendError(c, errors.ValidationInvalidAmount,
					errors.WithDetails(fmt.Sprintf("Goal amount for %s must not be negative", category)))
			}
			amounts[category] = models.MoneyFromCents(cents)
		}
		settings.GoalAmounts = amounts
	}

	if req.GoalCategories != nil {
		categories := make(models.EnabledCategoryMap, len(req.GoalCategories))
		for kind, list := range req.GoalCategories {
			if !models.IsValidPeriodKind(kind) {
				return SendError(c, errors.PeriodInvalidKind,
					errors.WithDetails(fmt.Sprintf("Unknown period kind %q in goal_categories", kind)))
			}
			for _, category := range list {
				if !models.IsValidCategory(category) {
					return SendError(c, errors.SettingsInvalidCategory,
						errors.WithDetails(fmt.Sprintf("Unknown category %q for period %s", category, kind)))
				}
			}
			categories[kind] = append([]string(nil), list...)
		}
		settings.GoalCategories = categories
	}

	if err := h.settingsRepo.Save(settings); err != nil {
		if stderrors.Is(err, models.ErrInvalidConfiguration) {
			return SendError(c, errors.SettingsInvalidBoundary, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSettingsResponse(settings))
}
