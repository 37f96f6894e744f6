package dto

import (
	"spendlens/internal/models"
)

// UpdateSettingsRequest carries period boundary preferences and goal
// configuration. Pointer fields distinguish "leave unchanged" from an
// explicit zero.
type UpdateSettingsRequest struct {
	DailyStartHour  *int `json:"daily_start_hour,omitempty" validate:"omitempty,min=0,max=23"`
	WeeklyStartDay  *int `json:"weekly_start_day,omitempty" validate:"omitempty,min=0,max=6"`
	MonthlyStartDay *int `json:"monthly_start_day,omitempty" validate:"omitempty,min=1,max=31"`

	// GoalAmounts maps category constants to monthly limits in cents.
	GoalAmounts map[string]int64 `json:"goal_amounts,omitempty"`
	// GoalCategories maps a period kind to the categories tracked for it.
	GoalCategories map[string][]string `json:"goal_categories,omitempty"`
}

// SettingsResponse is the API view of stored settings.
type SettingsResponse struct {
	DailyStartHour  int                 `json:"daily_start_hour"`
	WeeklyStartDay  int                 `json:"weekly_start_day"`
	MonthlyStartDay int                 `json:"monthly_start_day"`
	GoalAmounts     map[string]int64    `json:"goal_amounts"`
	GoalCategories  map[string][]string `json:"goal_categories"`
}

// NewSettingsResponse converts a settings model into its API view.
func NewSettingsResponse(s *models.Settings) SettingsResponse {
	amounts := make(map[string]int64, len(s.GoalAmounts))
	for category, cents := range s.GoalAmounts {
		amounts[category] = cents.Cents()
	}
	categories := make(map[string][]string, len(s.GoalCategories))
	for kind, list := range s.GoalCategories {
		categories[kind] = append([]string(nil), list...)
	}
	return SettingsResponse{
		DailyStartHour:  s.DailyStartHour,
		WeeklyStartDay:  s.WeeklyStartDay,
		MonthlyStartDay: s.MonthlyStartDay,
		GoalAmounts:     amounts,
		GoalCategories:  categories,
	}
}
