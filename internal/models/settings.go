package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// GoalAmountMap maps category codes to monthly goal amounts in cents,
// serialized as a JSON text column.
type GoalAmountMap map[string]Money

// Value implements driver.Valuer interface
func (m GoalAmountMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (m *GoalAmountMap) Scan(value interface{}) error {
	return scanJSONColumn(value, m, "GoalAmountMap")
}

// EnabledCategoryMap maps a period kind to the set of category codes the user
// opted into goal tracking for that granularity.
type EnabledCategoryMap map[string][]string

// Value implements driver.Valuer interface
func (m EnabledCategoryMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (m *EnabledCategoryMap) Scan(value interface{}) error {
	return scanJSONColumn(value, m, "EnabledCategoryMap")
}

func scanJSONColumn(value, target interface{}, typeName string) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into %s", value, typeName)
	}

	if len(bytes) == 0 {
		return nil
	}

	return json.Unmarshal(bytes, target)
}

// Settings holds the per-user analysis configuration: goal amounts, which
// categories are goal-tracked per period kind, and the period boundaries.
// The analysis services receive Settings as an explicit parameter; nothing
// reads it ambiently.
type Settings struct {
	ID              uint               `gorm:"primary_key" json:"id"`
	DailyStartHour  int                `gorm:"not null;default:0" json:"daily_start_hour"`
	WeeklyStartDay  int                `gorm:"not null;default:0" json:"weekly_start_day"`
	MonthlyStartDay int                `gorm:"not null;default:1" json:"monthly_start_day"`
	GoalAmounts     GoalAmountMap      `gorm:"type:text" json:"goal_amounts"`
	GoalCategories  EnabledCategoryMap `gorm:"type:text" json:"goal_categories"`
	CreatedAt       time.Time          `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time          `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for Settings
func (s *Settings) TableName() string {
	return "settings"
}

// DefaultSettings returns the state of a fresh install: default boundaries,
// no goals, no tracked categories.
func DefaultSettings() *Settings {
	return &Settings{
		DailyStartHour:  0,
		WeeklyStartDay:  0,
		MonthlyStartDay: 1,
		GoalAmounts:     GoalAmountMap{},
		GoalCategories:  EnabledCategoryMap{},
	}
}

// SettingsWithBoundaries returns fresh-install settings using the supplied
// period boundaries in place of the built-in ones.
func SettingsWithBoundaries(config PeriodBoundaryConfig) *Settings {
	settings := DefaultSettings()
	settings.DailyStartHour = config.DailyStartHour
	settings.WeeklyStartDay = config.WeeklyStartDay
	settings.MonthlyStartDay = config.MonthlyStartDay
	return settings
}

// BoundaryConfig extracts the period-boundary configuration.
func (s *Settings) BoundaryConfig() PeriodBoundaryConfig {
	return PeriodBoundaryConfig{
		DailyStartHour:  s.DailyStartHour,
		WeeklyStartDay:  s.WeeklyStartDay,
		MonthlyStartDay: s.MonthlyStartDay,
	}
}

// GoalAmount returns the monthly goal for a category, zero when unset.
func (s *Settings) GoalAmount(category string) Money {
	return s.GoalAmounts[category]
}

// EnabledCategories returns the categories goal-tracked for a period kind,
// deduplicated, restricted to valid categories, and sorted in canonical
// category order so downstream output is deterministic.
func (s *Settings) EnabledCategories(kind string) []string {
	seen := make(map[string]bool)
	enabled := make([]string, 0, len(s.GoalCategories[kind]))
	for _, category := range s.GoalCategories[kind] {
		if !IsValidCategory(category) || seen[category] {
			continue
		}
		seen[category] = true
		enabled = append(enabled, category)
	}

	sort.Slice(enabled, func(i, j int) bool {
		return CategoryRank(enabled[i]) < CategoryRank(enabled[j])
	})

	return enabled
}
