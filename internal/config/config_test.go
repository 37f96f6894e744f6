package config

import (
	"testing"
	"time"

	"spendlens/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)

	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxConnections)

	assert.Equal(t, 0, cfg.Analytics.DailyStartHour)
	assert.Equal(t, 0, cfg.Analytics.WeeklyStartDay)
	assert.Equal(t, 1, cfg.Analytics.MonthlyStartDay)
	assert.Equal(t, 7, cfg.Analytics.DailyTrendCount)
	assert.Equal(t, 8, cfg.Analytics.WeeklyTrendCount)
	assert.Equal(t, 6, cfg.Analytics.MonthlyTrendCount)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DAILY_START_HOUR", "6")
	t.Setenv("MONTHLY_TREND_COUNT", "12")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 6, cfg.Analytics.DailyStartHour)
	assert.Equal(t, 12, cfg.Analytics.MonthlyTrendCount)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNECTIONS", "lots")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 25, cfg.Database.MaxConnections)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	assert.NoError(t, cfg.Validate())

	cfg.Analytics.MonthlyStartDay = 32
	assert.Error(t, cfg.Validate())

	cfg.Analytics.MonthlyStartDay = 1
	cfg.Server.RateLimitPerSec = 0
	assert.Error(t, cfg.Validate())
}

func TestAnalyticsConfig_BoundaryConfig(t *testing.T) {
	analytics := AnalyticsConfig{DailyStartHour: 6, WeeklyStartDay: 1, MonthlyStartDay: 15}
	boundary := analytics.BoundaryConfig()

	assert.Equal(t, models.PeriodBoundaryConfig{
		DailyStartHour:  6,
		WeeklyStartDay:  1,
		MonthlyStartDay: 15,
	}, boundary)
}

func TestAnalyticsConfig_TrendCount(t *testing.T) {
	analytics := AnalyticsConfig{DailyTrendCount: 7, WeeklyTrendCount: 8, MonthlyTrendCount: 6}

	assert.Equal(t, 7, analytics.TrendCount(models.PeriodDaily))
	assert.Equal(t, 8, analytics.TrendCount(models.PeriodWeekly))
	assert.Equal(t, 6, analytics.TrendCount(models.PeriodMonthly))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "spendlens",
		Password: "secret",
		Name:     "spendlens_db",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=spendlens password=secret dbname=spendlens_db sslmode=require",
		db.DSN())
}
