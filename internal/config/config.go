package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"spendlens/internal/models"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Analytics AnalyticsConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
	RateLimitPerSec  int
	RateLimitBurst   int
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// AnalyticsConfig carries the defaults applied before the user customizes
// anything: period boundaries and the trend chart length per period kind.
type AnalyticsConfig struct {
	DailyStartHour    int
	WeeklyStartDay    int
	MonthlyStartDay   int
	DailyTrendCount   int
	WeeklyTrendCount  int
	MonthlyTrendCount int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:             getEnv("SERVER_PORT", "8080"),
			Host:             getEnv("SERVER_HOST", "localhost"),
			Environment:      getEnv("APP_ENV", "development"),
			ReadTimeout:      getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:     getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			CORSAllowOrigins: getSliceEnv("CORS_ALLOW_ORIGINS", []string{"*"}),
			RateLimitPerSec:  getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:   getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "spendlens_user"),
			Password:        getEnv("DB_PASSWORD", "spendlens_password"),
			Name:            getEnv("DB_NAME", "spendlens_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Analytics: AnalyticsConfig{
			DailyStartHour:    getIntEnv("DAILY_START_HOUR", 0),
			WeeklyStartDay:    getIntEnv("WEEKLY_START_DAY", 0),
			MonthlyStartDay:   getIntEnv("MONTHLY_START_DAY", 1),
			DailyTrendCount:   getIntEnv("DAILY_TREND_COUNT", 7),
			WeeklyTrendCount:  getIntEnv("WEEKLY_TREND_COUNT", 8),
			MonthlyTrendCount: getIntEnv("MONTHLY_TREND_COUNT", 6),
		},
	}
}

// Validate rejects a configuration the analytics engine would refuse at
// query time, so a bad deployment fails at startup instead.
func (c *Config) Validate() error {
	boundary := c.Analytics.BoundaryConfig()
	if err := boundary.Validate(); err != nil {
		return fmt.Errorf("analytics config: %w", err)
	}

	if c.Server.RateLimitPerSec < 1 {
		return fmt.Errorf("rate limit per second must be positive, got %d", c.Server.RateLimitPerSec)
	}

	return nil
}

// BoundaryConfig converts the configured defaults into the engine's boundary
// type.
func (a AnalyticsConfig) BoundaryConfig() models.PeriodBoundaryConfig {
	return models.PeriodBoundaryConfig{
		DailyStartHour:  a.DailyStartHour,
		WeeklyStartDay:  a.WeeklyStartDay,
		MonthlyStartDay: a.MonthlyStartDay,
	}
}

// TrendCount returns the configured chart length for a period kind.
func (a AnalyticsConfig) TrendCount(kind string) int {
	switch kind {
	case models.PeriodDaily:
		return a.DailyTrendCount
	case models.PeriodWeekly:
		return a.WeeklyTrendCount
	default:
		return a.MonthlyTrendCount
	}
}

// DSN builds the postgres connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}
	return result
}
