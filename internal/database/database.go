package database

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"spendlens/internal/config"
	"spendlens/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the gorm connection so callers can run health checks and
// schema maintenance without reaching into database/sql themselves.
type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// New opens a Postgres connection with the pool limits from cfg.
// Timestamps are generated in UTC so period boundaries stay stable
// regardless of the server's local zone.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, config: cfg}, nil
}

// AutoMigrate syncs the schema for every tracked model.
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Transaction{},
		&models.Settings{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateIndexes adds the indexes the list and breakdown queries lean on.
// Failures are logged and skipped so a missing privilege does not block
// startup.
func (db *DB) CreateIndexes() error {
	for _, stmt := range []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_payment_method ON transactions(payment_method)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_title_lower ON transactions(LOWER(title))",
	} {
		if err := db.DB.Exec(stmt).Error; err != nil {
			slog.Warn("failed to create index", "query", stmt, "error", err)
		}
	}
	return nil
}

// Initialize connects, brings the schema up to date, and returns the
// shared gorm handle. SQL migrations run first when AUTO_MIGRATE is on;
// otherwise, or when the runner fails, gorm's AutoMigrate covers the
// schema.
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		if !errors.Is(err, ErrMigrationsDisabled) {
			slog.Warn("migration runner failed, falling back to AutoMigrate", "error", err)
		}
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", "error", err)
	}

	slog.Info("database initialized")

	return db.DB, nil
}
