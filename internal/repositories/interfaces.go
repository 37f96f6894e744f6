package repositories

import (
	"time"

	"spendlens/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines persistence operations for
// transactions. List results are always ordered by descending date so the
// analytics layer sees a deterministic snapshot.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
	List(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetAll() ([]models.Transaction, error)
	GetByDateRange(start, end time.Time) ([]models.Transaction, error)
	Count() (int64, error)
}

// SettingsRepositoryInterface persists the single settings row.
type SettingsRepositoryInterface interface {
	// Get returns the stored settings, creating the default row on first
	// access.
	Get() (*models.Settings, error)
	Save(settings *models.Settings) error
}
