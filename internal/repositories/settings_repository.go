package repositories

import (
	"errors"
	"fmt"

	"spendlens/internal/models"

	"gorm.io/gorm"
)

// settingsRepository implements SettingsRepositoryInterface. A single
// settings row holds the whole configuration; first access creates it with
// the deployment's default period boundaries.
type settingsRepository struct {
	db       *gorm.DB
	defaults models.PeriodBoundaryConfig
}

// NewSettingsRepository creates a new settings repository. The boundary
// defaults seed the settings row the first time it is read, so the env
// configuration applies until a client saves its own boundaries.
func NewSettingsRepository(db *gorm.DB, defaults models.PeriodBoundaryConfig) SettingsRepositoryInterface {
	return &settingsRepository{
		db:       db,
		defaults: defaults,
	}
}

func (r *settingsRepository) Get() (*models.Settings, error) {
	var settings models.Settings
	err := r.db.Order("id").First(&settings).Error
	if err == nil {
		return &settings, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	seeded := models.SettingsWithBoundaries(r.defaults)
	if err := r.db.Create(seeded).Error; err != nil {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}

	return seeded, nil
}

func (r *settingsRepository) Save(settings *models.Settings) error {
	if err := settings.BoundaryConfig().Validate(); err != nil {
		return err
	}

	if err := r.db.Save(settings).Error; err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
