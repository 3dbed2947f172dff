// Package settings manages the singleton application settings row.
// Reads fall back to defaults when no row has been saved yet, so the
// service works on a fresh database without seeding.
package settings

import (
	"errors"

	"github.com/sitewatch-dev/sitewatch/db"
	"github.com/sitewatch-dev/sitewatch/internal/models"
	"gorm.io/gorm"
)

// Load returns the saved settings, or defaults when none exist.
func Load() (models.Settings, error) {
	var saved models.Settings

	err := db.DB.First(&saved).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultSettings(), nil
	}

	if err != nil {
		return models.DefaultSettings(), err
	}

	return saved, nil
}

// Save persists the settings, creating the row when absent.
func Save(updated models.Settings) (models.Settings, error) {
	var saved models.Settings

	err := db.DB.First(&saved).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.DB.Create(&updated).Error; err != nil {
			return models.Settings{}, err
		}

		return updated, nil
	}

	if err != nil {
		return models.Settings{}, err
	}

	saved.HistoryLimit = updated.HistoryLimit
	saved.CheckIntervalSeconds = updated.CheckIntervalSeconds
	saved.TimeoutSeconds = updated.TimeoutSeconds
	saved.RetryAttempts = updated.RetryAttempts
	saved.SLATargetPercentage = updated.SLATargetPercentage

	if err := db.DB.Save(&saved).Error; err != nil {
		return models.Settings{}, err
	}

	return saved, nil
}

// Reset restores the defaults, replacing any saved row.
func Reset() (models.Settings, error) {
	return Save(models.DefaultSettings())
}

// HistoryLimit returns the retained checks per monitor.
func HistoryLimit() int {
	saved, err := Load()

	if err != nil {
		return models.DefaultSettings().HistoryLimit
	}

	return saved.HistoryLimit
}

// UpdateHistoryLimit changes only the history limit.
func UpdateHistoryLimit(limit int) (models.Settings, error) {
	saved, err := Load()

	if err != nil {
		return models.Settings{}, err
	}

	saved.HistoryLimit = limit

	return Save(saved)
}
