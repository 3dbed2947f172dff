package models

import "gorm.io/gorm"

// Settings is the application-wide settings row. A single row is kept;
// DefaultSettings supplies the values used when none has been saved yet.
type Settings struct {
	gorm.Model

	HistoryLimit         int     `gorm:"not null"` // retained checks per monitor
	CheckIntervalSeconds int     `gorm:"not null"` // default interval for new monitors
	TimeoutSeconds       int     `gorm:"not null"` // default per-check timeout
	RetryAttempts        int     `gorm:"not null"` // default retry attempts
	SLATargetPercentage  float64 `gorm:"not null"`
}

func DefaultSettings() Settings {
	return Settings{
		HistoryLimit:         500,
		CheckIntervalSeconds: 60,
		TimeoutSeconds:       10,
		RetryAttempts:        3,
		SLATargetPercentage:  99.9,
	}
}
