package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification records a webhook delivery attempt for an incident.
type Notification struct {
	gorm.Model

	IncidentID uint   `gorm:"not null;index"`
	Channel    string `gorm:"not null"` // "discord", "slack"
	Status     string `gorm:"not null"` // "sent", "failed"
	Message    string
	SentAt     *time.Time

	// Relationships
	Incident Incident `gorm:"foreignKey:IncidentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
