package models

import (
	"time"

	"gorm.io/gorm"
)

type Incident struct {
	gorm.Model

	MonitorID   uint   `gorm:"not null;index"`
	Status      string `gorm:"not null"` // "open", "resolved"
	Severity    string `gorm:"not null"`
	Title       string `gorm:"not null"`
	Description string
	StartedAt   *time.Time
	ResolvedAt  *time.Time

	// Relationships
	Monitor       Monitor        `gorm:"foreignKey:MonitorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Notifications []Notification `gorm:"foreignKey:IncidentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// Duration reports how long the incident lasted, or how long it has
// been open so far when unresolved.
func (i *Incident) Duration() time.Duration {
	if i.StartedAt == nil {
		return 0
	}

	if i.ResolvedAt != nil {
		return i.ResolvedAt.Sub(*i.StartedAt)
	}

	return time.Since(*i.StartedAt)
}
