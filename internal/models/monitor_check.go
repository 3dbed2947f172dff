package models

import (
	"time"
)

// MonitorCheck is one history entry for a monitor. Rows are append-only
// and ordered by CheckedAt; the scheduler prunes the oldest rows beyond
// the configured history limit.
type MonitorCheck struct {
	BaseModel

	MonitorID    uint   `gorm:"not null;index"`
	Status       string `gorm:"not null"` // "up" or "down"
	ResponseTime int    `gorm:"not null"` // milliseconds
	Details      string
	CheckedAt    time.Time `gorm:"not null;index"`

	// Relationships
	Monitor Monitor `gorm:"foreignKey:MonitorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
