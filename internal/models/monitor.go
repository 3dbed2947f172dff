package models

import (
	"gorm.io/datatypes"
)

type Monitor struct {
	BaseModel

	SiteID        uint           `gorm:"not null;index;uniqueIndex:idx_site_monitor"`
	UUID          string         `gorm:"not null;uniqueIndex:idx_site_monitor"` // client-visible ID, unique within its site
	Type          string         `gorm:"not null"`                              // "http", "ping", "port", "dns"
	Status        string         `gorm:"not null"`                              // "up", "down", "pending", "paused"
	Monitoring    bool           `gorm:"default:true"`
	CheckInterval int            `gorm:"not null"` // seconds between checks
	Timeout       int            `gorm:"not null"` // per-check timeout in seconds
	RetryAttempts int            `gorm:"not null"` // immediate retries before a check counts as down
	ResponseTime  int            // last observed response time in milliseconds
	Config        datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	Site      Site           `gorm:"foreignKey:SiteID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Checks    []MonitorCheck `gorm:"foreignKey:MonitorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Incidents []Incident     `gorm:"foreignKey:MonitorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
