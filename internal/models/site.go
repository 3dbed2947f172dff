package models

type Site struct {
	BaseModel

	Identifier string `gorm:"uniqueIndex;not null"`
	Name       string `gorm:"not null"`
	Monitoring bool   `gorm:"default:true"`
	OwnerID    uint   `gorm:"not null;index"`

	DiscordWebhook string
	SlackWebhook   string

	// Relationships
	Owner    User      `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Monitors []Monitor `gorm:"foreignKey:SiteID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
