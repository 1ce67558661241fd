package model

import (
	"time"
)

// UserPresenceModel is the GORM-specific struct for the 'user_presence' table.
// One row per user that has ever raised an alert.
type UserPresenceModel struct {
	UID         string    `gorm:"type:varchar(128);primaryKey"`
	Email       string    `gorm:"type:varchar(255)"`
	DisplayName string    `gorm:"type:varchar(255)"`
	IsAnonymous bool      `gorm:"not null;default:false"`
	LastActive  time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserPresenceModel) TableName() string {
	return "user_presence"
}

// PanicAlertModel is the GORM-specific struct for the 'panic_alerts' table.
// owner_user_id plays the role of the per-user partition.
type PanicAlertModel struct {
	ID               string  `gorm:"type:varchar(64);primaryKey"`
	OwnerUserID      string  `gorm:"type:varchar(128);not null;index:idx_panic_alerts_owner_created,priority:1"`
	UserEmail        string  `gorm:"type:varchar(255)"`
	UserName         string  `gorm:"type:varchar(255)"`
	Latitude         float64 `gorm:"not null"`
	Longitude        float64 `gorm:"not null"`
	LocationDegraded bool    `gorm:"not null;default:false"`
	Status           string  `gorm:"type:varchar(20);not null;index"`
	Resolved         bool    `gorm:"not null;default:false"`
	IsAnonymous      bool    `gorm:"not null;default:false"`
	Notes            string  `gorm:"type:text"`
	UserAgent        string  `gorm:"type:text"`
	ClientTimestamp  *time.Time
	CreatedAt        time.Time `gorm:"not null;index;index:idx_panic_alerts_owner_created,priority:2,sort:desc"`
	UpdatedAt        time.Time
	UpdatedBy        string `gorm:"type:varchar(128)"`
}

// TableName explicitly sets the table name for GORM.
func (PanicAlertModel) TableName() string {
	return "panic_alerts"
}
