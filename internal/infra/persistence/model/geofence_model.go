package model

import (
	"time"
)

// GeofenceModel is the GORM-specific struct for the 'geofences' table.
// Only dynamic fences are stored; configured fences never reach the database.
type GeofenceModel struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Latitude  float64   `gorm:"not null"`
	Longitude float64   `gorm:"not null"`
	Radius    float64   `gorm:"not null;check:radius >= 10 AND radius <= 10000"`
	Type      string    `gorm:"type:varchar(20);not null;index"`
	Color     string    `gorm:"type:varchar(16);not null"`
	IsActive  bool      `gorm:"not null;default:true;index"`
	CreatedBy string    `gorm:"type:varchar(128);not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GeofenceModel) TableName() string {
	return "geofences"
}
