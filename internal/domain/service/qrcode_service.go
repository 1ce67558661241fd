package service

import (
	"raahi/internal/domain/entity"
)

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateAlertQR renders a PNG QR code that field responders scan to open the alert location
	GenerateAlertQR(alert *entity.PanicAlert) ([]byte, error)
}

// AlertQRPayload is the JSON document embedded in an alert QR code.
// Responder apps read map_url; the ids let them open the alert record.
type AlertQRPayload struct {
	Type      string  `json:"type"`
	AlertID   string  `json:"alert_id"`
	UserID    string  `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	MapURL    string  `json:"map_url"`
}
