// Package qrcode renders responder QR codes for panic alerts.
package qrcode

import (
	"encoding/json"
	"fmt"

	"raahi/config"
	"raahi/internal/domain/entity"
	"raahi/internal/domain/service"
	"raahi/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	alertQRType           = "panic_alert"
	defaultSize           = 256
	defaultMapURLTemplate = "https://www.google.com/maps?q=%f,%f"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	mapURLTemplate       string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, template := defaultSize, "M", defaultMapURLTemplate
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
		if cfg.QRCode.MapURLTemplate != "" {
			template = cfg.QRCode.MapURLTemplate
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		mapURLTemplate:       template,
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateAlertQR renders the alert payload as a PNG
func (s *qrcodeService) GenerateAlertQR(alert *entity.PanicAlert) ([]byte, error) {
	if alert == nil || alert.ID == "" {
		return nil, errors.New("alert is required for QR code generation")
	}

	jsonData, err := json.Marshal(s.payload(alert))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) payload(alert *entity.PanicAlert) service.AlertQRPayload {
	return service.AlertQRPayload{
		Type:      alertQRType,
		AlertID:   alert.ID,
		UserID:    alert.OwnerUserID,
		Latitude:  alert.Location.Latitude,
		Longitude: alert.Location.Longitude,
		MapURL:    fmt.Sprintf(s.mapURLTemplate, alert.Location.Latitude, alert.Location.Longitude),
	}
}
