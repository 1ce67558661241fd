package qrcode

import (
	"testing"

	"raahi/config"
	"raahi/internal/domain/entity"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAlert() *entity.PanicAlert {
	return &entity.PanicAlert{
		ID:          "alert-1",
		OwnerUserID: "user-1",
		Location:    entity.Coordinate{Latitude: 28.6562, Longitude: 77.2410},
		Status:      entity.AlertStatusActive,
	}
}

func TestNewQRCodeService_ErrorCorrection(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{ErrorCorrectionLevel: tt.level}})
			assert.Equal(t, tt.want, svc.(*qrcodeService).errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateAlertQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: size}})

		qrBytes, err := svc.GenerateAlertQR(testAlert())
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_Payload(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

	payload := svc.payload(testAlert())
	assert.Equal(t, "panic_alert", payload.Type)
	assert.Equal(t, "alert-1", payload.AlertID)
	assert.Equal(t, "user-1", payload.UserID)
	assert.Equal(t, "https://www.google.com/maps?q=28.656200,77.241000", payload.MapURL)

	custom := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		MapURLTemplate: "https://maps.example/?lat=%.4f&lng=%.4f",
	}}).(*qrcodeService)
	assert.Equal(t, "https://maps.example/?lat=28.6562&lng=77.2410", custom.payload(testAlert()).MapURL)
}

func TestQRCodeService_RequiresAlert(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	_, err := svc.GenerateAlertQR(nil)
	assert.Error(t, err)

	_, err = svc.GenerateAlertQR(&entity.PanicAlert{})
	assert.Error(t, err)
}
