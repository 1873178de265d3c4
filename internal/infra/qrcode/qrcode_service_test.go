package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"outside/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_RecoveryLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService("https://outside.example", 256, tt.level)
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestNewQRCodeService_FromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.PublicBaseURL = "https://outside.example/"

	svc := NewQRCodeService(cfg).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, "https://outside.example", svc.baseURL)
}

func TestQRCodeService_EventURL(t *testing.T) {
	svc := newQRCodeService("https://outside.example/", 256, "M")
	id := uuid.MustParse("0b4c6d8e-1f2a-4b3c-9d8e-7f6a5b4c3d2e")

	assert.Equal(t, "https://outside.example/events/0b4c6d8e-1f2a-4b3c-9d8e-7f6a5b4c3d2e", svc.EventURL(id))
}

func TestQRCodeService_GenerateEventQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := newQRCodeService("https://outside.example", size, "M")

		qrBytes, err := svc.GenerateEventQR(uuid.New())
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}
