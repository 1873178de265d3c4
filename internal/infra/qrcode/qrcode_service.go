package qrcode

import (
	"fmt"
	"strings"

	"outside/config"
	"outside/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service that links to event pages under
// the public base URL.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return newQRCodeService(cfg.HTTP.PublicBaseURL, size, level)
}

func newQRCodeService(baseURL string, size int, errorCorrectionLevel string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// EventURL is the link encoded in an event's QR code.
func (s *qrcodeService) EventURL(eventID uuid.UUID) string {
	return fmt.Sprintf("%s/events/%s", s.baseURL, eventID)
}

// GenerateEventQR renders the event link as a PNG.
func (s *qrcodeService) GenerateEventQR(eventID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.EventURL(eventID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
