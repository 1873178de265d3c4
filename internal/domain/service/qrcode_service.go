package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateEventQR renders a PNG QR code pointing at the public page of an event
	GenerateEventQR(eventID uuid.UUID) ([]byte, error)
}
