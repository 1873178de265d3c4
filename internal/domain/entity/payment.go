package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentExpiry is how long a created payment stays payable.
const PaymentExpiry = 15 * time.Minute

// PaymentMethod is how a payment is settled.
type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentStatusNone       PaymentStatus = "none"
	PaymentStatusCreated    PaymentStatus = "created"
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusFinished   PaymentStatus = "finished"
	PaymentStatusExpired    PaymentStatus = "expired"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
	PaymentStatusError      PaymentStatus = "error"
)

// Payment records an attempt to pay for tickets. Only the schema exists,
// nothing drives its lifecycle yet.
type Payment struct {
	ID             uuid.UUID
	Amount         int
	Method         PaymentMethod
	Status         PaymentStatus
	PaidByID       uuid.UUID
	PixQRCode      *string // Set for PaymentMethodPix.
	CardOwnerName  *string // Set for PaymentMethodCreditCard.
	CardLastDigits *string // Set for PaymentMethodCreditCard.
	BoletoBarcode  *string // Set for PaymentMethodBoleto.
	ErrorDetail    *string
	ExpiresAt      time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	Version        int64
}

// NewPayment creates a payment in the created state that expires after
// PaymentExpiry.
func NewPayment(id, payerID uuid.UUID, amount int, method PaymentMethod, now time.Time) *Payment {
	return &Payment{
		ID:        id,
		Amount:    amount,
		Method:    method,
		Status:    PaymentStatusCreated,
		PaidByID:  payerID,
		ExpiresAt: now.Add(PaymentExpiry),
		CreatedAt: now,
	}
}

// IsExpired reports whether the payment can no longer be settled at now.
func (p *Payment) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// Ticket grants its owner entry through an allotment once its payment settles.
type Ticket struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	AllotmentID uuid.UUID
	PaymentID   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
