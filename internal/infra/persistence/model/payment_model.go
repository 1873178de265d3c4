package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. Method specific columns are
// nullable and only one group is filled per row.
type PaymentModel struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Amount         int               `gorm:"not null"`
	Method         string            `gorm:"type:varchar(20);not null"`
	Status         string            `gorm:"type:varchar(20);not null;index"`
	PaidByID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	PaidBy         *UserProfileModel `gorm:"foreignKey:PaidByID"`
	PixQRCode      *string           `gorm:"type:text"`
	CardOwnerName  *string           `gorm:"type:varchar(255)"`
	CardLastDigits *string           `gorm:"type:varchar(4)"`
	BoletoBarcode  *string           `gorm:"type:varchar(64)"`
	ErrorDetail    *string           `gorm:"type:text"`
	ExpiresAt      time.Time         `gorm:"not null"`
	CreatedAt      time.Time         `gorm:"not null"`
	UpdatedAt      *time.Time        `gorm:"autoUpdateTime:false"`
	Version        int64             `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}

// TicketModel mirrors the 'tickets' table.
type TicketModel struct {
	ID          uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID                  `gorm:"type:uuid;not null;index"`
	Owner       *UserProfileModel          `gorm:"foreignKey:OwnerID"`
	AllotmentID uuid.UUID                  `gorm:"type:uuid;not null;index"`
	Allotment   *EventTicketAllotmentModel `gorm:"foreignKey:AllotmentID"`
	PaymentID   uuid.UUID                  `gorm:"type:uuid;not null;index"`
	Payment     *PaymentModel              `gorm:"foreignKey:PaymentID"`
	CreatedAt   time.Time                  `gorm:"not null"`
	UpdatedAt   *time.Time                 `gorm:"autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (TicketModel) TableName() string {
	return "tickets"
}

// All lists every model in dependency order for migrations.
func All() []any {
	return []any{
		&UserIdentityModel{},
		&UserProfileModel{},
		&EventModel{},
		&EventLocationModel{},
		&EventTicketAllotmentModel{},
		&PaymentModel{},
		&TicketModel{},
	}
}
