package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table. CreatedByID references user_profiles.id.
type EventModel struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name             string                      `gorm:"type:varchar(24);not null"`
	Description      string                      `gorm:"type:text;not null"`
	StartsAt         time.Time                   `gorm:"not null;index"`
	FinishesAt       time.Time                   `gorm:"not null"`
	CreatedByID      uuid.UUID                   `gorm:"type:uuid;not null;index"`
	CreatedBy        *UserProfileModel           `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"`
	Location         *EventLocationModel         `gorm:"foreignKey:EventID"`
	TicketAllotments []EventTicketAllotmentModel `gorm:"foreignKey:EventID"`
	CreatedAt        time.Time                   `gorm:"not null"`
	UpdatedAt        *time.Time                  `gorm:"autoUpdateTime:false"`
	Version          int64                       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// EventLocationModel mirrors the 'event_locations' table. One row per event at most.
type EventLocationModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventID      uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	Latitude     float64    `gorm:"type:double precision;not null"`
	Longitude    float64    `gorm:"type:double precision;not null"`
	Country      string     `gorm:"type:varchar(100);not null"`
	State        string     `gorm:"type:varchar(100);not null"`
	City         string     `gorm:"type:varchar(100);not null"`
	PostalCode   string     `gorm:"type:varchar(20);not null"`
	AddressLine1 string     `gorm:"type:varchar(255);not null"`
	AddressLine2 *string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime:false"`
	Version      int64      `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (EventLocationModel) TableName() string {
	return "event_locations"
}

// EventTicketAllotmentModel mirrors the 'event_ticket_allotments' table.
type EventTicketAllotmentModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventID              uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name                 string     `gorm:"type:varchar(100);not null"`
	Amount               int        `gorm:"not null"`
	TicketsQuantityLimit int        `gorm:"not null"`
	CreatedAt            time.Time  `gorm:"not null"`
	UpdatedAt            *time.Time `gorm:"autoUpdateTime:false"`
	Version              int64      `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (EventTicketAllotmentModel) TableName() string {
	return "event_ticket_allotments"
}
