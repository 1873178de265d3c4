// Package model holds the GORM persistence models. They mirror the database
// tables and are mapped to domain entities by the repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserIdentityModel mirrors the 'user_identities' table.
type UserIdentityModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime:false"`
	Version      int64      `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserIdentityModel) TableName() string {
	return "user_identities"
}

// UserProfileModel mirrors the 'user_profiles' table. IdentityID references user_identities.id.
type UserProfileModel struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey"`
	IdentityID uuid.UUID          `gorm:"type:uuid;uniqueIndex;not null"`
	Identity   *UserIdentityModel `gorm:"foreignKey:IdentityID;constraint:OnDelete:CASCADE"`
	FirstName  string             `gorm:"type:varchar(100);not null"`
	LastName   string             `gorm:"type:varchar(100);not null"`
	CreatedAt  time.Time          `gorm:"not null"`
	UpdatedAt  *time.Time         `gorm:"autoUpdateTime:false"`
	Version    int64              `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
