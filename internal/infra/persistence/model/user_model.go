// Package model holds the GORM persistence models mirroring the database
// schema. Repositories map these to and from the pure domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The UUID is assigned by the domain at
// construction, never by the database. Verification tokens cascade with the
// user: deleting the row deletes its tokens.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	FirstName      string    `gorm:"type:varchar(100)"`
	LastName       string    `gorm:"type:varchar(100)"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	HashedPassword string    `gorm:"type:varchar(64)"`
	SessionToken   string    `gorm:"type:varchar(255)"`
	Role           string    `gorm:"type:varchar(32);not null"`
	IsVerified     bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Tokens []VerificationTokenModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
