package model

import (
	"time"

	"github.com/google/uuid"
)

// VerificationTokenModel mirrors the 'verification_tokens' table. Rows are
// written only through the owning user's cascade save and are never deleted
// by the workflow; consumed and expired tokens remain as an audit trail.
type VerificationTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Token      string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	Type       string    `gorm:"type:varchar(32);not null"`
	IsVerified bool      `gorm:"not null;default:false"`
	ExpiresAt  time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (VerificationTokenModel) TableName() string {
	return "verification_tokens"
}
