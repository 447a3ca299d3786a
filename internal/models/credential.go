package models

import (
	"time"

	"github.com/google/uuid"
)

// Credential links a User to an identity-provider subject. One row is created
// on first login from a provider and only ever read afterwards.
type Credential struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Provider  string    `gorm:"type:text;not null;uniqueIndex:idx_credentials_provider_subject" json:"provider"`
	Subject   string    `gorm:"type:text;not null;uniqueIndex:idx_credentials_provider_subject" json:"subject"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Credential) TableName() string {
	return "credentials"
}
