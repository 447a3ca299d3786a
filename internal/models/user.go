package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"type:text;not null" json:"name"`
	Email string    `gorm:"type:text;not null;uniqueIndex" json:"email"`

	// Resume is the single embedded resume document; re-uploading replaces it
	// wholesale. ResumeRevision is bumped on every replace so concurrent
	// ingests resolve to a deterministic last-write-wins.
	Resume         *ResumeData `gorm:"type:jsonb" json:"resume,omitempty"`
	ResumeRevision int64       `gorm:"not null;default:0" json:"-"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
