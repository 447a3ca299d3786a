package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported portfolio templates. The set is closed: the frontend ships exactly
// these six layouts and a portfolio referencing anything else cannot render.
const (
	TemplateTerminal    = "terminal"
	TemplateInfographic = "infographic"
	TemplateCascade     = "cascade"
	TemplateGallery     = "gallery"
	TemplateNova        = "nova"
	TemplateKyoto       = "kyoto"
)

var SupportedTemplates = []string{
	TemplateTerminal,
	TemplateInfographic,
	TemplateCascade,
	TemplateGallery,
	TemplateNova,
	TemplateKyoto,
}

func IsSupportedTemplate(name string) bool {
	for _, t := range SupportedTemplates {
		if t == name {
			return true
		}
	}
	return false
}

// Portfolio pairs a user with a chosen template. The share token is the
// unguessable handle used for public (unauthenticated) rendering.
type Portfolio struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title      string    `gorm:"type:text;not null" json:"title"`
	Template   string    `gorm:"type:text;not null" json:"template"`
	ShareToken string    `gorm:"type:text;not null;uniqueIndex" json:"share_token"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}
