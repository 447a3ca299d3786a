package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/models"
)

type CredentialRepository interface {
	Create(cred *models.Credential) error
	FindByProviderSubject(provider, subject string) (*models.Credential, error)
}

type credentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{db: db}
}

// Create implements CredentialRepository.
func (r *credentialRepository) Create(cred *models.Credential) error {
	if err := r.db.Create(cred).Error; err != nil {
		return fmt.Errorf("failed to create credential: %w", err)
	}

	return nil
}

// FindByProviderSubject implements CredentialRepository.
func (r *credentialRepository) FindByProviderSubject(provider, subject string) (*models.Credential, error) {
	var cred models.Credential
	err := r.db.
		Where("provider = ? AND subject = ?", provider, subject).
		First(&cred).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("credential not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find credential: %w", err)
	}

	return &cred, nil
}
