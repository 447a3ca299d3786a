package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/models"
)

type PortfolioRepository interface {
	Create(portfolio *models.Portfolio) error
	FindByUserID(userID uuid.UUID) ([]models.Portfolio, error)
	FindByShareToken(token string) (*models.Portfolio, error)
}

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

// Create implements PortfolioRepository.
func (r *portfolioRepository) Create(portfolio *models.Portfolio) error {
	if err := r.db.Create(portfolio).Error; err != nil {
		return fmt.Errorf("failed to create portfolio: %w", err)
	}

	return nil
}

// FindByUserID implements PortfolioRepository.
func (r *portfolioRepository) FindByUserID(userID uuid.UUID) ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&portfolios).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find portfolios: %w", err)
	}

	return portfolios, nil
}

// FindByShareToken implements PortfolioRepository.
func (r *portfolioRepository) FindByShareToken(token string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := r.db.Where("share_token = ?", token).First(&portfolio).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("portfolio not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find portfolio: %w", err)
	}

	return &portfolio, nil
}
