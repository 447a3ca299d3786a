package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/apperror"
	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/internal/repositories"
)

// PortfolioService manages portfolio records and the resume-data reads the
// presentation layer depends on.
type PortfolioService interface {
	CreatePortfolio(ctx context.Context, userID uuid.UUID, template string) (*models.Portfolio, error)
	ListPortfolios(ctx context.Context, userID uuid.UUID) ([]models.Portfolio, error)
	GetResumeData(ctx context.Context, callerID, userID uuid.UUID) (*models.ResumeData, error)
	GetPublicPortfolio(ctx context.Context, shareToken string) (*models.PublicPortfolio, error)
}

type portfolioService struct {
	portfolioRepo repositories.PortfolioRepository
	userRepo      repositories.UserRepository
}

func NewPortfolioService(
	portfolioRepo repositories.PortfolioRepository,
	userRepo repositories.UserRepository,
) PortfolioService {
	return &portfolioService{
		portfolioRepo: portfolioRepo,
		userRepo:      userRepo,
	}
}

// CreatePortfolio implements PortfolioService. Creating twice with the same
// template yields two records: users generate several named variants of the
// same layout.
func (s *portfolioService) CreatePortfolio(ctx context.Context, userID uuid.UUID, template string) (*models.Portfolio, error) {
	if !models.IsSupportedTemplate(template) {
		return nil, apperror.New(apperror.ErrInvalidInput, fmt.Sprintf("unknown template %q", template))
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrUserNotFound, "user does not exist", err)
		}
		return nil, apperror.Wrap(apperror.ErrInternal, "failed to look up user", err)
	}

	now := time.Now()
	portfolio := &models.Portfolio{
		ID:         uuid.New(),
		UserID:     user.ID,
		Title:      fmt.Sprintf("%s_%s", template, user.Name),
		Template:   template,
		ShareToken: uuid.NewString(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.portfolioRepo.Create(portfolio); err != nil {
		return nil, apperror.Wrap(apperror.ErrInternal, "failed to create portfolio", err)
	}

	return portfolio, nil
}

// ListPortfolios implements PortfolioService.
func (s *portfolioService) ListPortfolios(ctx context.Context, userID uuid.UUID) ([]models.Portfolio, error) {
	portfolios, err := s.portfolioRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrInternal, "failed to list portfolios", err)
	}

	return portfolios, nil
}

// GetResumeData implements PortfolioService. Only the owner may read their
// resume through this path; public rendering goes through share tokens.
func (s *portfolioService) GetResumeData(ctx context.Context, callerID, userID uuid.UUID) (*models.ResumeData, error) {
	if callerID != userID {
		return nil, apperror.New(apperror.ErrForbidden, "resume data belongs to another user")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrUserNotFound, "user does not exist", err)
		}
		return nil, apperror.Wrap(apperror.ErrInternal, "failed to look up user", err)
	}

	if user.Resume == nil {
		return nil, apperror.New(apperror.ErrNoResumeOnFile, "no resume has been uploaded yet")
	}

	return user.Resume, nil
}

// GetPublicPortfolio implements PortfolioService. The share token is the only
// credential; it resolves to the template plus the owner's resume.
func (s *portfolioService) GetPublicPortfolio(ctx context.Context, shareToken string) (*models.PublicPortfolio, error) {
	portfolio, err := s.portfolioRepo.FindByShareToken(shareToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrPortfolioNotFound, "no portfolio for this link", err)
		}
		return nil, apperror.Wrap(apperror.ErrInternal, "failed to look up portfolio", err)
	}

	user, err := s.userRepo.FindByID(portfolio.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrUserNotFound, "portfolio owner no longer exists", err)
		}
		return nil, apperror.Wrap(apperror.ErrInternal, "failed to look up portfolio owner", err)
	}

	if user.Resume == nil {
		return nil, apperror.New(apperror.ErrNoResumeOnFile, "the owner has not uploaded a resume yet")
	}

	return &models.PublicPortfolio{
		Title:    portfolio.Title,
		Template: portfolio.Template,
		Resume:   user.Resume,
	}, nil
}
