package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/apperror"
	"github.com/devfolio/devfolio/internal/models"
)

type memPortfolioRepo struct {
	portfolios []models.Portfolio
}

func (m *memPortfolioRepo) Create(portfolio *models.Portfolio) error {
	m.portfolios = append(m.portfolios, *portfolio)
	return nil
}

func (m *memPortfolioRepo) FindByUserID(userID uuid.UUID) ([]models.Portfolio, error) {
	var result []models.Portfolio
	for _, p := range m.portfolios {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *memPortfolioRepo) FindByShareToken(token string) (*models.Portfolio, error) {
	for _, p := range m.portfolios {
		if p.ShareToken == token {
			copied := p
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("portfolio not found: %w", gorm.ErrRecordNotFound)
}

func TestCreatePortfolioDerivesTitleFromTemplateAndName(t *testing.T) {
	user := testUser()
	userRepo := newMemUserRepo(user)
	portfolioRepo := &memPortfolioRepo{}
	svc := NewPortfolioService(portfolioRepo, userRepo)

	portfolio, err := svc.CreatePortfolio(context.Background(), user.ID, models.TemplateNova)

	require.NoError(t, err)
	assert.Equal(t, "nova_Jane Doe", portfolio.Title)
	assert.Equal(t, models.TemplateNova, portfolio.Template)
	assert.Equal(t, user.ID, portfolio.UserID)
	assert.NotEmpty(t, portfolio.ShareToken)
}

func TestCreatePortfolioRejectsUnknownTemplate(t *testing.T) {
	user := testUser()
	svc := NewPortfolioService(&memPortfolioRepo{}, newMemUserRepo(user))

	_, err := svc.CreatePortfolio(context.Background(), user.ID, "brutalist")

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestCreatePortfolioUserNotFound(t *testing.T) {
	svc := NewPortfolioService(&memPortfolioRepo{}, newMemUserRepo())

	_, err := svc.CreatePortfolio(context.Background(), uuid.New(), models.TemplateKyoto)

	assert.ErrorIs(t, err, apperror.ErrUserNotFound)
}

func TestCreatePortfolioAllowsDuplicateTemplates(t *testing.T) {
	user := testUser()
	portfolioRepo := &memPortfolioRepo{}
	svc := NewPortfolioService(portfolioRepo, newMemUserRepo(user))

	first, err := svc.CreatePortfolio(context.Background(), user.ID, models.TemplateTerminal)
	require.NoError(t, err)
	second, err := svc.CreatePortfolio(context.Background(), user.ID, models.TemplateTerminal)
	require.NoError(t, err)

	assert.Len(t, portfolioRepo.portfolios, 2)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.ShareToken, second.ShareToken)
}

func TestListPortfoliosScopedToOwner(t *testing.T) {
	owner := testUser()
	other := testUser()
	userRepo := newMemUserRepo(owner, other)
	portfolioRepo := &memPortfolioRepo{}
	svc := NewPortfolioService(portfolioRepo, userRepo)

	_, err := svc.CreatePortfolio(context.Background(), owner.ID, models.TemplateGallery)
	require.NoError(t, err)
	_, err = svc.CreatePortfolio(context.Background(), other.ID, models.TemplateCascade)
	require.NoError(t, err)

	portfolios, err := svc.ListPortfolios(context.Background(), owner.ID)
	require.NoError(t, err)

	require.Len(t, portfolios, 1)
	assert.Equal(t, owner.ID, portfolios[0].UserID)
}

func TestGetResumeDataRejectsNonOwner(t *testing.T) {
	owner := testUser()
	owner.Resume = janeResume()
	svc := NewPortfolioService(&memPortfolioRepo{}, newMemUserRepo(owner))

	_, err := svc.GetResumeData(context.Background(), uuid.New(), owner.ID)

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestGetResumeDataUserNotFound(t *testing.T) {
	svc := NewPortfolioService(&memPortfolioRepo{}, newMemUserRepo())
	missing := uuid.New()

	_, err := svc.GetResumeData(context.Background(), missing, missing)

	assert.ErrorIs(t, err, apperror.ErrUserNotFound)
}

func TestGetResumeDataNoResumeOnFile(t *testing.T) {
	user := testUser()
	svc := NewPortfolioService(&memPortfolioRepo{}, newMemUserRepo(user))

	_, err := svc.GetResumeData(context.Background(), user.ID, user.ID)

	assert.ErrorIs(t, err, apperror.ErrNoResumeOnFile)
}

func TestGetResumeDataIsIdempotent(t *testing.T) {
	user := testUser()
	user.Resume = janeResume()
	svc := NewPortfolioService(&memPortfolioRepo{}, newMemUserRepo(user))

	first, err := svc.GetResumeData(context.Background(), user.ID, user.ID)
	require.NoError(t, err)
	second, err := svc.GetResumeData(context.Background(), user.ID, user.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetPublicPortfolioResolvesShareToken(t *testing.T) {
	user := testUser()
	user.Resume = janeResume()
	userRepo := newMemUserRepo(user)
	portfolioRepo := &memPortfolioRepo{}
	svc := NewPortfolioService(portfolioRepo, userRepo)

	created, err := svc.CreatePortfolio(context.Background(), user.ID, models.TemplateInfographic)
	require.NoError(t, err)

	public, err := svc.GetPublicPortfolio(context.Background(), created.ShareToken)
	require.NoError(t, err)

	assert.Equal(t, created.Title, public.Title)
	assert.Equal(t, models.TemplateInfographic, public.Template)
	assert.Equal(t, user.Resume, public.Resume)
}

func TestGetPublicPortfolioUnknownToken(t *testing.T) {
	svc := NewPortfolioService(&memPortfolioRepo{}, newMemUserRepo())

	_, err := svc.GetPublicPortfolio(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, apperror.ErrPortfolioNotFound)
}

func TestGetPublicPortfolioOwnerWithoutResume(t *testing.T) {
	user := testUser()
	userRepo := newMemUserRepo(user)
	portfolioRepo := &memPortfolioRepo{}
	svc := NewPortfolioService(portfolioRepo, userRepo)

	created, err := svc.CreatePortfolio(context.Background(), user.ID, models.TemplateTerminal)
	require.NoError(t, err)

	_, err = svc.GetPublicPortfolio(context.Background(), created.ShareToken)
	assert.ErrorIs(t, err, apperror.ErrNoResumeOnFile)
}
