package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/apperror"
	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/internal/repositories"
)

// GoogleProvider is the issuer stored on credentials created via Google login.
const GoogleProvider = "https://accounts.google.com"

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// AuthService runs the Google authorization-code flow and resolves provider
// identities to local users. A credential row is created once on first login
// and only looked up afterwards.
type AuthService interface {
	LoginURL(state string) string
	HandleCallback(ctx context.Context, code string) (string, error)
}

type authService struct {
	credRepo     repositories.CredentialRepository
	userRepo     repositories.UserRepository
	tokenService TokenService
	oauthConfig  *oauth2.Config
}

func NewAuthService(
	credRepo repositories.CredentialRepository,
	userRepo repositories.UserRepository,
	tokenService TokenService,
	clientID, clientSecret, redirectURL string,
) AuthService {
	return &authService{
		credRepo:     credRepo,
		userRepo:     userRepo,
		tokenService: tokenService,
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     endpoints.Google,
		},
	}
}

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginURL implements AuthService.
func (s *authService) LoginURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state)
}

// HandleCallback implements AuthService. It exchanges the authorization code,
// resolves (or creates) the local user, and returns a signed bearer token.
func (s *authService) HandleCallback(ctx context.Context, code string) (string, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return "", apperror.Wrap(apperror.ErrUnauthorized, "authorization code exchange failed", err)
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		return "", apperror.Wrap(apperror.ErrUnauthorized, "failed to fetch Google profile", err)
	}

	user, err := s.resolveUser(info)
	if err != nil {
		return "", err
	}

	signed, err := s.tokenService.GenerateToken(user.ID)
	if err != nil {
		return "", apperror.Wrap(apperror.ErrInternal, "failed to issue token", err)
	}

	return signed, nil
}

func (s *authService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)

	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}

	if info.ID == "" {
		return nil, fmt.Errorf("userinfo response missing subject id")
	}

	return &info, nil
}

func (s *authService) resolveUser(info *googleUserInfo) (*models.User, error) {
	cred, err := s.credRepo.FindByProviderSubject(GoogleProvider, info.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrInternal, "failed to look up credential", err)
		}

		// First login from this provider: create the user and its credential.
		now := time.Now()
		user := &models.User{
			ID:        uuid.New(),
			Name:      info.Name,
			Email:     info.Email,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, apperror.Wrap(apperror.ErrInternal, "failed to create user", err)
		}

		newCred := &models.Credential{
			ID:        uuid.New(),
			UserID:    user.ID,
			Provider:  GoogleProvider,
			Subject:   info.ID,
			CreatedAt: now,
		}
		if err := s.credRepo.Create(newCred); err != nil {
			return nil, apperror.Wrap(apperror.ErrInternal, "failed to create credential", err)
		}

		log.Printf("✅ Created new user %s via Google login", user.ID)
		return user, nil
	}

	user, err := s.userRepo.FindByID(cred.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrUserNotFound, "credential points at a missing user", err)
		}
		return nil, apperror.Wrap(apperror.ErrInternal, "failed to look up user", err)
	}

	return user, nil
}
