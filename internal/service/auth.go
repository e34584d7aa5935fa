package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"aris-backend/internal/domain"
	"aris-backend/internal/repository"
	"aris-backend/internal/security"
)

type authService struct {
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	tokens     security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tenantRepo repository.TenantRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
		tokens:     tokens,
	}
}

// Login authenticates within one tenant. The user lookup is scoped by tenant
// id, so the same email can exist independently under different tenants.
func (s *authService) Login(ctx context.Context, tenantSlug, email, password string) (*LoginResult, error) {
	tenant, err := s.tenantRepo.GetBySlug(ctx, tenantSlug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !tenant.Active {
		return nil, ErrTenantInactive
	}

	user, err := s.userRepo.GetByEmail(ctx, tenant.ID, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Active {
		return nil, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.TenantID, user.Email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.TenantID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:         user,
		Tenant:       tenant,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	// Re-check the account so a disabled user cannot keep rotating tokens.
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	if !user.Active {
		return "", "", ErrUserInactive
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.TenantID, user.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.TenantID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// HashPassword is used by seeding and account provisioning.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
