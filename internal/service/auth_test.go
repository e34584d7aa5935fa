package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"aris-backend/internal/domain"
	"aris-backend/internal/repository"
	"aris-backend/internal/security"
)

func newAuthServiceForTest() (AuthService, *MockUserRepo, *MockTenantRepo) {
	userRepo := new(MockUserRepo)
	tenantRepo := new(MockTenantRepo)
	tokens := security.NewTokenManager("test-secret-at-least-32-chars-long!", time.Hour, 24*time.Hour)
	return NewAuthService(userRepo, tenantRepo, tokens), userRepo, tenantRepo
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := HashPassword("correct horse")
	assert.NoError(t, err)

	tenant := &domain.Tenant{ID: 1, Slug: "acme", DisplayName: "Acme Rentals", Active: true}
	user := &domain.User{ID: 5, TenantID: 1, Email: "alice@acme.test", PasswordHash: hash, Active: true}

	t.Run("Success", func(t *testing.T) {
		svc, userRepo, tenantRepo := newAuthServiceForTest()
		tenantRepo.On("GetBySlug", ctx, "acme").Return(tenant, nil)
		userRepo.On("GetByEmail", ctx, int32(1), "alice@acme.test").Return(user, nil)

		result, err := svc.Login(ctx, "acme", "alice@acme.test", "correct horse")
		assert.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, int32(5), result.User.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc, userRepo, tenantRepo := newAuthServiceForTest()
		tenantRepo.On("GetBySlug", ctx, "acme").Return(tenant, nil)
		userRepo.On("GetByEmail", ctx, int32(1), "alice@acme.test").Return(user, nil)

		_, err := svc.Login(ctx, "acme", "alice@acme.test", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownTenantLooksLikeBadCredentials", func(t *testing.T) {
		svc, _, tenantRepo := newAuthServiceForTest()
		tenantRepo.On("GetBySlug", ctx, "nope").Return(nil, repository.ErrNotFound)

		_, err := svc.Login(ctx, "nope", "alice@acme.test", "correct horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("InactiveTenant", func(t *testing.T) {
		svc, _, tenantRepo := newAuthServiceForTest()
		tenantRepo.On("GetBySlug", ctx, "dormant").
			Return(&domain.Tenant{ID: 2, Slug: "dormant", Active: false}, nil)

		_, err := svc.Login(ctx, "dormant", "alice@acme.test", "correct horse")
		assert.ErrorIs(t, err, ErrTenantInactive)
	})

	t.Run("InactiveUser", func(t *testing.T) {
		svc, userRepo, tenantRepo := newAuthServiceForTest()
		tenantRepo.On("GetBySlug", ctx, "acme").Return(tenant, nil)
		userRepo.On("GetByEmail", ctx, int32(1), "bob@acme.test").
			Return(&domain.User{ID: 6, TenantID: 1, Email: "bob@acme.test", PasswordHash: hash, Active: false}, nil)

		_, err := svc.Login(ctx, "acme", "bob@acme.test", "correct horse")
		assert.ErrorIs(t, err, ErrUserInactive)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("test-secret-at-least-32-chars-long!", time.Hour, 24*time.Hour)

	t.Run("RotatesPair", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockTenantRepo), tokens)
		userRepo.On("GetByID", ctx, int32(5)).
			Return(&domain.User{ID: 5, TenantID: 1, Email: "alice@acme.test", Active: true}, nil)

		refresh, err := tokens.GenerateRefreshToken(5, 1, "alice@acme.test")
		assert.NoError(t, err)

		access, newRefresh, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
		assert.Equal(t, int32(1), claims.TenantID)
	})

	t.Run("AccessTokenNotAcceptedForRefresh", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepo), new(MockTenantRepo), tokens)
		access, err := tokens.GenerateAccessToken(5, 1, "alice@acme.test")
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})

	t.Run("DisabledUserCannotRotate", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockTenantRepo), tokens)
		userRepo.On("GetByID", ctx, int32(5)).
			Return(&domain.User{ID: 5, TenantID: 1, Active: false}, nil)

		refresh, err := tokens.GenerateRefreshToken(5, 1, "alice@acme.test")
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, refresh)
		assert.ErrorIs(t, err, ErrUserInactive)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepo), new(MockTenantRepo), tokens)
		_, _, err := svc.RefreshToken(ctx, "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
