package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrWrongTokenType = errors.New("wrong token type for this endpoint")
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// UserClaims carries the authenticated identity. TenantID is part of the
// claims so every request is pinned to one tenant without a second lookup.
type UserClaims struct {
	UserID   int32     `json:"user_id"`
	TenantID int32     `json:"tenant_id"`
	Email    string    `json:"email,omitempty"`
	Type     TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateAccessToken(userID, tenantID int32, email string) (string, error)
	GenerateRefreshToken(userID, tenantID int32, email string) (string, error)
	ValidateToken(tokenString string) (*UserClaims, error)
}

type tokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) TokenManager {
	return &tokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (m *tokenManager) GenerateAccessToken(userID, tenantID int32, email string) (string, error) {
	return m.generate(userID, tenantID, email, TokenTypeAccess, m.accessTTL, "api-access")
}

func (m *tokenManager) GenerateRefreshToken(userID, tenantID int32, email string) (string, error) {
	return m.generate(userID, tenantID, email, TokenTypeRefresh, m.refreshTTL, "token-refresh")
}

func (m *tokenManager) generate(userID, tenantID int32, email string, typ TokenType, ttl time.Duration, audience string) (string, error) {
	claims := UserClaims{
		UserID:   userID,
		TenantID: tenantID,
		Email:    email,
		Type:     typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userID)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "aris-backend",
			Audience:  jwt.ClaimStrings{audience},
			ID:        generateJTI(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		if claims.UserID == 0 && claims.Subject != "" {
			uid, _ := strconv.Atoi(claims.Subject)
			claims.UserID = int32(uid)
		}
		return claims, nil
	}

	return nil, ErrInvalidToken
}

func generateJTI() string {
	return strconv.FormatInt(time.Now().UnixNano(), 16)
}
