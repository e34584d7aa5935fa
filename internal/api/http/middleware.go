package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"aris-backend/internal/domain"
	"aris-backend/internal/logger"
	"aris-backend/internal/security"
	"aris-backend/internal/service"
)

type contextKey string

const (
	claimsKey contextKey = "claims"
	tenantKey contextKey = "tenant"
)

func claimsFrom(ctx context.Context) *security.UserClaims {
	claims, _ := ctx.Value(claimsKey).(*security.UserClaims)
	return claims
}

func tenantFrom(ctx context.Context) *domain.Tenant {
	t, _ := ctx.Value(tenantKey).(*domain.Tenant)
	return t
}

// authMiddleware validates the bearer token and stores its claims on the
// request context. Only access tokens pass.
func authMiddleware(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeServiceError(r.Context(), w, err)
				return
			}
			if claims.Type != security.TokenTypeAccess {
				writeServiceError(r.Context(), w, security.ErrWrongTokenType)
				return
			}
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tenantMiddleware resolves the {tenant} path slug and pins the request to
// it. A token minted for another tenant gets the same generic 404 as a slug
// that does not exist; the mismatch detail goes to the log only.
func tenantMiddleware(tenants service.TenantService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slug := mux.Vars(r)["tenant"]
			tenant, err := tenants.Resolve(r.Context(), slug)
			if err != nil {
				writeServiceError(r.Context(), w, err)
				return
			}
			claims := claimsFrom(r.Context())
			if claims == nil || claims.TenantID != tenant.ID {
				logger.WarnContext(r.Context(), "cross-tenant access rejected",
					"tenant_slug", slug, "tenant_id", tenant.ID,
					"token_tenant_id", claimsTenantID(claims),
					"user_id", claimsUserID(claims),
					"path", r.URL.Path)
				writeError(w, http.StatusNotFound, "not found")
				return
			}
			ctx := context.WithValue(r.Context(), tenantKey, tenant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func claimsTenantID(c *security.UserClaims) int32 {
	if c == nil {
		return 0
	}
	return c.TenantID
}

func claimsUserID(c *security.UserClaims) int32 {
	if c == nil {
		return 0
	}
	return c.UserID
}

// loggingMiddleware logs each request with its status and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		logger.InfoContext(r.Context(), "http request",
			"method", r.Method, "path", r.URL.Path,
			"status", sw.status, "duration_ms", time.Since(start).Milliseconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
