package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"aris-backend/internal/domain"
	"aris-backend/internal/service"
)

type AuthHandler struct {
	authSvc   service.AuthService
	tenantSvc service.TenantService
}

func NewAuthHandler(authSvc service.AuthService, tenantSvc service.TenantService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, tenantSvc: tenantSvc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	User         *domain.User   `json:"user"`
	Tenant       *domain.Tenant `json:"tenant"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.authSvc.Login(r.Context(), mux.Vars(r)["tenant"], req.Email, req.Password)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         result.User,
		Tenant:       result.Tenant,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	access, refresh, err := h.authSvc.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	user, err := h.authSvc.CurrentUser(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Tenants lists the active tenants for the workspace picker.
func (h *AuthHandler) Tenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.tenantSvc.List(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, tenants)
}
