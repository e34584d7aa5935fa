package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"aris-backend/internal/logger"
	"aris-backend/internal/repository"
	"aris-backend/internal/security"
	"aris-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps domain errors onto HTTP statuses. Unknown errors are
// logged with full detail and answered with a generic 500 so internals never
// leak to the client.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Message, Field: vErr.Field})
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrVersionConflict):
		writeError(w, http.StatusConflict, "record was modified, reload and retry")
	case errors.Is(err, repository.ErrEquipmentUnavailable):
		writeError(w, http.StatusConflict, "equipment is not available for rental")
	case errors.Is(err, service.ErrAlreadyReturned):
		writeError(w, http.StatusConflict, "rental has already been returned")
	case errors.Is(err, service.ErrNotReturned):
		writeError(w, http.StatusConflict, "rental has not been returned")
	case errors.Is(err, service.ErrDueDateNotExtended):
		writeError(w, http.StatusBadRequest, "new due date must be after the current due date")
	case errors.Is(err, service.ErrEquipmentRented):
		writeError(w, http.StatusConflict, "equipment is currently rented")
	case errors.Is(err, service.ErrCustomerHasOpenRentals):
		writeError(w, http.StatusConflict, "customer has open rentals")
	case errors.Is(err, service.ErrInvalidBulkAction):
		writeError(w, http.StatusBadRequest, "invalid bulk action")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, service.ErrUserInactive):
		writeError(w, http.StatusForbidden, "account is disabled")
	case errors.Is(err, service.ErrTenantInactive):
		writeError(w, http.StatusForbidden, "tenant is not active")
	case errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
	default:
		logger.ErrorContext(ctx, "request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeCSV(w http.ResponseWriter, filename, body string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
