package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nordbok/bokforing/internal/adapter/http/dto"
	"github.com/nordbok/bokforing/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrSeriesNotFound),
		errors.Is(err, domain.ErrVoucherNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPeriodLocked),
		errors.Is(err, domain.ErrLockOverlap),
		errors.Is(err, domain.ErrAlreadyPosted):
		return http.StatusConflict
	case errors.Is(err, domain.ErrVoucherUnbalanced),
		errors.Is(err, domain.ErrNotPosted),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidLockRange),
		errors.Is(err, domain.ErrInvalidAccountType),
		errors.Is(err, domain.ErrInvalidAccountNumber):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseDateQuery reads an optional date query parameter.
// An absent parameter yields a nil date; a malformed one is an error.
func parseDateQuery(r *http.Request, key string) (*domain.Date, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil, nil
	}

	d, err := domain.ParseDate(val)
	if err != nil {
		return nil, fmt.Errorf("query parameter %q: %w", key, err)
	}

	return &d, nil
}
