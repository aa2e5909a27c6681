package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/logger"
	"carservice-backend/internal/security"
)

// Envelope is the standard API response wrapper.
type Envelope struct {
	Data  any       `json:"data,omitempty"`
	Error *APIError `json:"error,omitempty"`
}

// APIError represents an error in the API response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Envelope{Data: data}); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. Unrecognized
// errors, store failures included, surface as a plain 500 without leaking
// internals.
func writeError(w http.ResponseWriter, err error) {
	status, apiErr := mapError(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(Envelope{Error: &apiErr}); encErr != nil {
		logger.Error("Failed to encode error response", "error", encErr)
	}
}

func mapError(err error) (int, APIError) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, APIError{Code: "VALIDATION_FAILED", Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken):
		return http.StatusUnauthorized, APIError{Code: "UNAUTHORIZED", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, APIError{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict, APIError{Code: "INVALID_STATE", Message: err.Error()}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, APIError{Code: "CONFLICT", Message: err.Error()}
	default:
		return http.StatusInternalServerError, APIError{Code: "INTERNAL", Message: "internal server error"}
	}
}
