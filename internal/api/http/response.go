package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. Malformed
// input is 400, missing resources 404, state and uniqueness conflicts 409,
// anything unclassified 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var code string
	switch {
	case errors.Is(err, domain.ErrInvalidWindow):
		status, code = http.StatusBadRequest, "INVALID_WINDOW"
	case errors.Is(err, domain.ErrInvalidRateType):
		status, code = http.StatusBadRequest, "INVALID_RATE_TYPE"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrCarUnavailable):
		status, code = http.StatusConflict, "CAR_UNAVAILABLE"
	case errors.Is(err, domain.ErrInvalidState):
		status, code = http.StatusConflict, "INVALID_STATE"
	case errors.Is(err, domain.ErrConflict):
		status, code = http.StatusConflict, "CONFLICT"
	default:
		status, code = http.StatusInternalServerError, "INTERNAL"
		logger.ErrorContext(r.Context(), "Request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.ErrInvalidInput
	}
	return nil
}
