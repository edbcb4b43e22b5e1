package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/voyago/backend/internal/ai"
	"github.com/voyago/backend/internal/domain"
)

// errorResponse is the envelope every non-2xx response uses.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondJSON writes v as a JSON body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// respondError maps a service error to an HTTP status and error body.
// Sentinel taxonomy:
//
//	domain.ErrValidation   → 422 validation_error
//	ai.ErrContentBlocked   → 422 content_blocked
//	domain.ErrNotFound     → 404 not_found
//	ai.ErrQuotaExceeded    → 429 rate_limited
//	ai.* (other)           → 502 upstream_error
//	domain.ErrUnavailable  → 503 storage_unavailable
//	anything else          → 500 internal_error (detail logged, not leaked)
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	case errors.Is(err, ai.ErrContentBlocked):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "content_blocked", Message: "the request was blocked by the provider's safety filter"},
		})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: unwrapMessage(err)},
		})
	case errors.Is(err, ai.ErrQuotaExceeded):
		respondJSON(w, http.StatusTooManyRequests, errorResponse{
			Error: errorDetail{Code: "rate_limited", Message: "the AI provider is rate limiting requests; try again shortly"},
		})
	case errors.Is(err, ai.ErrInvalidAPIKey),
		errors.Is(err, ai.ErrNetwork),
		errors.Is(err, ai.ErrModelUnavailable),
		errors.Is(err, ai.ErrMalformedResponse):
		slog.Error("upstream AI failure", "error", err)
		respondJSON(w, http.StatusBadGateway, errorResponse{
			Error: errorDetail{Code: "upstream_error", Message: "the travel search provider is unavailable"},
		})
	case errors.Is(err, domain.ErrUnavailable):
		slog.Error("storage unavailable", "error", err)
		respondJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error: errorDetail{Code: "storage_unavailable", Message: "the trip store is unavailable"},
		})
	default:
		slog.Error("unhandled error", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// notFound writes a 404 with a caller-supplied message, for cases decided in
// the handler itself (e.g. an unparseable id).
func notFound(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusNotFound, errorResponse{
		Error: errorDetail{Code: "not_found", Message: message},
	})
}

// badRequest writes a 400 for requests rejected before reaching the service
// layer (missing or malformed body).
func badRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{
		Error: errorDetail{Code: "bad_request", Message: message},
	})
}

// unwrapMessage extracts the human-readable tail from a wrapped sentinel
// error, e.g. "service.TripService.Create: validation error: origin is
// required" → "origin is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []string{"validation error: ", "not found: "} {
		if i := strings.LastIndex(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
