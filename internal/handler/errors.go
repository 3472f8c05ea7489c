package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: message}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Create: validation error: name is required" → "name is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 && i+len(marker) < len(msg) {
		return msg[i+len(marker):]
	}
	return msg
}

// NewStrictOptions returns the error handlers the strict server uses for
// failures that never reach a typed response.
//
// Request errors (undecodable or oversized bodies) become 400 or 413.
// Response errors become 401 for a missing user and 500 otherwise; the 500
// body is generic and the cause is logged instead.
func NewStrictOptions(logger *slog.Logger) gen.StrictHTTPServerOptions {
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, gen.ErrorResponse{Error: gen.ErrorDetail{
					Code: "request_too_large", Message: "request body too large",
				}})
				return
			}
			writeJSON(w, http.StatusBadRequest, gen.ErrorResponse{Error: gen.ErrorDetail{
				Code: "bad_request", Message: err.Error(),
			}})
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			if errors.Is(err, domain.ErrUnauthenticated) {
				writeJSON(w, http.StatusUnauthorized, gen.ErrorResponse{Error: gen.ErrorDetail{
					Code: "unauthorized", Message: "authentication required",
				}})
				return
			}
			logger.ErrorContext(r.Context(), "request failed",
				"method", r.Method, "path", r.URL.Path, "error", err)
			writeJSON(w, http.StatusInternalServerError, gen.ErrorResponse{Error: gen.ErrorDetail{
				Code: "internal_error", Message: "internal server error",
			}})
		},
	}
}

// ParamErrorHandler writes the JSON envelope for malformed path or query
// parameters. Pass it as gen.ChiServerOptions.ErrorHandlerFunc.
func ParamErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, gen.ErrorResponse{Error: gen.ErrorDetail{
		Code: "bad_request", Message: err.Error(),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
