package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/MarketBot_Go/internal/domain"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and user messages
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInvalidBounds):
		return http.StatusBadRequest, ErrMsgInvalidBoundsError
	case errors.Is(err, domain.ErrAlreadyRunning):
		return http.StatusConflict, ErrMsgAlreadyRunningError
	case errors.Is(err, domain.ErrNotRunning):
		return http.StatusConflict, ErrMsgNotRunningError
	case errors.Is(err, domain.ErrBoundsStore):
		return http.StatusServiceUnavailable, ErrMsgBoundsStoreError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

func respondServiceError(w http.ResponseWriter, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}
