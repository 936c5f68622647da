package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canchaleconte/cancha-api/internal/logger"
	"github.com/canchaleconte/cancha-api/internal/services"
)

// SuccessResponse is the uniform success envelope.
// swagger:model SuccessResponse
type SuccessResponse struct {
	// Always true on success
	Success bool `json:"success"`

	// Payload
	Data interface{} `json:"data,omitempty"`

	// Optional human-readable message
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the uniform error envelope.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false on errors
	Success bool `json:"success"`

	// Human-readable message in Spanish
	Error string `json:"error"`

	// Stable machine-readable code
	Code string `json:"code"`
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(SuccessResponse{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, status int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(SuccessResponse{Success: true, Data: data, Message: message})
}

func writeErrorCode(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Success: false, Error: message, Code: code})
}

// statusForCode maps business error codes to HTTP statuses. Unknown tokens
// map to 404 so probing a token space is indistinguishable from a miss.
func statusForCode(code string) int {
	switch code {
	case services.CodeValidation:
		return http.StatusBadRequest
	case services.CodeInvalidCredentials, services.CodeUnauthorized:
		return http.StatusUnauthorized
	case services.CodeForbidden, services.CodeCancellationNotAllowed:
		return http.StatusForbidden
	case services.CodeInvalidToken:
		return http.StatusNotFound
	case services.CodeGameFull, services.CodeDuplicateRegistration:
		return http.StatusConflict
	case services.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError renders a business error with its mapped status, and any
// other error as an opaque 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		writeErrorCode(w, statusForCode(svcErr.Code), svcErr.Code, svcErr.Message)
		return
	}
	logger.Log.Errorw("internal server error", "err", err)
	writeErrorCode(w, http.StatusInternalServerError, services.CodeInternal, "Error interno del servidor")
}
