package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes grouped by concern
const (
	// Authentication (report password)
	ErrInvalidPassword = "AUTH_001"

	// Request validation
	ErrInvalidRequest  = "VAL_001"
	ErrMissingAccount  = "VAL_002"
	ErrAccountNotFound = "VAL_003"

	// Server / upstream
	ErrInternalServer  = "SRV_001"
	ErrExternalService = "SRV_002"
	ErrNotConfigured   = "SRV_003"
)

var httpStatusMap = map[string]int{
	ErrInvalidPassword: http.StatusForbidden,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrMissingAccount:  http.StatusBadRequest,
	ErrAccountNotFound: http.StatusNotFound,
	ErrInternalServer:  http.StatusInternalServerError,
	ErrExternalService: http.StatusInternalServerError,
	ErrNotConfigured:   http.StatusInternalServerError,
}

// APIError is the error payload returned to the client. Internal details
// never travel in it; the message is what the caller is allowed to see.
type APIError struct {
	Error string `json:"error"`
}

// WriteError resolves the status for code and writes the error payload
func WriteError(w http.ResponseWriter, code string, message string) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIError{Error: message})
}
