// Package shared centralizes domain error translation and JSON writing so
// every handler produces the same envelopes.
package shared

import (
	"encoding/json"
	"net/http"

	dErrors "stakepool/pkg/domain-errors"
)

// errorResponse is the JSON envelope for failed requests.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a coded domain error to an HTTP status and writes the
// error envelope. Uncoded errors become 500s.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	WriteJSON(w, statusOf(code), errorResponse{
		Error:   string(code),
		Message: dErrors.MessageOf(err),
	})
}

func statusOf(code dErrors.Code) int {
	switch code {
	case dErrors.CodeUnauthorized:
		return http.StatusForbidden
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeValidation,
		dErrors.CodeInvalidAmount, dErrors.CodeInvalidPeriod:
		return http.StatusBadRequest
	case dErrors.CodePaused, dErrors.CodeNotMatured,
		dErrors.CodeCapacityExceeded, dErrors.CodeAlreadyExists,
		dErrors.CodeInsufficientReserve:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
