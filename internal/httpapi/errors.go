package httpapi

import (
	"encoding/json"
	"net/http"

	"observe/internal/observable"
	"observe/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusFor maps entity errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case observable.IsLockPoisoned(err):
		return http.StatusServiceUnavailable
	case observable.IsHandleReleased(err):
		return http.StatusGone
	}
	if he, ok := err.(HTTPError); ok {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}
