// Package status defines the canonical HTTP status-code table shared by
// the route map layer's handlers and error middleware.
package status

import (
	"errors"
	"net/http"

	"github.com/vyrodovalexey/avroutemap/internal/util"
)

// success maps HTTP methods to the status code returned on success.
var success = map[string]int{
	http.MethodGet:    http.StatusOK,
	http.MethodPut:    http.StatusOK,
	http.MethodPatch:  http.StatusOK,
	http.MethodPost:   http.StatusCreated,
	http.MethodDelete: http.StatusNoContent,
}

// Error classes and their status codes.
const (
	// ErrorUser is returned for malformed or invalid client input.
	ErrorUser = http.StatusBadRequest

	// ErrorAuthenticate is returned when the caller is not authenticated.
	ErrorAuthenticate = http.StatusUnauthorized

	// ErrorAuthorise is returned when the caller lacks permission.
	ErrorAuthorise = http.StatusForbidden

	// ErrorMissing is returned when the requested resource does not exist.
	ErrorMissing = http.StatusNotFound

	// ErrorDefault is returned for every unclassified failure.
	ErrorDefault = http.StatusInternalServerError
)

// Success returns the success status code for the given HTTP method.
// Methods outside the table default to 200.
func Success(method string) int {
	if code, ok := success[method]; ok {
		return code
	}
	return http.StatusOK
}

// ForError maps an error onto the status-code table using the
// sentinel taxonomy from the util package. Unrecognized errors,
// including tree-contract violations, fall through to ErrorDefault.
func ForError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, util.ErrInvalidInput):
		return ErrorUser
	case errors.Is(err, util.ErrUnauthenticated):
		return ErrorAuthenticate
	case errors.Is(err, util.ErrForbidden):
		return ErrorAuthorise
	case errors.Is(err, util.ErrNotFound):
		return ErrorMissing
	default:
		return ErrorDefault
	}
}
