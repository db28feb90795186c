package clients

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Failure kinds surfaced by API clients. Callers branch with errors.Is.
var (
	ErrNetwork           = errors.New("request failed before a response arrived")
	ErrNotFound          = errors.New("referenced identity is unknown")
	ErrConflict          = errors.New("rejected by the service as already consumed")
	ErrUnauthorized      = errors.New("missing or invalid admin token")
	ErrMalformedResponse = errors.New("response body is not valid JSON")
)

// APIError is a non-2xx response from the draft data service.
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d on %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("HTTP %d on %s: %s", e.StatusCode, e.URL, e.Body)
}

// Is maps HTTP statuses onto the failure kinds. The service reports some
// domain failures as a 400 whose detail carries the reason: a consumed
// slot or player says "already" (ErrConflict), a reference to a player
// the service has never seen says "Unknown" (ErrNotFound).
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound ||
			(e.StatusCode == http.StatusBadRequest && strings.Contains(e.Body, "Unknown"))
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrConflict:
		return e.StatusCode == http.StatusConflict ||
			(e.StatusCode == http.StatusBadRequest && strings.Contains(e.Body, "already"))
	}
	return false
}
