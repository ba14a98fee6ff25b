package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRefreshDenied is returned when the refresh endpoint rejects the
// long-lived credential or cannot be reached. It is terminal for the current
// session: the gateway wipes the Token Store and signals navigation to the
// unauthenticated entry point before propagating it.
var ErrRefreshDenied = errors.New("refresh denied")

// APIError is a response received with a non-success status. The gateway
// never interprets these beyond the 401 recovery protocol; they propagate to
// the caller for field-level handling (form validation, user messaging).
type APIError struct {
	StatusCode int
	Field      string // Offending field, when the server names one
	Message    string // Human-readable message from the server
	Body       []byte // Raw response body
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// IsAuthExpired reports whether err is a 401 response that survived the
// refresh-and-replay cycle.
func IsAuthExpired(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
