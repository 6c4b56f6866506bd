package cms

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common API failures. *APIError matches them via
// errors.Is.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the access token is missing or invalid.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the API is rate limiting requests.
	ErrRateLimited = errors.New("rate limited")

	// ErrVersionMismatch indicates an update was sent with a stale version.
	ErrVersionMismatch = errors.New("version mismatch")

	// ErrNotConfigured is returned by a client that was built without
	// credentials.
	ErrNotConfigured = errors.New("Contentful client not available")
)

// APIError is the error body returned by the CMS.
type APIError struct {
	Status    int    `json:"-"`
	ID        string `json:"-"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.ID != "" {
		return fmt.Sprintf("%s (%d %s)", msg, e.Status, e.ID)
	}
	return fmt.Sprintf("%s (%d)", msg, e.Status)
}

// Is maps the HTTP status onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrRateLimited:
		return e.Status == http.StatusTooManyRequests
	case ErrVersionMismatch:
		return e.Status == http.StatusConflict
	}
	return false
}

func notFound(kind, id string) *APIError {
	return &APIError{Status: http.StatusNotFound, ID: "NotFound", Message: fmt.Sprintf("%s %q could not be found", kind, id)}
}
