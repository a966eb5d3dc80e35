package comicvine

import (
	"errors"
	"fmt"
)

// Common errors returned by the Comic Vine client.
var (
	// ErrInvalidAPIKey indicates the API rejected the configured key.
	ErrInvalidAPIKey = errors.New("comicvine: invalid API key")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("comicvine: resource not found")

	// ErrRateLimited indicates the API reported the rate limit as exceeded.
	ErrRateLimited = errors.New("comicvine: rate limit exceeded")

	// ErrSchema indicates the response body did not match the expected schema.
	ErrSchema = errors.New("comicvine: unexpected response schema")

	// ErrCache indicates the response cache could not be read or written.
	ErrCache = errors.New("comicvine: cache failure")
)

// APIError represents an error reported by the Comic Vine API that does not
// map to one of the sentinel errors above.
type APIError struct {
	HTTPStatus int
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("comicvine: API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("comicvine: API error: status %d: %s", e.HTTPStatus, e.Message)
}

// IsServiceError reports whether the error came from a 5xx response.
func (e *APIError) IsServiceError() bool {
	return e.HTTPStatus >= 500
}
