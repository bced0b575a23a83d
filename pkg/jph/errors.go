package jph

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is returned for any non-2xx response from the API.
type HTTPError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Method     string `json:"method"      yaml:"method"`
	Path       string `json:"path"        yaml:"path"`
	Body       []byte `json:"-"           yaml:"-"`
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	text := http.StatusText(e.StatusCode)
	if text == "" {
		return fmt.Sprintf("http error: status %d", e.StatusCode)
	}

	return fmt.Sprintf("http error: status %d %s", e.StatusCode, text)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrNoHostInURL         = errors.New("no host specified in URL")
	ErrInvalidID           = errors.New("id must be a positive integer")
	ErrPostNotFound        = errors.New("post not found")
	ErrUserNotFound        = errors.New("user not found")
)

// StatusCode returns the HTTP status carried by err, or 0 when err did not
// come from an HTTP response.
func StatusCode(err error) int {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrPostNotFound) || errors.Is(err, ErrUserNotFound) {
		return true
	}

	return StatusCode(err) == http.StatusNotFound
}

// IsHTTPError checks if the error came from a non-2xx response.
func IsHTTPError(err error) bool {
	return StatusCode(err) != 0
}
