package cda

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidURL signals that a resource fragment and parameters could not
// form a valid request URL. It deliberately carries no further context; it
// is surfaced before any network call.
var ErrInvalidURL = errors.New("invalid URL")

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrSpaceIDRequired     = errors.New("space identifier is required")
	ErrAccessTokenRequired = errors.New("access token is required")
)

// APIError represents a non-2xx response from the delivery API.
type APIError struct {
	StatusCode int    `json:"-"         yaml:"-"`
	ID         string `json:"-"         yaml:"-"`
	Message    string `json:"message"   yaml:"message"`
	RequestID  string `json:"requestId" yaml:"requestId"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	id := e.ID
	if id == "" {
		id = http.StatusText(e.StatusCode)
	}

	return fmt.Sprintf("%s: %s (status: %d)", id, e.Message, e.StatusCode)
}

// UnparseableJSONError reports response bytes that are not valid JSON, or
// valid JSON that the resource decoder rejected. Data holds the original
// bytes; Message is the diagnostic (possibly empty when the decoder
// provides none).
type UnparseableJSONError struct {
	Data    []byte
	Message string
}

// Error implements the error interface.
func (e *UnparseableJSONError) Error() string {
	if e.Message == "" {
		return "unparseable JSON response"
	}

	return "unparseable JSON response: " + e.Message
}

// Well-known API error identifiers.
const (
	ErrorIDNotFound     = "NotFound"
	ErrorIDAccessDenied = "AccessTokenInvalid"
	ErrorIDRateLimit    = "RateLimitExceeded"
)

// ParseAPIError decodes an API error body. It returns nil when the body is
// not a recognizable error document; callers fall back to the HTTP status.
func ParseAPIError(data []byte) *APIError {
	var payload struct {
		Sys struct {
			Type string `json:"type"`
			ID   string `json:"id"`
		} `json:"sys"`
		Message   string `json:"message"`
		RequestID string `json:"requestId"`
	}

	err := json.Unmarshal(data, &payload)
	if err != nil {
		return nil
	}

	if payload.Sys.ID == "" && payload.Message == "" {
		return nil
	}

	return &APIError{
		ID:        payload.Sys.ID,
		Message:   payload.Message,
		RequestID: payload.RequestID,
	}
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound || apiErr.ID == ErrorIDNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authorization failure.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized ||
			apiErr.StatusCode == http.StatusForbidden ||
			apiErr.ID == ErrorIDAccessDenied
	}

	return false
}

// IsRateLimited checks if the error is a rate limit rejection.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.ID == ErrorIDRateLimit
	}

	return false
}

// IsUnparseableJSON checks if the error came from the decode pipeline.
func IsUnparseableJSON(err error) bool {
	jsonErr := &UnparseableJSONError{}

	return errors.As(err, &jsonErr)
}

// IsInvalidURL checks if the error is the invalid URL condition.
func IsInvalidURL(err error) bool {
	return errors.Is(err, ErrInvalidURL)
}
