package swydo

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error answer from the Swydo API. Code carries the
// application-level error string from the response body when the body
// could be parsed; it is empty otherwise.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error"`
	Message    string `json:"message,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("swydo: HTTP %d", e.StatusCode)
	}

	if e.Message == "" {
		return fmt.Sprintf("swydo: %s (HTTP %d)", e.Code, e.StatusCode)
	}

	return fmt.Sprintf("swydo: %s: %s (HTTP %d)", e.Code, e.Message, e.StatusCode)
}

// ErrorCodeDataSourceNotFound is the sentinel code the service answers
// with when a client account has no data source configured. It is known to
// be shared by the Facebook Ads, Facebook Graph, Google Ads, and Google
// Analytics providers; do not assume future providers reuse it.
const ErrorCodeDataSourceNotFound = "DATASOURCE_NOT_FOUND"

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrAPIKeyRequired       = errors.New("API key is required")
	ErrUnknownOperation     = errors.New("unknown API operation")
	ErrMissingParameter     = errors.New("missing required parameter")
	ErrNoMoreItems          = errors.New("no more items")
	ErrInvalidBaseURL       = errors.New("invalid base URL")
	ErrRetryBudgetSpent     = errors.New("retry budget exhausted")
	ErrTeamIDRequired       = errors.New("team ID is required")
	ErrRequestRequired      = errors.New("request payload is required")
	ErrInvalidUserState     = errors.New("invalid user state")
	ErrInvalidComparePeriod = errors.New("invalid compare period")
)

// IsNotFound checks if the error is an HTTP 404 from the API.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsThrottled checks if the error is a throttling answer (HTTP 429).
func IsThrottled(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}

// IsDataSourceNotFound checks if the error is the specific absence answer
// remapped by the data sources client: a 404 whose body carries the
// DATASOURCE_NOT_FOUND code. A 404 with any other (or unparseable) body
// does not match.
func IsDataSourceNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound && apiErr.Code == ErrorCodeDataSourceNotFound
	}

	return false
}
