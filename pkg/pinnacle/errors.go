package pinnacle

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// API errors, matched with errors.Is against the error returned by a service call.
var (
	// ErrBadRequest is returned when the API rejects the request payload.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized is returned when the API key or a webhook signing secret is missing or invalid.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPaymentRequired is returned when the account balance does not cover the request.
	ErrPaymentRequired = errors.New("payment required")
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInternalServer is returned when the API fails to process the request.
	ErrInternalServer = errors.New("internal server error")
	// ErrMissingAPIKey is returned by New when no API key is configured.
	ErrMissingAPIKey = errors.New("no API key configured: set Config.APIKey or PINNACLE_API_KEY")
)

// APIError is a non successful response of the API.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	// Body is the raw response body.
	Body []byte
}

// Error returns the status and the error message sent by the API, if any.
func (e *APIError) Error() string {
	msg := strings.TrimSpace(gjson.GetBytes(e.Body, "error").String())
	if msg == "" {
		msg = strings.TrimSpace(string(e.Body))
	}
	s := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if msg != "" {
		s += ": " + msg
	}
	return s
}

// Unwrap returns the sentinel error matching the status code, if any.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return ErrBadRequest
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusPaymentRequired:
		return ErrPaymentRequired
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode >= http.StatusInternalServerError:
		return ErrInternalServer
	}
	return nil
}
