package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed API call. The set is exhaustive; callers switch on
// it to decide user-visible handling.
type Kind string

const (
	KindInvalidURL         Kind = "invalid_url"
	KindNoAuthToken        Kind = "no_auth_token"
	KindNoRefreshToken     Kind = "no_refresh_token"
	KindUnauthorized       Kind = "unauthorized"
	KindForbidden          Kind = "forbidden"
	KindNotFound           Kind = "not_found"
	KindRateLimited        Kind = "rate_limited"
	KindValidation         Kind = "validation_error"
	KindAPI                Kind = "api_error"
	KindHTTP               Kind = "http_error"
	KindServer             Kind = "server_error"
	KindInvalidResponse    Kind = "invalid_response"
	KindDecoding           Kind = "decoding_error"
	KindTokenRefreshFailed Kind = "token_refresh_failed"
	KindNetworkUnavailable Kind = "network_unavailable"
)

// APIError is the error object carried inside a response envelope.
type APIError struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail is a field-level validation failure.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the typed failure surfaced by the client.
type Error struct {
	Kind   Kind
	Status int       // populated for http_error and server_error
	Detail *APIError // populated for api_error and validation_error
	Err    error
}

func (e *Error) Error() string {
	msg := e.Message()
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the human-readable description of the failure.
func (e *Error) Message() string {
	switch e.Kind {
	case KindInvalidURL:
		return "invalid URL"
	case KindNoAuthToken:
		return "no authentication token available"
	case KindNoRefreshToken:
		return "no refresh token available"
	case KindUnauthorized:
		return "unauthorized access"
	case KindForbidden:
		return "access forbidden"
	case KindNotFound:
		return "resource not found"
	case KindRateLimited:
		return "rate limit exceeded"
	case KindValidation:
		return "validation error: " + e.detailMessage()
	case KindAPI:
		return "api error: " + e.detailMessage()
	case KindHTTP:
		return fmt.Sprintf("http error: %d", e.Status)
	case KindServer:
		return fmt.Sprintf("server error: %d", e.Status)
	case KindInvalidResponse:
		return "invalid response format"
	case KindDecoding:
		return "failed to decode response"
	case KindTokenRefreshFailed:
		return "failed to refresh authentication token"
	case KindNetworkUnavailable:
		return "network unavailable"
	default:
		return string(e.Kind)
	}
}

// RecoverySuggestion returns a user-facing hint for the failure.
func (e *Error) RecoverySuggestion() string {
	switch e.Kind {
	case KindUnauthorized, KindTokenRefreshFailed, KindNoAuthToken, KindNoRefreshToken:
		return "Please log in again."
	case KindForbidden:
		return "You don't have permission to access this resource."
	case KindNotFound:
		return "The requested resource was not found."
	case KindRateLimited:
		return "Please wait before making more requests."
	case KindNetworkUnavailable:
		return "Please check your internet connection."
	case KindServer:
		return "Please try again later."
	default:
		return "Please try again."
	}
}

func (e *Error) detailMessage() string {
	if e.Detail == nil {
		return "unknown"
	}
	return e.Detail.Message
}

// IsKind reports whether err is an API error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// KindOf extracts the error kind, or the empty string for non-API errors.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}
