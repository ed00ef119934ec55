package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is the single error shape the client surfaces for any failed
// request. Message is always human-readable: the server-supplied detail
// when one could be parsed, the code's default message otherwise.
type APIError struct {
	Code       ErrorCode
	StatusCode int
	Message    string
	// cause is the underlying transport error, if any. A nil cause with a
	// non-zero StatusCode means an HTTP response was obtained.
	cause error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// Is reports code equality so callers can match with errors.Is against
// the exported sentinel values below.
func (e *APIError) Is(target error) bool {
	var apiErr *APIError
	if errors.As(target, &apiErr) {
		return e.Code == apiErr.Code
	}
	return false
}

// Sentinels for errors.Is matching. Compared by Code only.
var (
	ErrSessionExpired = &APIError{Code: AuthSessionExpired, Message: GetErrorMessage(AuthSessionExpired)}
	ErrRefreshFailed  = &APIError{Code: AuthRefreshFailed, Message: GetErrorMessage(AuthRefreshFailed)}
	ErrCircuitOpen    = &APIError{Code: TransportCircuitOpen, Message: GetErrorMessage(TransportCircuitOpen)}
)

// errorBody covers the message field variants seen on the wire. The
// PlutusGrip API reports failures as {"detail": "..."}; message and
// error.message are accepted for compatibility with proxies.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

// FromResponse builds an APIError from a non-2xx HTTP response. The body
// is parsed best-effort; an unparseable body falls back to a generic
// status-based message.
func FromResponse(statusCode int, status string, body []byte) *APIError {
	code := codeForStatus(statusCode)

	message := ""
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Detail != "":
			message = parsed.Detail
		case parsed.Message != "":
			message = parsed.Message
		case parsed.Error.Message != "":
			message = parsed.Error.Message
		}
	}
	if message == "" {
		message = fmt.Sprintf("Error %d: %s", statusCode, statusText(statusCode, status))
	}

	return &APIError{
		Code:       code,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewSessionExpired returns the forced-logout error raised when a request
// is still unauthorized after the refresh-and-retry cycle.
func NewSessionExpired() *APIError {
	return &APIError{
		Code:       AuthSessionExpired,
		StatusCode: http.StatusUnauthorized,
		Message:    GetErrorMessage(AuthSessionExpired),
	}
}

// NewRefreshFailed wraps a failed token refresh.
func NewRefreshFailed(cause error) *APIError {
	return &APIError{
		Code:    AuthRefreshFailed,
		Message: GetErrorMessage(AuthRefreshFailed),
		cause:   cause,
	}
}

// NewTransportError wraps a fetch-level failure where no HTTP response
// was obtained.
func NewTransportError(cause error) *APIError {
	return &APIError{
		Code:    TransportFailure,
		Message: GetErrorMessage(TransportFailure),
		cause:   cause,
	}
}

// NewCircuitOpen reports a request short-circuited before dispatch.
func NewCircuitOpen() *APIError {
	return &APIError{
		Code:    TransportCircuitOpen,
		Message: GetErrorMessage(TransportCircuitOpen),
	}
}

// NewValidationError reports a request body rejected before dispatch.
func NewValidationError(message string) *APIError {
	return &APIError{
		Code:    ValidationRequestBody,
		Message: message,
	}
}

func codeForStatus(statusCode int) ErrorCode {
	switch {
	case statusCode == http.StatusUnauthorized:
		return AuthInvalidCredentials
	case statusCode == http.StatusForbidden:
		return AuthForbidden
	case statusCode == http.StatusNotFound:
		return ResourceNotFound
	case statusCode == http.StatusConflict:
		return ResourceConflict
	case statusCode == http.StatusTooManyRequests:
		return ServerRateLimited
	case statusCode == http.StatusServiceUnavailable:
		return ServerUnavailable
	case statusCode >= 500:
		return ServerError
	case statusCode >= 400:
		return ValidationServerReject
	default:
		return ServerError
	}
}

// statusText falls back to the standard reason phrase when the response
// status line carried none.
func statusText(statusCode int, status string) string {
	if status != "" {
		return status
	}
	return http.StatusText(statusCode)
}

// IsSessionExpired reports whether err is the forced-logout error.
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}

// IsAuthError reports whether err is any authentication failure.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case AuthInvalidCredentials, AuthSessionExpired, AuthRefreshFailed, AuthForbidden:
		return true
	}
	return false
}

// IsTransportError reports whether err is a failure where no HTTP
// response was obtained.
func IsTransportError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == TransportFailure
}
