package errors

// ErrorCode classifies failures surfaced by the API client
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthSessionExpired     ErrorCode = "AUTH_002"
	AuthRefreshFailed      ErrorCode = "AUTH_003"
	AuthForbidden          ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral      ErrorCode = "VALIDATION_001"
	ValidationRequestBody  ErrorCode = "VALIDATION_002"
	ValidationServerReject ErrorCode = "VALIDATION_003"
)

// Resource error codes (RESOURCE_*)
const (
	ResourceNotFound ErrorCode = "RESOURCE_001"
	ResourceConflict ErrorCode = "RESOURCE_002"
)

// Transport and server error codes (TRANSPORT_*, SERVER_*)
const (
	TransportFailure     ErrorCode = "TRANSPORT_001"
	TransportCircuitOpen ErrorCode = "TRANSPORT_002"
	TransportThrottled   ErrorCode = "TRANSPORT_003"
	ServerError          ErrorCode = "SERVER_001"
	ServerUnavailable    ErrorCode = "SERVER_002"
	ServerRateLimited    ErrorCode = "SERVER_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid email or password",
	AuthSessionExpired:     "Session expired. Please log in again.",
	AuthRefreshFailed:      "Failed to refresh the access token",
	AuthForbidden:          "Insufficient permissions to access this resource",

	ValidationGeneral:      "Validation failed",
	ValidationRequestBody:  "Request body failed validation",
	ValidationServerReject: "The server rejected the request",

	ResourceNotFound: "Resource not found",
	ResourceConflict: "Resource state conflict",

	TransportFailure:     "Could not reach the PlutusGrip API",
	TransportCircuitOpen: "The PlutusGrip API is temporarily unreachable",
	TransportThrottled:   "Outbound request rate limit exceeded",
	ServerError:          "The PlutusGrip API returned an internal error",
	ServerUnavailable:    "The PlutusGrip API is temporarily unavailable",
	ServerRateLimited:    "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
