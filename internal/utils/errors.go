package utils

import "fmt"

type AppError struct {
	Code    string
	Message string
	Origin  error // Original error that caused this error, if any
}

func (appErr *AppError) Error() string {
	if appErr.Origin != nil {
		return appErr.Message + ": " + appErr.Origin.Error()
	}
	return appErr.Message
}

func (appErr *AppError) Unwrap() error {
	return appErr.Origin
}

// Standard error codes for the client
const (
	// Request lifecycle errors
	ErrRequestFailed = "REQUEST_FAILED"
	ErrTimeout       = "TIMEOUT"
	ErrDecode        = "DECODE_ERROR"

	// Errors derived from the server's HTTP status
	ErrNotFound        = "NOT_FOUND"
	ErrInvalidInput    = "INVALID_INPUT"
	ErrUnauthorized    = "UNAUTHORIZED"
	ErrForbidden       = "FORBIDDEN"
	ErrConflict        = "CONFLICT"
	ErrTooManyRequests = "TOO_MANY_REQUESTS"
	ErrServer          = "SERVER_ERROR"
)

// Error creation helper functions
func NewAppError(code string, message string, originalErr error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Origin:  originalErr,
	}
}

func NewRequestFailedError(method string, url string, originalErr error) *AppError {
	return &AppError{
		Code:    ErrRequestFailed,
		Message: fmt.Sprintf("%s %s failed", method, url),
		Origin:  originalErr,
	}
}

func NewDecodeError(url string, originalErr error) *AppError {
	return &AppError{
		Code:    ErrDecode,
		Message: "Failed to decode response from " + url,
		Origin:  originalErr,
	}
}

// Helper method to check if an error is of a specific type
func IsErrorCode(err error, code string) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// HTTPStatusToErrorCode maps a non-2xx response status to a client error code.
func HTTPStatusToErrorCode(status int) string {
	switch status {
	case 400:
		return ErrInvalidInput
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 409:
		return ErrConflict
	case 429:
		return ErrTooManyRequests
	default:
		if status >= 500 {
			return ErrServer
		}
		return ErrRequestFailed
	}
}
