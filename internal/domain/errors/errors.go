package errors

import (
	"fmt"
	"net/http"

	"schoolnote/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code used by the companion API
	ErrorCode() string // Business error code, also the catalog key suffix
	Message() string   // User-friendly error message (English fallback)
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches base errors by error code so that WithDetails copies still
// compare equal to the predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session errors
	ErrNoAccessToken = NewBaseError(
		http.StatusUnauthorized,
		"NO_ACCESS_TOKEN",
		"No access token",
		"",
	)

	ErrGuestTokenFailed = NewBaseError(
		http.StatusBadGateway,
		"GUEST_TOKEN_FAILED",
		"Could not start a guest session",
		"",
	)

	ErrLoginFailed = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_FAILED",
		"Login failed",
		"",
	)

	ErrRefreshTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_MISSING",
		"No refresh token is held, please sign in again",
		"",
	)

	ErrRefreshFailed = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_FAILED",
		"Session expired, please sign in again",
		"",
	)

	ErrUnsupportedProvider = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PROVIDER",
		"Unsupported login provider",
		"",
	)

	ErrSessionChanged = NewBaseError(
		http.StatusConflict,
		"SESSION_CHANGED",
		"The session changed before the request finished",
		"",
	)

	// Translation errors
	ErrTranslationFailed = NewBaseError(
		http.StatusBadGateway,
		"TRANSLATION_FAILED",
		"Translation failed",
		"",
	)

	ErrNoCurrentRequest = NewBaseError(
		http.StatusConflict,
		"NO_CURRENT_REQUEST",
		"There is nothing to translate again",
		"",
	)

	ErrUnsupportedFileType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_FILE_TYPE",
		"This file type is not supported",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"FILE_TOO_LARGE",
		"The file is too large",
		"",
	)

	// Message errors
	ErrComposeFailed = NewBaseError(
		http.StatusBadGateway,
		"COMPOSE_FAILED",
		"Message translation failed",
		"",
	)

	// Profile errors
	ErrProfileFailed = NewBaseError(
		http.StatusBadGateway,
		"PROFILE_FAILED",
		"Could not update the profile",
		"",
	)

	ErrHistoryFailed = NewBaseError(
		http.StatusBadGateway,
		"HISTORY_FAILED",
		"Could not load translation history",
		"",
	)

	// Locale errors
	ErrUnsupportedLanguage = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_LANGUAGE",
		"Unsupported language",
		"",
	)

	ErrPreferenceFailed = NewBaseError(
		http.StatusInternalServerError,
		"PREFERENCE_FAILED",
		"Could not save the setting",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please check the entered information",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found",
		"",
	)
)

// BackendError represents a non-2xx response or an `isSuccess: false`
// envelope returned by the backend API.
type BackendError struct {
	Endpoint   string
	StatusCode int
	Code       string
	Reason     string
}

// NewBackendError creates a backend error, implementing the AppError interface
func NewBackendError(endpoint string, statusCode int, code, reason string) *BackendError {
	return &BackendError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Code:       code,
		Reason:     reason,
	}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("backend %s returned %d: %s", e.Endpoint, e.StatusCode, e.Reason)
	}

	return fmt.Sprintf("backend %s returned %d", e.Endpoint, e.StatusCode)
}

// HTTPCode returns the HTTP status code
func (e *BackendError) HTTPCode() int {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return e.StatusCode
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	if e.StatusCode == http.StatusUnauthorized {
		return "BACKEND_UNAUTHORIZED"
	}

	return "BACKEND_ERROR"
}

// Message returns the user-friendly error message
func (e *BackendError) Message() string {
	if e.StatusCode == http.StatusUnauthorized {
		return "Your session is no longer valid"
	}

	return "The server could not handle the request"
}

// Details returns detailed error information
func (e *BackendError) Details() string {
	return e.Reason
}

// NetworkError represents a transport failure (DNS, connection reset, timeout)
// before any backend response was read.
type NetworkError struct {
	Endpoint string
	err      error
}

// NewNetworkError creates a network error, implementing the AppError interface
func NewNetworkError(endpoint string, err error) *NetworkError {
	return &NetworkError{Endpoint: endpoint, err: err}
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return errors.Wrapf(e.err, "request to %s failed", e.Endpoint).Error()
}

// Unwrap returns the transport error
func (e *NetworkError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *NetworkError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *NetworkError) ErrorCode() string {
	return "NETWORK_ERROR"
}

// Message returns the user-friendly error message
func (e *NetworkError) Message() string {
	return "Network error, please check your connection"
}

// Details returns detailed error information
func (e *NetworkError) Details() string {
	return ""
}
