package errors

import (
	"strings"

	"schoolnote/internal/errors"
)

// Localizer resolves a catalog key, returning fallback when the key is unknown.
type Localizer interface {
	Localize(key, fallback string) string
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "NO_ACCESS_TOKEN"
	Message string `json:"message"`           // User-friendly error message
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// InfoOf extracts the first AppError in err's chain. Errors outside the
// taxonomy are reported as INTERNAL_ERROR with their text as details.
func InfoOf(err error) ErrorInfo {
	var appErr AppError
	if errors.As(err, &appErr) {
		return ErrorInfo{
			Code:    appErr.ErrorCode(),
			Message: appErr.Message(),
			Details: appErr.Details(),
		}
	}

	return ErrorInfo{
		Code:    ErrInternalError.ErrorCode(),
		Message: ErrInternalError.Message(),
		Details: err.Error(),
	}
}

// Describe renders err as the human-readable string stored in state error
// fields. The message is looked up as "errors.<CODE>" when a localizer is given.
func Describe(err error, localizer Localizer) string {
	if err == nil {
		return ""
	}

	info := InfoOf(err)
	message := info.Message
	if localizer != nil {
		message = localizer.Localize("errors."+info.Code, info.Message)
	}

	if details := strings.TrimSpace(info.Details); details != "" && info.Code != ErrInternalError.ErrorCode() {
		return message + " (" + details + ")"
	}

	return message
}
