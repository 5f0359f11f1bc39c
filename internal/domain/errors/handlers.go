package errors

import (
	"autoparts/internal/errors"
)

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Kind    Kind   `json:"kind"`              // Failure class
	Code    string `json:"code"`              // Business error code, e.g., "USER_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Inspect finds the first AppError in err's chain and describes it.
// Errors that carry no AppError are reported as internal.
func Inspect(err error) *ErrorInfo {
	if err == nil {
		return nil
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return &ErrorInfo{
			Kind:    appErr.Kind(),
			Code:    appErr.ErrorCode(),
			Message: appErr.Message(),
			Details: appErr.Details(),
		}
	}

	return &ErrorInfo{
		Kind:    KindInternal,
		Code:    ErrInternalError.ErrorCode(),
		Message: ErrInternalError.Message(),
		Details: err.Error(),
	}
}

// KindOf returns the failure class of err, or an empty Kind for nil.
func KindOf(err error) Kind {
	info := Inspect(err)
	if info == nil {
		return ""
	}

	return info.Kind
}
