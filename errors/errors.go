package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies application errors independent of the HTTP status.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeBadCredentials ErrorCode = "BAD_CREDENTIALS"
	ErrCodeEmailExists    ErrorCode = "EMAIL_EXISTS"

	// Entity errors
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrCodeInvalidStatus   ErrorCode = "INVALID_STATUS"
	ErrCodeActiveBookings  ErrorCode = "ACTIVE_BOOKINGS"
	ErrCodeMissingRelation ErrorCode = "MISSING_RELATION"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"
)

// AppError carries the HTTP status and the user-facing message through the
// service layer. Controllers translate it into the {"error": message} body.
type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(status int, code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBadRequest(code ErrorCode, message string) *AppError {
	return NewAppError(http.StatusBadRequest, code, message, nil)
}

func NewNotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, ErrCodeNotFound, message, nil)
}

func NewUnauthorized(code ErrorCode, message string) *AppError {
	return NewAppError(http.StatusUnauthorized, code, message, nil)
}

func NewConflict(code ErrorCode, message string) *AppError {
	return NewAppError(http.StatusConflict, code, message, nil)
}

func NewInternal(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, ErrCodeDBError, "Internal Server Error", err)
}

// GetAppError returns the AppError inside err, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
