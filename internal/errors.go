package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	ErrCodeInvalidCredentials  ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeInvalidRefreshToken ErrorCode = "INVALID_REFRESH_TOKEN"
	ErrCodeInvalidAccessToken  ErrorCode = "INVALID_ACCESS_TOKEN"
	ErrCodeDuplicateEmail      ErrorCode = "DUPLICATE_EMAIL"

	ErrCodeInvalidTagFormat ErrorCode = "INVALID_TAG_FORMAT"
	ErrCodeReservedTagName  ErrorCode = "RESERVED_TAG_NAME"

	ErrCodeSelfSupervision             ErrorCode = "SELF_SUPERVISION"
	ErrCodeCircularSupervision         ErrorCode = "CIRCULAR_SUPERVISION"
	ErrCodeCircularDepartmentReference ErrorCode = "CIRCULAR_DEPARTMENT_REFERENCE"
	ErrCodeCrossOrganizationReference  ErrorCode = "CROSS_ORGANIZATION_REFERENCE"

	ErrCodeRecordNotFound   ErrorCode = "RECORD_NOT_FOUND"
	ErrCodeDuplicateName    ErrorCode = "DUPLICATE_NAME"
	ErrCodeDependentRecords ErrorCode = "DEPENDENT_RECORDS"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause returns a copy carrying the underlying error, so the shared
// sentinel values are never mutated.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewDuplicateNameError reports a create or rename that collides with an
// existing record of the same entity kind.
func NewDuplicateNameError(entity, name string) *AppError {
	return NewConflictError(fmt.Sprintf("%s with name %q already exists", entity, name), ErrCodeDuplicateName)
}

// NewDependentRecordsError rejects a delete while dependent records still
// reference the target.
func NewDependentRecordsError(entity, dependents string) *AppError {
	return NewConflictError(fmt.Sprintf("cannot delete %s: %s still reference it", entity, dependents), ErrCodeDependentRecords)
}

func NewRecordNotFoundError(entity string) *AppError {
	return NewNotFoundError(fmt.Sprintf("%s not found", entity), ErrCodeRecordNotFound)
}

var (
	ErrInvalidCredentials  = NewUnauthorizedError("invalid email or password", ErrCodeInvalidCredentials)
	ErrInvalidRefreshToken = NewUnauthorizedError("invalid refresh token", ErrCodeInvalidRefreshToken)
	ErrInvalidAccessToken  = NewUnauthorizedError("invalid access token", ErrCodeInvalidAccessToken)
	ErrDuplicateEmail      = NewConflictError("email already registered", ErrCodeDuplicateEmail)

	ErrInvalidTagFormat = NewValidationError("tag may only contain letters, digits, underscore and dash", ErrCodeInvalidTagFormat)
	ErrReservedTagName  = NewValidationError("tag name is reserved for the identity store", ErrCodeReservedTagName)

	ErrSelfSupervision             = NewValidationError("staff member cannot supervise themselves", ErrCodeSelfSupervision)
	ErrCircularSupervision         = NewValidationError("supervisor assignment would create a circular supervision chain", ErrCodeCircularSupervision)
	ErrCircularDepartmentReference = NewValidationError("parent assignment would create a circular department reference", ErrCodeCircularDepartmentReference)
	ErrCrossOrganizationReference  = NewValidationError("parent department must belong to the same organization", ErrCodeCrossOrganizationReference)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

// MarshalJSON keeps Cause and StatusCode out of responses so internal
// details never reach a client.
func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
