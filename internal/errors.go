package internal

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeConstraint ErrorType = "CONSTRAINT_VIOLATION"
	ErrorTypeStorage    ErrorType = "STORAGE_UNAVAILABLE"
	ErrorTypeInternal   ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidAmount    ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidType      ErrorCode = "INVALID_TRANSACTION_TYPE"
	ErrCodeCategoryMismatch ErrorCode = "CATEGORY_TYPE_MISMATCH"

	ErrCodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	ErrCodeCategoryNotFound ErrorCode = "CATEGORY_NOT_FOUND"

	ErrCodeDuplicateKey        ErrorCode = "DUPLICATE_KEY"
	ErrCodeForeignKeyViolation ErrorCode = "FOREIGN_KEY_VIOLATION"
	ErrCodeStorageUnavailable  ErrorCode = "STORAGE_UNAVAILABLE"
)

type AppError struct {
	Type    ErrorType `json:"type"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
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

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// IsCorrectable reports whether the error should be shown to the user as an
// input problem they can fix, as opposed to an internal failure.
func (e *AppError) IsCorrectable() bool {
	return e.Type == ErrorTypeValidation || e.Type == ErrorTypeNotFound
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Code:    code,
		Message: message,
	}
}

func NewConstraintError(message string, code ErrorCode, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeConstraint,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewStorageError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Code:    ErrCodeStorageUnavailable,
		Message: message,
		Cause:   cause,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Code:    "INTERNAL_ERROR",
		Message: message,
		Cause:   cause,
	}
}

var (
	ErrInvalidAmount        = NewValidationError("amount must be greater than zero", ErrCodeInvalidAmount)
	ErrInvalidType          = NewValidationError("transaction type must be expense or income", ErrCodeInvalidType)
	ErrCategoryTypeMismatch = NewValidationError("category type does not match transaction type", ErrCodeCategoryMismatch)

	ErrUserNotFound     = NewNotFoundError("user not found", ErrCodeUserNotFound)
	ErrCategoryNotFound = NewNotFoundError("category not found", ErrCodeCategoryNotFound)
)

func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// TranslateDBError maps storage-layer errors onto the AppError taxonomy.
// Constraint violations keep their cause so repositories can distinguish a
// duplicate key from a broken reference; everything else is reported as the
// store being unavailable.
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := IsAppError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewNotFoundError("record not found", ErrCodeCategoryNotFound).WithCause(err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return NewConstraintError("duplicate key", ErrCodeDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return NewConstraintError("foreign key violation", ErrCodeForeignKeyViolation, err)
	default:
		return NewStorageError("storage operation failed", err)
	}
}
