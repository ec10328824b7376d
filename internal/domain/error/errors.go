package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeFieldValidation       = 4001
	CodeDataValidation        = 4002
	CodeInvalidPaymentType    = 4003
	CodeInvalidUserID         = 4004
	CodeConstraintViolation   = 4005
	CodePaymentMethodNotFound = 4040
	CodeRecordLocked          = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrFieldValidation is returned when a single field value violates its format or range constraint
	ErrFieldValidation = errors.New("field validation failed")

	// ErrDataValidation is returned for malformed input or a write the store rejected
	ErrDataValidation = errors.New("data validation failed")

	// ErrInvalidPaymentType is returned when the payment type discriminator is missing or unrecognized
	ErrInvalidPaymentType = errors.New("invalid payment type")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrPaymentMethodNotFound is returned when the requested payment method doesn't exist
	ErrPaymentMethodNotFound = errors.New("payment method not found")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrRecordLocked is returned when a row is held by a concurrent transaction
	ErrRecordLocked = errors.New("record is locked by another operation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrFieldValidation):
		return CodeFieldValidation
	case errors.Is(err, ErrInvalidPaymentType):
		return CodeInvalidPaymentType
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrPaymentMethodNotFound):
		return CodePaymentMethodNotFound
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrRecordLocked):
		return CodeRecordLocked
	case errors.Is(err, ErrDataValidation):
		return CodeDataValidation
	default:
		return CodeInternalServer
	}
}

// FieldValidationError reports a single field whose value violates its constraint.
// It is raised before any persistence attempt.
type FieldValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface for FieldValidationError
func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrFieldValidation
func (e *FieldValidationError) Is(target error) bool {
	return target == ErrFieldValidation
}

// LogFields returns a map of fields for structured logging
func (e *FieldValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "field_validation",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeFieldValidation,
	}
}

// NewFieldValidationError creates a new field validation error
func NewFieldValidationError(field, reason string) error {
	return &FieldValidationError{Field: field, Reason: reason}
}

// DataValidationError covers malformed deserialization input, updates without an
// identifier, and failures surfaced by the storage layer during a write.
type DataValidationError struct {
	Entity string
	Reason string
	Err    error
}

// Error implements the error interface for DataValidationError
func (e *DataValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %s: %v", e.Entity, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, e.Reason)
}

// Unwrap returns the underlying error
func (e *DataValidationError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrDataValidation
func (e *DataValidationError) Is(target error) bool {
	return target == ErrDataValidation
}

// LogFields returns a map of fields for structured logging
func (e *DataValidationError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "data_validation",
		"entity":     e.Entity,
		"reason":     e.Reason,
		"error_code": ErrorCode(e),
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewDataValidationError creates a new data validation error
func NewDataValidationError(entity, reason string, err error) error {
	return &DataValidationError{Entity: entity, Reason: reason, Err: err}
}

// IsFieldValidationError checks if the error is a field validation error
func IsFieldValidationError(err error) bool {
	return errors.Is(err, ErrFieldValidation)
}

// IsDataValidationError checks if the error is any validation error
func IsDataValidationError(err error) bool {
	return errors.Is(err, ErrDataValidation) ||
		errors.Is(err, ErrFieldValidation) ||
		errors.Is(err, ErrInvalidPaymentType)
}

// IsNotFoundError checks if the error is a "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrPaymentMethodNotFound)
}

// IsRecordLockedError checks if the error is related to a locked row
func IsRecordLockedError(err error) bool {
	return errors.Is(err, ErrRecordLocked)
}
