package repository

import (
	"errors"
	"fmt"
	"strings"

	errs "github.com/paymentshop/payments-service/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper translates database errors into domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// Map converts a gorm/Postgres error into the matching domain error
func (m *ErrorMapper) Map(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrPaymentMethodNotFound
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "serialization") ||
		strings.Contains(msg, "lock timeout") ||
		strings.Contains(msg, "could not obtain lock"):
		return errs.ErrRecordLocked

	case strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "check constraint") ||
		strings.Contains(msg, "violates not-null"):
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())

	case strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe"):
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())

	default:
		return err
	}
}

// IsLockError reports whether the error indicates row lock contention
func (m *ErrorMapper) IsLockError(err error) bool {
	return errors.Is(m.Map(err), errs.ErrRecordLocked)
}
