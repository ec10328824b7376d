package persistence

import (
	"context"
)

// UnitOfWork defines an interface for running repository operations inside a
// single commit boundary
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetPaymentMethodRepository returns a repository bound to the current
	// transaction
	GetPaymentMethodRepository(ctx context.Context) PaymentMethodRepository
}
