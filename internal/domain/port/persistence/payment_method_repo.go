package persistence

import (
	"context"

	"github.com/paymentshop/payments-service/internal/domain/entity"
)

// Filter narrows a payment method listing. Predicates that are set compose
// with logical AND into a single query; nil predicates are ignored.
type Filter struct {
	Name   *string
	Type   *entity.PaymentType
	UserID *uint64
}

// PaymentMethodRepository defines persistence operations for payment methods
type PaymentMethodRepository interface {
	// GetByID returns the payment method with the given identifier, or
	// ErrPaymentMethodNotFound
	GetByID(ctx context.Context, id uint64) (*entity.PaymentMethod, error)

	// GetByIDForUpdate behaves like GetByID but takes a row lock, so it must
	// run inside a transaction
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.PaymentMethod, error)

	// List returns every payment method matching the filter
	List(ctx context.Context, filter Filter) ([]*entity.PaymentMethod, error)

	// Create inserts the payment method as a new row. Any identifier already
	// set on the entity is discarded; the assigned one is written back.
	Create(ctx context.Context, method *entity.PaymentMethod) error

	// Update persists mutations to an already created payment method
	Update(ctx context.Context, method *entity.PaymentMethod) error

	// Delete removes the payment method by identifier. Deleting an absent row
	// is an error; the boundary layer decides whether to surface it.
	Delete(ctx context.Context, id uint64) error

	// ClearDefault demotes every payment method of the user except the given
	// one
	ClearDefault(ctx context.Context, userID, exceptID uint64) error
}
