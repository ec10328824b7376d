package usecase

import (
	"context"

	"github.com/paymentshop/payments-service/internal/domain/entity"
	"github.com/paymentshop/payments-service/internal/domain/port/persistence"
)

// PaymentMethodUseCase defines the payment method operations exposed to the
// API layer
type PaymentMethodUseCase interface {
	// Create builds a payment method from a type-discriminated body and
	// persists it with a fresh identifier
	Create(ctx context.Context, data map[string]any) (*entity.PaymentMethod, error)

	// Get returns one payment method by identifier
	Get(ctx context.Context, id uint64) (*entity.PaymentMethod, error)

	// List returns payment methods matching the filter
	List(ctx context.Context, filter persistence.Filter) ([]*entity.PaymentMethod, error)

	// Update replaces the payment method's fields from the given body
	Update(ctx context.Context, id uint64, data map[string]any) (*entity.PaymentMethod, error)

	// Delete removes a payment method by identifier
	Delete(ctx context.Context, id uint64) error

	// SetDefault promotes the payment method to the user's default, demoting
	// all others owned by the same user in one transaction
	SetDefault(ctx context.Context, id, userID uint64) (*entity.PaymentMethod, error)
}
