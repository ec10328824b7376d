package paymentmethod

import (
	"context"

	"github.com/paymentshop/payments-service/internal/domain/entity"
)

// Create builds a payment method from a type-discriminated body and persists
// it. Validation fires before any persistence attempt; a body that fails
// deserialization or field validation never reaches the store.
func (s *Service) Create(ctx context.Context, data map[string]any) (*entity.PaymentMethod, error) {
	method, err := entity.Deserialize(data, s.timeProvider)
	if err != nil {
		s.logger.Warn("Rejected payment method body", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	// Create always inserts; a stale identifier in the body must not turn
	// this into an upsert
	method.ID = 0

	if err := s.repo.Create(ctx, method); err != nil {
		s.logger.Error("Failed to create payment method", map[string]any{
			"user_id": method.UserID,
			"type":    method.Type.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Payment method created", map[string]any{
		"payment_method_id": method.ID,
		"user_id":           method.UserID,
		"type":              method.Type.String(),
	})
	return method, nil
}
