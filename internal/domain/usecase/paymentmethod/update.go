package paymentmethod

import (
	"context"

	"github.com/paymentshop/payments-service/internal/domain/entity"
)

// Update replaces an existing payment method's fields from the given body.
// The identifier and creation time are kept; everything else comes from the
// body, which is validated the same way as on create.
func (s *Service) Update(ctx context.Context, id uint64, data map[string]any) (*entity.PaymentMethod, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	method, err := entity.Deserialize(data, s.timeProvider)
	if err != nil {
		s.logger.Warn("Rejected payment method body", map[string]any{
			"payment_method_id": id,
			"error":             err.Error(),
		})
		return nil, err
	}

	method.ID = existing.ID
	method.CreatedAt = existing.CreatedAt
	method.UpdatedAt = s.timeProvider.Now()

	if err := s.repo.Update(ctx, method); err != nil {
		s.logger.Error("Failed to update payment method", map[string]any{
			"payment_method_id": id,
			"error":             err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Payment method updated", map[string]any{
		"payment_method_id": id,
		"user_id":           method.UserID,
	})
	return method, nil
}
