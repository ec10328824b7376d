package paymentmethod

import (
	"context"

	errs "github.com/paymentshop/payments-service/internal/domain/error"
)

// Delete removes a payment method by identifier. Deleting an absent row
// surfaces as a not-found error here; the HTTP boundary treats that as a
// no-op.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errs.IsNotFoundError(err) {
			s.logger.Debug("Delete of absent payment method", map[string]any{
				"payment_method_id": id,
			})
		} else {
			s.logger.Error("Failed to delete payment method", map[string]any{
				"payment_method_id": id,
				"error":             err.Error(),
			})
		}
		return err
	}

	s.logger.Info("Payment method deleted", map[string]any{
		"payment_method_id": id,
	})
	return nil
}
