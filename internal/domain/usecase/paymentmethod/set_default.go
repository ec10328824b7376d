package paymentmethod

import (
	"context"

	"github.com/paymentshop/payments-service/internal/domain/entity"
	errs "github.com/paymentshop/payments-service/internal/domain/error"
)

// SetDefault promotes one payment method to the user's default. Demoting the
// user's other methods and promoting the target happen inside a single
// transaction, so a reader never observes two defaults and concurrent calls
// for the same user are serialized by the store's row locks.
func (s *Service) SetDefault(ctx context.Context, id, userID uint64) (*entity.PaymentMethod, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	repo := s.uow.GetPaymentMethodRepository(txCtx)

	method, err := repo.GetByIDForUpdate(txCtx, id)
	if err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	if method.UserID != userID {
		s.rollback(txCtx)
		s.logger.Warn("Set-default for a method owned by another user", map[string]any{
			"payment_method_id": id,
			"owner_id":          method.UserID,
			"requested_user_id": userID,
		})
		return nil, errs.NewDataValidationError("payment_method", "method does not belong to user", nil)
	}

	if err := repo.ClearDefault(txCtx, userID, id); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	method.IsDefault = true
	method.UpdatedAt = s.timeProvider.Now()

	if err := repo.Update(txCtx, method); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	s.logger.Info("Default payment method set", map[string]any{
		"payment_method_id": id,
		"user_id":           userID,
	})
	return method, nil
}

func (s *Service) rollback(ctx context.Context) {
	if err := s.uow.Rollback(ctx); err != nil {
		s.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
	}
}
