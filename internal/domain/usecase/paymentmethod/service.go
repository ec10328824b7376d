package paymentmethod

import (
	"context"

	"github.com/paymentshop/payments-service/internal/domain/entity"
	errs "github.com/paymentshop/payments-service/internal/domain/error"
	coreport "github.com/paymentshop/payments-service/internal/domain/port/core"
	"github.com/paymentshop/payments-service/internal/domain/port/persistence"
	"github.com/paymentshop/payments-service/internal/domain/port/usecase"
)

// Service implements the payment method business logic
type Service struct {
	repo         persistence.PaymentMethodRepository
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new payment method service instance
func NewService(
	repo persistence.PaymentMethodRepository,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.PaymentMethodUseCase {
	return &Service{
		repo:         repo,
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Get returns one payment method by identifier
func (s *Service) Get(ctx context.Context, id uint64) (*entity.PaymentMethod, error) {
	method, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errs.IsNotFoundError(err) {
			s.logger.Error("Failed to get payment method", map[string]any{
				"payment_method_id": id,
				"error":             err.Error(),
			})
		}
		return nil, err
	}
	return method, nil
}

// List returns payment methods matching the filter
func (s *Service) List(ctx context.Context, filter persistence.Filter) ([]*entity.PaymentMethod, error) {
	methods, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list payment methods", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Debug("Payment methods listed", map[string]any{
		"count": len(methods),
	})
	return methods, nil
}
