package repository

import (
	"context"
	"errors"

	"github.com/paymentshop/payments-service/internal/domain/entity"
	errs "github.com/paymentshop/payments-service/internal/domain/error"
	coreport "github.com/paymentshop/payments-service/internal/domain/port/core"
	"github.com/paymentshop/payments-service/internal/domain/port/persistence"
	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentMethodRepository implements the PaymentMethodRepository port using GORM
type PaymentMethodRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewPaymentMethodRepository creates a new PaymentMethodRepository instance
func NewPaymentMethodRepository(db *gorm.DB, logger coreport.Logger) *PaymentMethodRepository {
	return &PaymentMethodRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

// entityToModel flattens the tagged union into the single-table row layout
func entityToModel(method *entity.PaymentMethod) *model.PaymentMethod {
	row := &model.PaymentMethod{
		ID:        method.ID,
		Name:      method.Name,
		Type:      method.Type.String(),
		UserID:    method.UserID,
		IsDefault: method.IsDefault,
		CreatedAt: method.CreatedAt,
		UpdatedAt: method.UpdatedAt,
	}
	switch method.Type {
	case entity.PaymentTypeCreditCard:
		cc := method.CreditCard
		row.FirstName = &cc.FirstName
		row.LastName = &cc.LastName
		row.CardNumber = &cc.CardNumber
		row.ExpiryMonth = &cc.ExpiryMonth
		row.ExpiryYear = &cc.ExpiryYear
		row.SecurityCode = &cc.SecurityCode
		row.BillingAddress = &cc.BillingAddress
		row.ZipCode = &cc.ZipCode
	case entity.PaymentTypePayPal:
		row.Email = &method.PayPal.Email
	}
	return row
}

// modelToEntity rebuilds the tagged union from a row
func (r *PaymentMethodRepository) modelToEntity(row *model.PaymentMethod) (*entity.PaymentMethod, error) {
	paymentType, err := entity.ParsePaymentType(row.Type)
	if err != nil {
		r.logger.Error("Row with unrecognized payment type", map[string]any{
			"payment_method_id": row.ID,
			"type":              row.Type,
		})
		return nil, errs.NewDataValidationError("payment_method", "stored type is unrecognized", err)
	}

	method := &entity.PaymentMethod{
		ID:        row.ID,
		Name:      row.Name,
		UserID:    row.UserID,
		Type:      paymentType,
		IsDefault: row.IsDefault,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	switch paymentType {
	case entity.PaymentTypeCreditCard:
		method.CreditCard = &entity.CreditCardDetails{
			FirstName:      deref(row.FirstName),
			LastName:       deref(row.LastName),
			CardNumber:     deref(row.CardNumber),
			ExpiryMonth:    derefInt(row.ExpiryMonth),
			ExpiryYear:     derefInt(row.ExpiryYear),
			SecurityCode:   deref(row.SecurityCode),
			BillingAddress: deref(row.BillingAddress),
			ZipCode:        deref(row.ZipCode),
		}
	case entity.PaymentTypePayPal:
		method.PayPal = &entity.PayPalDetails{Email: deref(row.Email)}
	}

	return method, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

// GetByID retrieves a payment method by its identifier
func (r *PaymentMethodRepository) GetByID(ctx context.Context, id uint64) (*entity.PaymentMethod, error) {
	var row model.PaymentMethod
	result := r.db.WithContext(ctx).First(&row, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPaymentMethodNotFound
		}
		r.logger.Error("Database error when getting payment method", map[string]any{
			"payment_method_id": id,
			"error":             result.Error.Error(),
		})
		return nil, r.errorMapper.Map(result.Error)
	}
	return r.modelToEntity(&row)
}

// GetByIDForUpdate retrieves a payment method and takes a row lock on it.
// Only meaningful inside a transaction.
func (r *PaymentMethodRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.PaymentMethod, error) {
	var row model.PaymentMethod
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPaymentMethodNotFound
		}
		r.logger.Error("Database error when locking payment method", map[string]any{
			"payment_method_id": id,
			"error":             result.Error.Error(),
		})
		return nil, r.errorMapper.Map(result.Error)
	}
	return r.modelToEntity(&row)
}

// List returns every payment method matching the filter. All present
// predicates compose into one WHERE clause.
func (r *PaymentMethodRepository) List(ctx context.Context, filter persistence.Filter) ([]*entity.PaymentMethod, error) {
	query := r.db.WithContext(ctx).Model(&model.PaymentMethod{})
	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var rows []model.PaymentMethod
	if err := query.Find(&rows).Error; err != nil {
		r.logger.Error("Database error when listing payment methods", map[string]any{
			"error": err.Error(),
		})
		return nil, r.errorMapper.Map(err)
	}

	methods := make([]*entity.PaymentMethod, 0, len(rows))
	for i := range rows {
		method, err := r.modelToEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	return methods, nil
}

// Create inserts the payment method as a new row and writes the assigned
// identifier back into the entity. A failed insert leaves no partial state.
func (r *PaymentMethodRepository) Create(ctx context.Context, method *entity.PaymentMethod) error {
	row := entityToModel(method)
	row.ID = 0

	result := r.db.WithContext(ctx).Create(row)
	if result.Error != nil {
		r.logger.Error("Database error when creating payment method", map[string]any{
			"user_id": method.UserID,
			"type":    method.Type.String(),
			"error":   result.Error.Error(),
		})
		return errs.NewDataValidationError("payment_method", "create rejected by store", r.errorMapper.Map(result.Error))
	}

	method.ID = row.ID
	return nil
}

// Update persists mutations to an already created payment method
func (r *PaymentMethodRepository) Update(ctx context.Context, method *entity.PaymentMethod) error {
	if method.ID == 0 {
		return errs.NewDataValidationError("payment_method", "update called with empty ID field", nil)
	}

	row := entityToModel(method)
	result := r.db.WithContext(ctx).Model(&model.PaymentMethod{}).
		Where("id = ?", method.ID).
		Updates(map[string]any{
			"name":            row.Name,
			"type":            row.Type,
			"user_id":         row.UserID,
			"is_default":      row.IsDefault,
			"updated_at":      row.UpdatedAt,
			"first_name":      row.FirstName,
			"last_name":       row.LastName,
			"card_number":     row.CardNumber,
			"expiry_month":    row.ExpiryMonth,
			"expiry_year":     row.ExpiryYear,
			"security_code":   row.SecurityCode,
			"billing_address": row.BillingAddress,
			"zip_code":        row.ZipCode,
			"email":           row.Email,
		})

	if result.Error != nil {
		r.logger.Error("Database error when updating payment method", map[string]any{
			"payment_method_id": method.ID,
			"error":             result.Error.Error(),
		})
		return errs.NewDataValidationError("payment_method", "update rejected by store", r.errorMapper.Map(result.Error))
	}

	if result.RowsAffected == 0 {
		return errs.ErrPaymentMethodNotFound
	}
	return nil
}

// Delete removes the payment method by identifier. Deleting a row that does
// not exist is an error here; the HTTP boundary downgrades it to a no-op.
func (r *PaymentMethodRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.PaymentMethod{}, id)
	if result.Error != nil {
		r.logger.Error("Database error when deleting payment method", map[string]any{
			"payment_method_id": id,
			"error":             result.Error.Error(),
		})
		return errs.NewDataValidationError("payment_method", "delete rejected by store", r.errorMapper.Map(result.Error))
	}

	if result.RowsAffected == 0 {
		return errs.NewDataValidationError("payment_method", "delete affected no rows", errs.ErrPaymentMethodNotFound)
	}
	return nil
}

// ClearDefault demotes every payment method of the user except the given one
func (r *PaymentMethodRepository) ClearDefault(ctx context.Context, userID, exceptID uint64) error {
	result := r.db.WithContext(ctx).Model(&model.PaymentMethod{}).
		Where("user_id = ? AND id <> ? AND is_default = ?", userID, exceptID, true).
		Update("is_default", false)

	if result.Error != nil {
		r.logger.Error("Database error when clearing default flags", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return r.errorMapper.Map(result.Error)
	}
	return nil
}
