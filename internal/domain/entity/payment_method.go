package entity

import (
	"time"

	errs "github.com/paymentshop/payments-service/internal/domain/error"
	coreport "github.com/paymentshop/payments-service/internal/domain/port/core"
)

// CreditCardDetails holds the fields specific to a credit card
type CreditCardDetails struct {
	FirstName      string
	LastName       string
	CardNumber     string
	ExpiryMonth    int
	ExpiryYear     int
	SecurityCode   string
	BillingAddress string
	ZipCode        string
}

// PayPalDetails holds the fields specific to a PayPal account
type PayPalDetails struct {
	Email string
}

// PaymentMethod represents one stored means of payment for a user.
// Exactly one of CreditCard or PayPal is set, selected by Type.
type PaymentMethod struct {
	ID        uint64
	Name      string
	UserID    uint64
	Type      PaymentType
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time

	CreditCard *CreditCardDetails
	PayPal     *PayPalDetails
}

// Validate re-checks every field of the payment method, including the
// variant fields. A value built through the constructors always passes.
func (m *PaymentMethod) Validate() error {
	if err := ValidateName(m.Name); err != nil {
		return err
	}
	if m.UserID == 0 {
		return errs.ErrInvalidUserID
	}
	switch m.Type {
	case PaymentTypeCreditCard:
		if m.CreditCard == nil {
			return errs.NewDataValidationError("payment_method", "missing credit card details", nil)
		}
		return m.CreditCard.validate()
	case PaymentTypePayPal:
		if m.PayPal == nil {
			return errs.NewDataValidationError("payment_method", "missing paypal details", nil)
		}
		return ValidateEmail(m.PayPal.Email)
	default:
		return errs.ErrInvalidPaymentType
	}
}

func (d *CreditCardDetails) validate() error {
	if err := ValidateHolderName("first_name", d.FirstName); err != nil {
		return err
	}
	if err := ValidateHolderName("last_name", d.LastName); err != nil {
		return err
	}
	if err := ValidateCardNumber(d.CardNumber); err != nil {
		return err
	}
	if err := ValidateExpiryMonth(d.ExpiryMonth); err != nil {
		return err
	}
	if err := ValidateExpiryYear(d.ExpiryYear); err != nil {
		return err
	}
	if err := ValidateSecurityCode(d.SecurityCode); err != nil {
		return err
	}
	if err := ValidateBillingAddress(d.BillingAddress); err != nil {
		return err
	}
	return ValidateZipCode(d.ZipCode)
}

// NewCreditCard builds a credit card payment method, validating every field.
// No value with an invalid field is ever returned.
func NewCreditCard(name string, userID uint64, details CreditCardDetails, timeProvider coreport.TimeProvider) (*PaymentMethod, error) {
	now := timeProvider.Now()
	m := &PaymentMethod{
		Name:       name,
		UserID:     userID,
		Type:       PaymentTypeCreditCard,
		CreatedAt:  now,
		UpdatedAt:  now,
		CreditCard: &details,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewPayPal builds a PayPal payment method, validating every field
func NewPayPal(name string, userID uint64, details PayPalDetails, timeProvider coreport.TimeProvider) (*PaymentMethod, error) {
	now := timeProvider.Now()
	m := &PaymentMethod{
		Name:      name,
		UserID:    userID,
		Type:      PaymentTypePayPal,
		CreatedAt: now,
		UpdatedAt: now,
		PayPal:    &details,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
