package entity

import (
	"fmt"

	errs "github.com/paymentshop/payments-service/internal/domain/error"
)

// PaymentType discriminates which variant's fields apply to a payment method
type PaymentType int

const (
	// PaymentTypeUnknown is the uninitialized sentinel; it is never persisted
	PaymentTypeUnknown PaymentType = iota
	// PaymentTypeCreditCard marks a credit card payment method
	PaymentTypeCreditCard
	// PaymentTypePayPal marks a PayPal payment method
	PaymentTypePayPal
)

// String returns the external string value of the payment type
func (t PaymentType) String() string {
	switch t {
	case PaymentTypeCreditCard:
		return "CREDIT_CARD"
	case PaymentTypePayPal:
		return "PAYPAL"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether the type is one of the persistable variants
func (t PaymentType) IsValid() bool {
	return t == PaymentTypeCreditCard || t == PaymentTypePayPal
}

// ParsePaymentType converts an external string value into a PaymentType.
// The UNKNOWN sentinel is not accepted as input.
func ParsePaymentType(s string) (PaymentType, error) {
	switch s {
	case "CREDIT_CARD":
		return PaymentTypeCreditCard, nil
	case "PAYPAL":
		return PaymentTypePayPal, nil
	default:
		return PaymentTypeUnknown, fmt.Errorf("%w: %q", errs.ErrInvalidPaymentType, s)
	}
}
