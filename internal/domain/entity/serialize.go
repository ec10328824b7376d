package entity

import (
	"encoding/json"
	"fmt"

	errs "github.com/paymentshop/payments-service/internal/domain/error"
	coreport "github.com/paymentshop/payments-service/internal/domain/port/core"
)

// Serialize produces the external key-value representation of the payment
// method. It is the exact inverse of Deserialize for every field except id,
// which is assigned by the store on create.
func (m *PaymentMethod) Serialize() map[string]any {
	data := map[string]any{
		"id":         m.ID,
		"name":       m.Name,
		"type":       m.Type.String(),
		"user_id":    m.UserID,
		"is_default": m.IsDefault,
	}
	switch m.Type {
	case PaymentTypeCreditCard:
		data["first_name"] = m.CreditCard.FirstName
		data["last_name"] = m.CreditCard.LastName
		data["card_number"] = m.CreditCard.CardNumber
		data["expiry_month"] = m.CreditCard.ExpiryMonth
		data["expiry_year"] = m.CreditCard.ExpiryYear
		data["security_code"] = m.CreditCard.SecurityCode
		data["billing_address"] = m.CreditCard.BillingAddress
		data["zip_code"] = m.CreditCard.ZipCode
	case PaymentTypePayPal:
		data["email"] = m.PayPal.Email
	}
	return data
}

// Deserialize builds a payment method from its external key-value
// representation, routing on the type discriminator. Missing keys and wrongly
// typed values fail with a data validation error; malformed field values fail
// with a field validation error. The id key is ignored.
func Deserialize(data map[string]any, timeProvider coreport.TimeProvider) (*PaymentMethod, error) {
	if data == nil {
		return nil, errs.NewDataValidationError("payment_method", "body contained bad or no data", nil)
	}

	typeValue, err := stringField(data, "type")
	if err != nil {
		return nil, err
	}
	paymentType, err := ParsePaymentType(typeValue)
	if err != nil {
		return nil, err
	}

	name, err := stringField(data, "name")
	if err != nil {
		return nil, err
	}
	userID, err := uintField(data, "user_id")
	if err != nil {
		return nil, err
	}

	var method *PaymentMethod
	switch paymentType {
	case PaymentTypeCreditCard:
		details, err := creditCardDetails(data)
		if err != nil {
			return nil, err
		}
		method, err = NewCreditCard(name, userID, *details, timeProvider)
		if err != nil {
			return nil, err
		}
	case PaymentTypePayPal:
		email, err := stringField(data, "email")
		if err != nil {
			return nil, err
		}
		method, err = NewPayPal(name, userID, PayPalDetails{Email: email}, timeProvider)
		if err != nil {
			return nil, err
		}
	}

	// is_default is optional on input and defaults to false
	if raw, ok := data["is_default"]; ok {
		flag, ok := raw.(bool)
		if !ok {
			return nil, errs.NewDataValidationError("payment_method", "is_default must be a boolean", nil)
		}
		method.IsDefault = flag
	}

	return method, nil
}

func creditCardDetails(data map[string]any) (*CreditCardDetails, error) {
	firstName, err := stringField(data, "first_name")
	if err != nil {
		return nil, err
	}
	lastName, err := stringField(data, "last_name")
	if err != nil {
		return nil, err
	}
	cardNumber, err := stringField(data, "card_number")
	if err != nil {
		return nil, err
	}
	expiryMonth, err := intField(data, "expiry_month")
	if err != nil {
		return nil, err
	}
	expiryYear, err := intField(data, "expiry_year")
	if err != nil {
		return nil, err
	}
	securityCode, err := stringField(data, "security_code")
	if err != nil {
		return nil, err
	}
	billingAddress, err := stringField(data, "billing_address")
	if err != nil {
		return nil, err
	}
	zipCode, err := stringField(data, "zip_code")
	if err != nil {
		return nil, err
	}
	return &CreditCardDetails{
		FirstName:      firstName,
		LastName:       lastName,
		CardNumber:     cardNumber,
		ExpiryMonth:    expiryMonth,
		ExpiryYear:     expiryYear,
		SecurityCode:   securityCode,
		BillingAddress: billingAddress,
		ZipCode:        zipCode,
	}, nil
}

func missingKey(key string) error {
	return errs.NewDataValidationError("payment_method", "missing "+key, nil)
}

func stringField(data map[string]any, key string) (string, error) {
	raw, ok := data[key]
	if !ok {
		return "", missingKey(key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", errs.NewDataValidationError("payment_method", key+" must be a string", nil)
	}
	return value, nil
}

// intField accepts the numeric kinds a decoded JSON body or a native map can
// carry for an integer value
func intField(data map[string]any, key string) (int, error) {
	raw, ok := data[key]
	if !ok {
		return 0, missingKey(key)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, errs.NewDataValidationError("payment_method", key+" must be an integer", nil)
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, errs.NewDataValidationError("payment_method", key+" must be an integer", err)
		}
		return int(n), nil
	default:
		return 0, errs.NewDataValidationError("payment_method", key+" must be an integer", nil)
	}
}

func uintField(data map[string]any, key string) (uint64, error) {
	value, err := intField(data, key)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, errs.NewDataValidationError("payment_method", fmt.Sprintf("%s must not be negative", key), nil)
	}
	return uint64(value), nil
}
