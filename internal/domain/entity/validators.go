package entity

import (
	"fmt"
	"regexp"
	"unicode"

	errs "github.com/paymentshop/payments-service/internal/domain/error"
)

// Expiry window accepted for credit cards
const (
	ExpiryMonthMin = 1
	ExpiryMonthMax = 12
	ExpiryYearMin  = 2024
	ExpiryYearMax  = 2050
)

const (
	cardNumberLength   = 16
	securityCodeLength = 3
	zipCodeLength      = 5
)

// Anchored on both ends so a valid core surrounded by garbage is rejected
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateName checks the display label of a payment method
func ValidateName(name string) error {
	if name == "" {
		return errs.NewFieldValidationError("name", "must not be empty")
	}
	return nil
}

// ValidateHolderName checks a card holder name part (first or last name)
func ValidateHolderName(field, value string) error {
	if !isAlpha(value) {
		return errs.NewFieldValidationError(field, "must contain letters only")
	}
	return nil
}

// ValidateCardNumber checks a credit card number
func ValidateCardNumber(number string) error {
	if !isDigits(number) {
		return errs.NewFieldValidationError("card_number", "must be numeric")
	}
	if len(number) != cardNumberLength {
		return errs.NewFieldValidationError("card_number", fmt.Sprintf("must be %d digits", cardNumberLength))
	}
	return nil
}

// ValidateSecurityCode checks a credit card security code
func ValidateSecurityCode(code string) error {
	if !isDigits(code) {
		return errs.NewFieldValidationError("security_code", "must be numeric")
	}
	if len(code) != securityCodeLength {
		return errs.NewFieldValidationError("security_code", fmt.Sprintf("must be %d digits", securityCodeLength))
	}
	return nil
}

// ValidateExpiryMonth checks a credit card expiry month
func ValidateExpiryMonth(month int) error {
	if month < ExpiryMonthMin || month > ExpiryMonthMax {
		return errs.NewFieldValidationError("expiry_month", fmt.Sprintf("must be between %d and %d", ExpiryMonthMin, ExpiryMonthMax))
	}
	return nil
}

// ValidateExpiryYear checks a credit card expiry year
func ValidateExpiryYear(year int) error {
	if year < ExpiryYearMin || year > ExpiryYearMax {
		return errs.NewFieldValidationError("expiry_year", fmt.Sprintf("must be between %d and %d", ExpiryYearMin, ExpiryYearMax))
	}
	return nil
}

// ValidateBillingAddress checks a credit card billing address
func ValidateBillingAddress(address string) error {
	if address == "" {
		return errs.NewFieldValidationError("billing_address", "must not be empty")
	}
	return nil
}

// ValidateZipCode checks a credit card billing ZIP code
func ValidateZipCode(zip string) error {
	if !isDigits(zip) {
		return errs.NewFieldValidationError("zip_code", "must be numeric")
	}
	if len(zip) != zipCodeLength {
		return errs.NewFieldValidationError("zip_code", fmt.Sprintf("must be %d digits", zipCodeLength))
	}
	return nil
}

// ValidateEmail checks a PayPal account email address
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errs.NewFieldValidationError("email", "must be a valid email address")
	}
	return nil
}
