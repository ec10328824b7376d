package model

import (
	"time"
)

// PaymentMethod represents the database row for payment methods. Both
// variants share one table; subtype columns are nullable and the type column
// discriminates which of them apply.
type PaymentMethod struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:63;not null"`
	Type      string    `gorm:"size:16;not null"`
	UserID    uint64    `gorm:"not null;index"`
	IsDefault bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Credit card columns
	FirstName      *string `gorm:"size:32"`
	LastName       *string `gorm:"size:32"`
	CardNumber     *string `gorm:"size:16"`
	ExpiryMonth    *int
	ExpiryYear     *int
	SecurityCode   *string `gorm:"size:3"`
	BillingAddress *string `gorm:"type:text"`
	ZipCode        *string `gorm:"size:5"`

	// PayPal columns
	Email *string `gorm:"size:254"`
}

// TableName specifies the table name for PaymentMethod
func (PaymentMethod) TableName() string {
	return "payment_methods"
}
