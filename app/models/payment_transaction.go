package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentTransaction represents one actual payment event reconciled against a
// scheduled lease payment. Owned exclusively by its parent payment.
type PaymentTransaction struct {
	ID             string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	LeasePaymentID string          `json:"lease_payment_id" gorm:"not null;index;type:uuid"`
	AmountPaid     decimal.Decimal `json:"amount_paid" gorm:"not null;type:numeric(12,2)"`
	PaymentDate    time.Time       `json:"payment_date" gorm:"not null;type:date"`
	PaymentMethod  string          `json:"payment_method" gorm:"type:varchar(50)"`
	DocumentPath   *string         `json:"document_path,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}
