package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory groups expenses for reporting.
type ExpenseCategory struct {
	ID       string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name     string `json:"name" gorm:"not null;uniqueIndex"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

// Expense represents a cost booked against the portfolio, optionally scoped
// to a property.
type Expense struct {
	ID         string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CategoryID string          `json:"category_id" gorm:"not null;index;type:uuid"`
	PropertyID *string         `json:"property_id,omitempty" gorm:"index;type:uuid"`
	Title      string          `json:"title" gorm:"not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"not null;type:numeric(12,2)"`
	Date       time.Time       `json:"date" gorm:"not null;type:date"`
	Notes      *string         `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	Category *ExpenseCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}
