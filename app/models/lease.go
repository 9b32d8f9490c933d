package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lease represents a tenancy agreement binding one tenant to one unit for a
// date range. At most one Active lease may exist per unit at any time; the
// assignment routine demotes any prior active lease before inserting a new
// one, and a partial unique index backs the same rule at the storage layer.
type Lease struct {
	ID           string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UnitID       string          `json:"unit_id" gorm:"not null;index;type:uuid"`
	TenantID     string          `json:"tenant_id" gorm:"not null;index;type:uuid"`
	StartDate    time.Time       `json:"start_date" gorm:"not null;type:date"`
	EndDate      time.Time       `json:"end_date" gorm:"not null;type:date"`
	Status       LeaseStatus     `json:"status" gorm:"not null;default:'Active';index;type:varchar(30)"`
	TotalAmount  decimal.Decimal `json:"total_amount" gorm:"not null;type:numeric(12,2)"`
	BusinessName *string         `json:"business_name,omitempty"`
	TradeLicense *string         `json:"trade_license,omitempty"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	Tenant   *Tenant         `json:"tenant,omitempty" gorm:"foreignKey:TenantID;references:ID"`
	Unit     *Unit           `json:"unit,omitempty" gorm:"foreignKey:UnitID;references:ID"`
	Payments []*LeasePayment `json:"payments,omitempty" gorm:"foreignKey:LeaseID;references:ID"`
}

// IsExpired reports whether the lease's end date has passed.
func (l *Lease) IsExpired(now time.Time) bool {
	return l.EndDate.Before(now)
}
