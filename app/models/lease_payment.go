package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeasePayment represents one scheduled installment under a lease. The paid
// total is never stored here; it is the SUM of the child transactions.
type LeasePayment struct {
	ID           string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	LeaseID      string          `json:"lease_id" gorm:"not null;index;type:uuid"`
	DueDate      time.Time       `json:"due_date" gorm:"not null;type:date;index"`
	Amount       decimal.Decimal `json:"amount" gorm:"not null;type:numeric(12,2)"`
	Status       PaymentStatus   `json:"status" gorm:"not null;default:'Pending';type:varchar(20)"`
	ChequeNumber *string         `json:"cheque_number,omitempty" gorm:"type:varchar(50)"`
	ChequeBank   *string         `json:"cheque_bank,omitempty"`

	// Extension workflow: null -> Pending -> {Approved, Rejected}. A new
	// request overwrites a prior resolution back to Pending.
	ExtensionStatus  *ExtensionStatus `json:"extension_status,omitempty" gorm:"type:varchar(20)"`
	RequestedDueDate *time.Time       `json:"requested_due_date,omitempty" gorm:"type:date"`
	ExtensionReason  *string          `json:"extension_reason,omitempty"`
	ManagerNotes     *string          `json:"manager_notes,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Transactions []*PaymentTransaction `json:"transactions,omitempty" gorm:"foreignKey:LeasePaymentID;references:ID"`

	// TotalPaidAmount is a transient query-result field populated from the
	// transaction rows, never written back.
	TotalPaidAmount decimal.Decimal `json:"total_paid_amount" gorm:"-"`
}

// Balance returns amount minus the paid total. Overpayment is permitted, so
// the result may be negative.
func (p *LeasePayment) Balance() decimal.Decimal {
	return p.Amount.Sub(p.TotalPaidAmount)
}
