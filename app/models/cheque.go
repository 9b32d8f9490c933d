package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Payee is the recipient of a cheque: a saved contact, a tenant, or a
// free-text name. Exactly one variant applies to a cheque at a time.
type Payee interface {
	isPayee()
	Type() PayeeType
}

// SavedPayee references a contact from the payees table.
type SavedPayee struct {
	PayeeID string
}

// TenantPayee references a tenant.
type TenantPayee struct {
	TenantID string
}

// ManualPayee carries a free-text name with no backing row.
type ManualPayee struct {
	Name string
}

func (SavedPayee) isPayee()  {}
func (TenantPayee) isPayee() {}
func (ManualPayee) isPayee() {}

func (SavedPayee) Type() PayeeType  { return PayeeSaved }
func (TenantPayee) Type() PayeeType { return PayeeTenant }
func (ManualPayee) Type() PayeeType { return PayeeManual }

// Cheque represents a post-dated payment instrument tracked independently of
// the lease schedule. As with lease payments, the settled total lives in the
// child transactions, never on this row.
type Cheque struct {
	ID              string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PayeeType       PayeeType       `json:"payee_type" gorm:"not null;type:varchar(10)"`
	PayeeID         *string         `json:"payee_id,omitempty" gorm:"index;type:uuid"`
	TenantID        *string         `json:"tenant_id,omitempty" gorm:"index;type:uuid"`
	ManualPayeeName *string         `json:"manual_payee_name,omitempty"`
	BankID          *string         `json:"bank_id,omitempty" gorm:"index;type:uuid"`
	ChequeNumber    string          `json:"cheque_number" gorm:"not null;type:varchar(50)"`
	Amount          decimal.Decimal `json:"amount" gorm:"not null;type:numeric(12,2)"`
	ChequeDate      time.Time       `json:"cheque_date" gorm:"not null;type:date"`
	DueDate         time.Time       `json:"due_date" gorm:"not null;type:date;index"`
	Status          ChequeStatus    `json:"status" gorm:"not null;default:'Pending';index;type:varchar(20)"`
	ImagePath       *string         `json:"image_path,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedByID     *string         `json:"created_by_id,omitempty" gorm:"index;type:uuid"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	Transactions []*ChequeTransaction `json:"transactions,omitempty" gorm:"foreignKey:ChequeID;references:ID"`

	// Transient query-result field, summed from transaction rows.
	TotalPaidAmount decimal.Decimal `json:"total_paid_amount" gorm:"-"`
}

// Balance returns amount minus the settled total. Not guarded against
// negative values.
func (c *Cheque) Balance() decimal.Decimal {
	return c.Amount.Sub(c.TotalPaidAmount)
}

// ResolvePayee returns the cheque's payee as a tagged union, rejecting rows
// where the discriminator and the three variant columns disagree.
func (c *Cheque) ResolvePayee() (Payee, error) {
	switch c.PayeeType {
	case PayeeSaved:
		if c.PayeeID == nil || c.TenantID != nil || c.ManualPayeeName != nil {
			return nil, fmt.Errorf("inconsistent payee fields for saved payee on cheque %s", c.ID)
		}
		return SavedPayee{PayeeID: *c.PayeeID}, nil
	case PayeeTenant:
		if c.TenantID == nil || c.PayeeID != nil || c.ManualPayeeName != nil {
			return nil, fmt.Errorf("inconsistent payee fields for tenant payee on cheque %s", c.ID)
		}
		return TenantPayee{TenantID: *c.TenantID}, nil
	case PayeeManual:
		if c.ManualPayeeName == nil || c.PayeeID != nil || c.TenantID != nil {
			return nil, fmt.Errorf("inconsistent payee fields for manual payee on cheque %s", c.ID)
		}
		return ManualPayee{Name: *c.ManualPayeeName}, nil
	default:
		return nil, fmt.Errorf("unknown payee type %q on cheque %s", c.PayeeType, c.ID)
	}
}

// SetPayee writes the discriminator and exactly one variant column, clearing
// the other two.
func (c *Cheque) SetPayee(p Payee) {
	c.PayeeID = nil
	c.TenantID = nil
	c.ManualPayeeName = nil
	c.PayeeType = p.Type()
	switch v := p.(type) {
	case SavedPayee:
		c.PayeeID = &v.PayeeID
	case TenantPayee:
		c.TenantID = &v.TenantID
	case ManualPayee:
		c.ManualPayeeName = &v.Name
	}
}
