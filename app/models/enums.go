package models

// LeaseStatus defines the lifecycle states of a lease.
type LeaseStatus string

const (
	LeaseActive            LeaseStatus = "Active"
	LeaseCompleted         LeaseStatus = "Completed"
	LeaseCancelled         LeaseStatus = "Cancelled"
	LeaseCompletedWithDues LeaseStatus = "Completed with Dues"
	LeaseCancelledWithDues LeaseStatus = "Cancelled with Dues"
)

// IsTerminal reports whether the lease can no longer change status.
func (s LeaseStatus) IsTerminal() bool {
	return s != LeaseActive
}

// UnitStatus defines the occupancy states of a unit.
type UnitStatus string

const (
	UnitAvailable   UnitStatus = "Available"
	UnitRented      UnitStatus = "Rented"
	UnitMaintenance UnitStatus = "Maintenance"
)

// ChequeStatus defines the stored states of a cheque. Overdue is never
// stored; it is derived at display time from Pending plus a past due date.
type ChequeStatus string

const (
	ChequeSubmitted     ChequeStatus = "Submitted"
	ChequePending       ChequeStatus = "Pending"
	ChequePartiallyPaid ChequeStatus = "Partially Paid"
	ChequeCleared       ChequeStatus = "Cleared"
	ChequeBounced       ChequeStatus = "Bounced"
	ChequeCancelled     ChequeStatus = "Cancelled"
)

// PaymentStatus defines the stored states of a scheduled lease payment.
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "Pending"
	PaymentPartiallyPaid PaymentStatus = "Partially Paid"
	PaymentPaid          PaymentStatus = "Paid"
	PaymentCancelled     PaymentStatus = "Cancelled"
)

// ExtensionStatus defines the two-state approval flow for due-date extensions.
type ExtensionStatus string

const (
	ExtensionPending  ExtensionStatus = "Pending"
	ExtensionApproved ExtensionStatus = "Approved"
	ExtensionRejected ExtensionStatus = "Rejected"
)

// PayeeType discriminates the three payee variants of a cheque.
type PayeeType string

const (
	PayeeSaved  PayeeType = "saved"
	PayeeTenant PayeeType = "tenant"
	PayeeManual PayeeType = "manual"
)

// EvictionStatus defines the review states of an eviction request.
type EvictionStatus string

const (
	EvictionPending  EvictionStatus = "Pending"
	EvictionApproved EvictionStatus = "Approved"
	EvictionRejected EvictionStatus = "Rejected"
)

// EmployeeRole defines the access levels of back-office users.
type EmployeeRole string

const (
	RoleAdmin   EmployeeRole = "admin"
	RoleManager EmployeeRole = "manager"
	RoleStaff   EmployeeRole = "staff"
)
