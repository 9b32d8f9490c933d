package models

import "github.com/shopspring/decimal"

// LeaseWithDetails extends Lease with the denormalized display fields the
// lease list and detail screens need, plus the aggregate paid amount summed
// from payment transactions at query time.
type LeaseWithDetails struct {
	Lease
	TenantName      string          `json:"tenant_name"`
	UnitNumber      string          `json:"unit_number"`
	PropertyID      string          `json:"property_id"`
	PropertyName    string          `json:"property_name"`
	TotalPaidAmount decimal.Decimal `json:"total_paid_amount"`
}

// ChequeWithDetails extends Cheque with resolved payee/bank names and the
// settled total.
type ChequeWithDetails struct {
	Cheque
	PayeeName string `json:"payee_name"`
	BankName  string `json:"bank_name"`
}

// UnitWithLease extends Unit with its current active lease, if any.
type UnitWithLease struct {
	Unit
	ActiveLeaseID *string `json:"active_lease_id,omitempty"`
	TenantName    string  `json:"tenant_name,omitempty"`
}

// ChequeDashboard holds the aggregate cards shown on the cheques dashboard.
// All values are recomputed from the in-memory cheque list on every request.
type ChequeDashboard struct {
	UnclearedValue decimal.Decimal `json:"uncleared_value"`
	BouncedValue   decimal.Decimal `json:"bounced_value"`
	DueSoonCount   int             `json:"due_soon_count"`
	OverdueCount   int             `json:"overdue_count"`
	OverdueAmount  decimal.Decimal `json:"overdue_amount"`
	ClearedLast30  decimal.Decimal `json:"cleared_last_30"`
}

// DashboardStats holds the main dashboard counters.
type DashboardStats struct {
	TotalProperties int             `json:"total_properties"`
	TotalUnits      int             `json:"total_units"`
	RentedUnits     int             `json:"rented_units"`
	ActiveLeases    int             `json:"active_leases"`
	TotalTenants    int             `json:"total_tenants"`
	OutstandingDues decimal.Decimal `json:"outstanding_dues"`
	RecentActivity  []*ActivityLog  `json:"recent_activity"`
}
