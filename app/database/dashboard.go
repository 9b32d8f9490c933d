package database

import (
	"database/sql"

	"rakeen-properties/app/models"
)

// GetDashboardStats returns the main dashboard counters. Outstanding dues are
// the scheduled amounts of non-cancelled payments minus everything paid
// against them, summed across active leases.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	if err := db.QueryRow(`SELECT COUNT(*) FROM properties`).Scan(&stats.TotalProperties); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM units`).Scan(&stats.TotalUnits); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM units WHERE status = 'Rented'`).Scan(&stats.RentedUnits); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM leases WHERE status = 'Active'`).Scan(&stats.ActiveLeases); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM tenants WHERE is_active = true`).Scan(&stats.TotalTenants); err != nil {
		return nil, err
	}

	err := db.QueryRow(`
		SELECT COALESCE(SUM(lp.amount), 0) - COALESCE(SUM(paid.total), 0)
		FROM lease_payments lp
		JOIN leases l ON lp.lease_id = l.id
		LEFT JOIN (
			SELECT lease_payment_id, SUM(amount_paid) AS total
			FROM payment_transactions
			GROUP BY lease_payment_id
		) paid ON paid.lease_payment_id = lp.id
		WHERE l.status = 'Active' AND lp.status <> 'Cancelled'
	`).Scan(&stats.OutstandingDues)
	if err != nil {
		return nil, err
	}

	stats.RecentActivity = GetRecentActivity(db, 10)
	return stats, nil
}
