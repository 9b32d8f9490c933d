package database

import (
	"database/sql"
	"fmt"
	"log"

	"rakeen-properties/app/models"
)

// AssignTenantToUnit activates a tenancy: marks the unit Rented, demotes any
// existing active lease on the unit to Completed, and inserts the new lease
// as Active. All three steps run in one transaction; a partial failure rolls
// everything back. The partial unique index on leases(unit_id) rejects a
// concurrent second activation at commit time.
func AssignTenantToUnit(db *sql.DB, unitID, tenantID string, lease *models.Lease) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Mark the unit rented.
	res, err := tx.Exec(`UPDATE units SET status = 'Rented', updated_at = NOW() WHERE id = $1`, unitID)
	if err != nil {
		return fmt.Errorf("failed to update unit status: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("unit %s not found", unitID)
	}

	// 2. Demote any prior active lease.
	_, err = tx.Exec(`UPDATE leases SET status = 'Completed', updated_at = NOW()
	                  WHERE unit_id = $1 AND status = 'Active'`, unitID)
	if err != nil {
		return fmt.Errorf("failed to demote existing lease: %v", err)
	}

	// 3. Insert the new lease as Active.
	query := `INSERT INTO leases (unit_id, tenant_id, start_date, end_date, status, total_amount, business_name, trade_license)
	          VALUES ($1, $2, $3, $4, 'Active', $5, $6, $7)
	          RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query,
		unitID,
		tenantID,
		lease.StartDate,
		lease.EndDate,
		lease.TotalAmount,
		lease.BusinessName,
		lease.TradeLicense,
	).Scan(&lease.ID, &lease.CreatedAt, &lease.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert lease: %v", err)
	}
	lease.UnitID = unitID
	lease.TenantID = tenantID
	lease.Status = models.LeaseActive

	return tx.Commit()
}

// RemoveTenantFromUnit completes a lease and frees its unit atomically.
func RemoveTenantFromUnit(db *sql.DB, unitID, leaseID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE leases SET status = 'Completed', updated_at = NOW()
	                     WHERE id = $1 AND unit_id = $2`, leaseID, unitID)
	if err != nil {
		return fmt.Errorf("failed to complete lease: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("lease %s not found on unit %s", leaseID, unitID)
	}

	_, err = tx.Exec(`UPDATE units SET status = 'Available', updated_at = NOW() WHERE id = $1`, unitID)
	if err != nil {
		return fmt.Errorf("failed to release unit: %v", err)
	}

	return tx.Commit()
}

// CancelLease moves an active lease to a terminal cancelled status and frees
// the unit. withDues selects 'Cancelled with Dues'.
func CancelLease(db *sql.DB, leaseID string, withDues bool) error {
	status := models.LeaseCancelled
	if withDues {
		status = models.LeaseCancelledWithDues
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var unitID string
	err = tx.QueryRow(`UPDATE leases SET status = $1, updated_at = NOW()
	                   WHERE id = $2 AND status = 'Active'
	                   RETURNING unit_id`, string(status), leaseID).Scan(&unitID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("lease %s is not active", leaseID)
	}
	if err != nil {
		return fmt.Errorf("failed to cancel lease: %v", err)
	}

	_, err = tx.Exec(`UPDATE units SET status = 'Available', updated_at = NOW() WHERE id = $1`, unitID)
	if err != nil {
		return fmt.Errorf("failed to release unit: %v", err)
	}

	return tx.Commit()
}

// UpdateLease edits the mutable fields of a lease.
func UpdateLease(db *sql.DB, lease *models.Lease) error {
	query := `UPDATE leases
	          SET start_date = $1, end_date = $2, status = $3, total_amount = $4,
	              business_name = $5, trade_license = $6, updated_at = NOW()
	          WHERE id = $7`
	res, err := db.Exec(query,
		lease.StartDate, lease.EndDate, string(lease.Status), lease.TotalAmount,
		lease.BusinessName, lease.TradeLicense, lease.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lease: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("lease %s not found", lease.ID)
	}
	return nil
}

const leaseDetailsSelect = `
	SELECT l.id, l.unit_id, l.tenant_id, l.start_date, l.end_date, l.status,
	       l.total_amount, l.business_name, l.trade_license, l.created_at, l.updated_at,
	       t.first_name || ' ' || t.last_name AS tenant_name,
	       u.unit_number, p.id AS property_id, p.name AS property_name,
	       COALESCE((
	           SELECT SUM(pt.amount_paid)
	           FROM payment_transactions pt
	           JOIN lease_payments lp ON pt.lease_payment_id = lp.id
	           WHERE lp.lease_id = l.id
	       ), 0) AS total_paid_amount
	FROM leases l
	JOIN tenants t ON l.tenant_id = t.id
	JOIN units u ON l.unit_id = u.id
	JOIN properties p ON u.property_id = p.id`

func scanLeaseDetails(scanner interface {
	Scan(dest ...interface{}) error
}) (*models.LeaseWithDetails, error) {
	l := &models.LeaseWithDetails{}
	var status string
	err := scanner.Scan(
		&l.ID, &l.UnitID, &l.TenantID, &l.StartDate, &l.EndDate, &status,
		&l.TotalAmount, &l.BusinessName, &l.TradeLicense, &l.CreatedAt, &l.UpdatedAt,
		&l.TenantName, &l.UnitNumber, &l.PropertyID, &l.PropertyName,
		&l.TotalPaidAmount,
	)
	if err != nil {
		return nil, err
	}
	l.Status = models.LeaseStatus(status)
	return l, nil
}

// GetLeaseWithDetails returns one lease joined with tenant, unit, property
// and the aggregate paid amount.
func GetLeaseWithDetails(db *sql.DB, leaseID string) (*models.LeaseWithDetails, error) {
	return scanLeaseDetails(db.QueryRow(leaseDetailsSelect+` WHERE l.id = $1`, leaseID))
}

// GetLeasesWithDetails returns all leases in display order: leases already
// past their end date first (oldest end first), then the rest by nearest
// start date.
func GetLeasesWithDetails(db *sql.DB) []*models.LeaseWithDetails {
	query := leaseDetailsSelect + `
	ORDER BY CASE WHEN l.end_date < CURRENT_DATE THEN 0 ELSE 1 END,
	         CASE WHEN l.end_date < CURRENT_DATE THEN l.end_date ELSE l.start_date END ASC`

	rows, err := db.Query(query)
	if err != nil {
		log.Printf("Failed to fetch leases: %v", err)
		return []*models.LeaseWithDetails{}
	}
	defer rows.Close()

	leases := []*models.LeaseWithDetails{}
	for rows.Next() {
		l, err := scanLeaseDetails(rows)
		if err != nil {
			log.Printf("Failed to scan lease row: %v", err)
			continue
		}
		leases = append(leases, l)
	}
	return leases
}
