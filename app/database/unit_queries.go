package database

import (
	"database/sql"
	"fmt"
	"log"

	"rakeen-properties/app/models"
)

// CreateUnit adds a unit to a property.
func CreateUnit(db *sql.DB, unit *models.Unit) error {
	query := `INSERT INTO units (property_id, unit_number, type, status)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		unit.PropertyID, unit.UnitNumber, unit.Type, string(unit.Status),
	).Scan(&unit.ID, &unit.CreatedAt, &unit.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert unit: %v", err)
	}
	return nil
}

// UpdateUnit edits a unit's number, type and status.
func UpdateUnit(db *sql.DB, unit *models.Unit) error {
	query := `UPDATE units SET unit_number = $1, type = $2, status = $3, updated_at = NOW() WHERE id = $4`
	res, err := db.Exec(query, unit.UnitNumber, unit.Type, string(unit.Status), unit.ID)
	if err != nil {
		return fmt.Errorf("failed to update unit: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("unit %s not found", unit.ID)
	}
	return nil
}

// DeleteUnit removes a unit that has no leases.
func DeleteUnit(db *sql.DB, unitID string) error {
	var leaseCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM leases WHERE unit_id = $1`, unitID).Scan(&leaseCount); err != nil {
		return fmt.Errorf("failed to check unit leases: %v", err)
	}
	if leaseCount > 0 {
		return fmt.Errorf("unit has %d lease(s) and cannot be deleted", leaseCount)
	}
	res, err := db.Exec(`DELETE FROM units WHERE id = $1`, unitID)
	if err != nil {
		return fmt.Errorf("failed to delete unit: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("unit %s not found", unitID)
	}
	return nil
}

// GetUnit returns one unit.
func GetUnit(db *sql.DB, unitID string) (*models.Unit, error) {
	u := &models.Unit{}
	var status string
	query := `SELECT id, property_id, unit_number, type, status, created_at, updated_at
	          FROM units WHERE id = $1`
	err := db.QueryRow(query, unitID).Scan(
		&u.ID, &u.PropertyID, &u.UnitNumber, &u.Type, &status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Status = models.UnitStatus(status)
	return u, nil
}

// GetUnitsForProperty lists a property's units with their active lease id and
// tenant name, if any.
func GetUnitsForProperty(db *sql.DB, propertyID string) []*models.UnitWithLease {
	query := `SELECT u.id, u.property_id, u.unit_number, u.type, u.status, u.created_at, u.updated_at,
	                 l.id AS active_lease_id,
	                 COALESCE(t.first_name || ' ' || t.last_name, '') AS tenant_name
	          FROM units u
	          LEFT JOIN leases l ON l.unit_id = u.id AND l.status = 'Active'
	          LEFT JOIN tenants t ON l.tenant_id = t.id
	          WHERE u.property_id = $1
	          ORDER BY u.unit_number ASC`
	rows, err := db.Query(query, propertyID)
	if err != nil {
		log.Printf("Failed to fetch units for property %s: %v", propertyID, err)
		return []*models.UnitWithLease{}
	}
	defer rows.Close()

	units := []*models.UnitWithLease{}
	for rows.Next() {
		u := &models.UnitWithLease{}
		var status string
		err := rows.Scan(
			&u.ID, &u.PropertyID, &u.UnitNumber, &u.Type, &status, &u.CreatedAt, &u.UpdatedAt,
			&u.ActiveLeaseID, &u.TenantName,
		)
		if err != nil {
			log.Printf("Failed to scan unit row: %v", err)
			continue
		}
		u.Status = models.UnitStatus(status)
		units = append(units, u)
	}
	return units
}
