package database

import (
	"database/sql"
	"fmt"
	"log"

	"rakeen-properties/app/models"
)

// CreateOwner adds a landlord.
func CreateOwner(db *sql.DB, owner *models.Owner) error {
	query := `INSERT INTO owners (name, email, phone)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, owner.Name, owner.Email, owner.Phone).
		Scan(&owner.ID, &owner.CreatedAt, &owner.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert owner: %v", err)
	}
	return nil
}

// GetOwners lists all landlords.
func GetOwners(db *sql.DB) []*models.Owner {
	rows, err := db.Query(`SELECT id, name, email, phone, created_at, updated_at FROM owners ORDER BY name ASC`)
	if err != nil {
		log.Printf("Failed to fetch owners: %v", err)
		return []*models.Owner{}
	}
	defer rows.Close()

	owners := []*models.Owner{}
	for rows.Next() {
		o := &models.Owner{}
		if err := rows.Scan(&o.ID, &o.Name, &o.Email, &o.Phone, &o.CreatedAt, &o.UpdatedAt); err != nil {
			log.Printf("Failed to scan owner row: %v", err)
			continue
		}
		owners = append(owners, o)
	}
	return owners
}

// CreateProperty adds a property.
func CreateProperty(db *sql.DB, property *models.Property) error {
	query := `INSERT INTO properties (owner_id, name, location, type)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		property.OwnerID, property.Name, property.Location, property.Type,
	).Scan(&property.ID, &property.CreatedAt, &property.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert property: %v", err)
	}
	return nil
}

// UpdateProperty edits a property.
func UpdateProperty(db *sql.DB, property *models.Property) error {
	query := `UPDATE properties SET owner_id = $1, name = $2, location = $3, type = $4, updated_at = NOW() WHERE id = $5`
	res, err := db.Exec(query, property.OwnerID, property.Name, property.Location, property.Type, property.ID)
	if err != nil {
		return fmt.Errorf("failed to update property: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("property %s not found", property.ID)
	}
	return nil
}

// DeleteProperty removes a property and its vacant units in one transaction.
// A property with any lease history is refused; the leases reference the
// payment ledger and must stay.
func DeleteProperty(db *sql.DB, propertyID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var leaseCount int
	err = tx.QueryRow(`SELECT COUNT(*)
	                   FROM leases l JOIN units u ON l.unit_id = u.id
	                   WHERE u.property_id = $1`, propertyID).Scan(&leaseCount)
	if err != nil {
		return fmt.Errorf("failed to check property leases: %v", err)
	}
	if leaseCount > 0 {
		return fmt.Errorf("property has %d lease(s) and cannot be deleted", leaseCount)
	}

	if _, err := tx.Exec(`DELETE FROM units WHERE property_id = $1`, propertyID); err != nil {
		return fmt.Errorf("failed to delete property units: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM employee_properties WHERE property_id = $1`, propertyID); err != nil {
		return fmt.Errorf("failed to delete property assignments: %v", err)
	}
	res, err := tx.Exec(`DELETE FROM properties WHERE id = $1`, propertyID)
	if err != nil {
		return fmt.Errorf("failed to delete property: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("property %s not found", propertyID)
	}
	return tx.Commit()
}

// GetProperty returns one property.
func GetProperty(db *sql.DB, propertyID string) (*models.Property, error) {
	p := &models.Property{}
	query := `SELECT id, owner_id, name, location, type, created_at, updated_at FROM properties WHERE id = $1`
	err := db.QueryRow(query, propertyID).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Location, &p.Type, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetProperties lists properties; a non-empty employeeID narrows the list to
// that employee's assigned properties.
func GetProperties(db *sql.DB, employeeID string) []*models.Property {
	query := `SELECT p.id, p.owner_id, p.name, p.location, p.type, p.created_at, p.updated_at FROM properties p`
	var args []interface{}
	if employeeID != "" {
		query += ` JOIN employee_properties ep ON p.id = ep.property_id WHERE ep.employee_id = $1`
		args = append(args, employeeID)
	}
	query += ` ORDER BY p.name ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		log.Printf("Failed to fetch properties: %v", err)
		return []*models.Property{}
	}
	defer rows.Close()

	properties := []*models.Property{}
	for rows.Next() {
		p := &models.Property{}
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Location, &p.Type, &p.CreatedAt, &p.UpdatedAt); err != nil {
			log.Printf("Failed to scan property row: %v", err)
			continue
		}
		properties = append(properties, p)
	}
	return properties
}
