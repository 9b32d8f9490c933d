package database

import (
	"database/sql"
	"fmt"
	"log"

	"rakeen-properties/app/models"
)

// CreateTenant adds a tenant.
func CreateTenant(db *sql.DB, tenant *models.Tenant) error {
	query := `INSERT INTO tenants (first_name, last_name, email, phone, emirates_id, is_commercial)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		tenant.FirstName, tenant.LastName, tenant.Email, tenant.Phone,
		tenant.EmiratesID, tenant.IsCommercial,
	).Scan(&tenant.ID, &tenant.CreatedAt, &tenant.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert tenant: %v", err)
	}
	return nil
}

// UpdateTenant edits a tenant.
func UpdateTenant(db *sql.DB, tenant *models.Tenant) error {
	query := `UPDATE tenants
	          SET first_name = $1, last_name = $2, email = $3, phone = $4,
	              emirates_id = $5, is_commercial = $6, is_active = $7, updated_at = NOW()
	          WHERE id = $8`
	res, err := db.Exec(query,
		tenant.FirstName, tenant.LastName, tenant.Email, tenant.Phone,
		tenant.EmiratesID, tenant.IsCommercial, tenant.IsActive, tenant.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update tenant: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("tenant %s not found", tenant.ID)
	}
	return nil
}

// GetTenant returns one tenant.
func GetTenant(db *sql.DB, tenantID string) (*models.Tenant, error) {
	t := &models.Tenant{}
	query := `SELECT id, first_name, last_name, email, phone, emirates_id, is_commercial, is_active, created_at, updated_at
	          FROM tenants WHERE id = $1`
	err := db.QueryRow(query, tenantID).Scan(
		&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Phone,
		&t.EmiratesID, &t.IsCommercial, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetTenants lists active tenants.
func GetTenants(db *sql.DB) []*models.Tenant {
	query := `SELECT id, first_name, last_name, email, phone, emirates_id, is_commercial, is_active, created_at, updated_at
	          FROM tenants WHERE is_active = true
	          ORDER BY first_name ASC, last_name ASC`
	rows, err := db.Query(query)
	if err != nil {
		log.Printf("Failed to fetch tenants: %v", err)
		return []*models.Tenant{}
	}
	defer rows.Close()

	tenants := []*models.Tenant{}
	for rows.Next() {
		t := &models.Tenant{}
		err := rows.Scan(
			&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Phone,
			&t.EmiratesID, &t.IsCommercial, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			log.Printf("Failed to scan tenant row: %v", err)
			continue
		}
		tenants = append(tenants, t)
	}
	return tenants
}
