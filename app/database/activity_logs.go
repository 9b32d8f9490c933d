package database

import (
	"database/sql"
	"log"

	"rakeen-properties/app/models"
)

// LogActivity appends one audit record. Logging failures are reported but
// never fail the mutation they describe.
func LogActivity(db *sql.DB, employeeID *string, action, entityType string, entityID *string, detail string) {
	query := `INSERT INTO activity_logs (employee_id, action, entity_type, entity_id, detail)
	          VALUES ($1, $2, $3, $4, $5)`
	if _, err := db.Exec(query, employeeID, action, entityType, entityID, detail); err != nil {
		log.Printf("Failed to log activity %s/%s: %v", action, entityType, err)
	}
}

// GetRecentActivity returns the latest audit records.
func GetRecentActivity(db *sql.DB, limit int) []*models.ActivityLog {
	query := `SELECT id, employee_id, action, entity_type, entity_id, detail, created_at
	          FROM activity_logs ORDER BY created_at DESC LIMIT $1`
	rows, err := db.Query(query, limit)
	if err != nil {
		log.Printf("Failed to fetch activity logs: %v", err)
		return []*models.ActivityLog{}
	}
	defer rows.Close()

	logs := []*models.ActivityLog{}
	for rows.Next() {
		a := &models.ActivityLog{}
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Action, &a.EntityType, &a.EntityID, &a.Detail, &a.CreatedAt); err != nil {
			log.Printf("Failed to scan activity row: %v", err)
			continue
		}
		logs = append(logs, a)
	}
	return logs
}
