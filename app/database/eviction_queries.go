package database

import (
	"database/sql"
	"fmt"
	"log"

	"rakeen-properties/app/models"
)

// CreateEvictionRequest files a petition against a lease.
func CreateEvictionRequest(db *sql.DB, req *models.EvictionRequest) error {
	query := `INSERT INTO eviction_requests (lease_id, requested_by, reason)
	          VALUES ($1, $2, $3)
	          RETURNING id, status, created_at, updated_at`
	var status string
	err := db.QueryRow(query, req.LeaseID, req.RequestedBy, req.Reason).
		Scan(&req.ID, &status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert eviction request: %v", err)
	}
	req.Status = models.EvictionStatus(status)
	return nil
}

// ReviewEvictionRequest resolves a pending petition.
func ReviewEvictionRequest(db *sql.DB, requestID string, approved bool, managerNotes string) error {
	status := models.EvictionRejected
	if approved {
		status = models.EvictionApproved
	}
	query := `UPDATE eviction_requests
	          SET status = $1, manager_notes = $2, updated_at = NOW()
	          WHERE id = $3 AND status = 'Pending'`
	res, err := db.Exec(query, string(status), managerNotes, requestID)
	if err != nil {
		return fmt.Errorf("failed to review eviction request: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no pending eviction request %s", requestID)
	}
	return nil
}

// GetEvictionRequests lists petitions newest first.
func GetEvictionRequests(db *sql.DB) []*models.EvictionRequest {
	query := `SELECT id, lease_id, requested_by, reason, status, manager_notes, created_at, updated_at
	          FROM eviction_requests ORDER BY created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		log.Printf("Failed to fetch eviction requests: %v", err)
		return []*models.EvictionRequest{}
	}
	defer rows.Close()

	requests := []*models.EvictionRequest{}
	for rows.Next() {
		r := &models.EvictionRequest{}
		var status string
		err := rows.Scan(&r.ID, &r.LeaseID, &r.RequestedBy, &r.Reason, &status, &r.ManagerNotes, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			log.Printf("Failed to scan eviction row: %v", err)
			continue
		}
		r.Status = models.EvictionStatus(status)
		requests = append(requests, r)
	}
	return requests
}
