package database

import (
	"database/sql"
	"fmt"
	"log"

	"rakeen-properties/app/models"
)

// CreatePayee adds a saved cheque recipient.
func CreatePayee(db *sql.DB, payee *models.PayeeContact) error {
	query := `INSERT INTO payees (name, phone, notes)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, payee.Name, payee.Phone, payee.Notes).
		Scan(&payee.ID, &payee.CreatedAt, &payee.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert payee: %v", err)
	}
	return nil
}

// UpdatePayee edits a saved recipient.
func UpdatePayee(db *sql.DB, payee *models.PayeeContact) error {
	query := `UPDATE payees SET name = $1, phone = $2, notes = $3, updated_at = NOW() WHERE id = $4`
	res, err := db.Exec(query, payee.Name, payee.Phone, payee.Notes, payee.ID)
	if err != nil {
		return fmt.Errorf("failed to update payee: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("payee %s not found", payee.ID)
	}
	return nil
}

// DeletePayee removes a saved recipient that no cheque references.
func DeletePayee(db *sql.DB, payeeID string) error {
	var chequeCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM cheques WHERE payee_id = $1`, payeeID).Scan(&chequeCount); err != nil {
		return fmt.Errorf("failed to check payee cheques: %v", err)
	}
	if chequeCount > 0 {
		return fmt.Errorf("payee is referenced by %d cheque(s) and cannot be deleted", chequeCount)
	}
	res, err := db.Exec(`DELETE FROM payees WHERE id = $1`, payeeID)
	if err != nil {
		return fmt.Errorf("failed to delete payee: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("payee %s not found", payeeID)
	}
	return nil
}

// GetPayees lists saved recipients.
func GetPayees(db *sql.DB) []*models.PayeeContact {
	rows, err := db.Query(`SELECT id, name, phone, notes, created_at, updated_at FROM payees ORDER BY name ASC`)
	if err != nil {
		log.Printf("Failed to fetch payees: %v", err)
		return []*models.PayeeContact{}
	}
	defer rows.Close()

	payees := []*models.PayeeContact{}
	for rows.Next() {
		p := &models.PayeeContact{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Notes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			log.Printf("Failed to scan payee row: %v", err)
			continue
		}
		payees = append(payees, p)
	}
	return payees
}

// CreateBank adds a bank.
func CreateBank(db *sql.DB, bank *models.Bank) error {
	query := `INSERT INTO banks (name, branch) VALUES ($1, $2) RETURNING id, created_at`
	err := db.QueryRow(query, bank.Name, bank.Branch).Scan(&bank.ID, &bank.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert bank: %v", err)
	}
	return nil
}

// GetBanks lists banks.
func GetBanks(db *sql.DB) []*models.Bank {
	rows, err := db.Query(`SELECT id, name, branch, created_at FROM banks ORDER BY name ASC`)
	if err != nil {
		log.Printf("Failed to fetch banks: %v", err)
		return []*models.Bank{}
	}
	defer rows.Close()

	banks := []*models.Bank{}
	for rows.Next() {
		b := &models.Bank{}
		if err := rows.Scan(&b.ID, &b.Name, &b.Branch, &b.CreatedAt); err != nil {
			log.Printf("Failed to scan bank row: %v", err)
			continue
		}
		banks = append(banks, b)
	}
	return banks
}
