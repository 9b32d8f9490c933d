package database

import (
	"database/sql"
	"fmt"
	"log"

	"rakeen-properties/app/models"
)

// ChequeFilters holds the two independent optional filters for GetCheques.
// Both set means both apply (AND).
type ChequeFilters struct {
	CreatedByID string
	EmployeeID  string
}

const chequeDetailsSelect = `
	SELECT c.id, c.payee_type, c.payee_id, c.tenant_id, c.manual_payee_name, c.bank_id,
	       c.cheque_number, c.amount, c.cheque_date, c.due_date, c.status,
	       c.image_path, c.notes, c.created_by_id, c.created_at, c.updated_at,
	       CASE c.payee_type
	           WHEN 'saved' THEN py.name
	           WHEN 'tenant' THEN t.first_name || ' ' || t.last_name
	           ELSE COALESCE(c.manual_payee_name, '')
	       END AS payee_name,
	       COALESCE(b.name, '') AS bank_name,
	       COALESCE((
	           SELECT SUM(ct.amount_paid) FROM cheque_transactions ct WHERE ct.cheque_id = c.id
	       ), 0) AS total_paid_amount
	FROM cheques c
	LEFT JOIN payees py ON c.payee_id = py.id
	LEFT JOIN tenants t ON c.tenant_id = t.id
	LEFT JOIN banks b ON c.bank_id = b.id`

func scanChequeDetails(scanner interface {
	Scan(dest ...interface{}) error
}) (*models.ChequeWithDetails, error) {
	c := &models.ChequeWithDetails{}
	var payeeType, status string
	err := scanner.Scan(
		&c.ID, &payeeType, &c.PayeeID, &c.TenantID, &c.ManualPayeeName, &c.BankID,
		&c.ChequeNumber, &c.Amount, &c.ChequeDate, &c.DueDate, &status,
		&c.ImagePath, &c.Notes, &c.CreatedByID, &c.CreatedAt, &c.UpdatedAt,
		&c.PayeeName, &c.BankName, &c.TotalPaidAmount,
	)
	if err != nil {
		return nil, err
	}
	c.PayeeType = models.PayeeType(payeeType)
	c.Status = models.ChequeStatus(status)
	return c, nil
}

// AddCheque inserts a cheque. The payee union must already be consistent;
// callers go through Cheque.SetPayee and the cheques_payee_variant constraint
// backs it at the storage layer.
func AddCheque(db *sql.DB, cheque *models.Cheque) error {
	if _, err := cheque.ResolvePayee(); err != nil {
		return err
	}
	query := `INSERT INTO cheques (payee_type, payee_id, tenant_id, manual_payee_name, bank_id,
	                               cheque_number, amount, cheque_date, due_date, status,
	                               image_path, notes, created_by_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		string(cheque.PayeeType), cheque.PayeeID, cheque.TenantID, cheque.ManualPayeeName, cheque.BankID,
		cheque.ChequeNumber, cheque.Amount, cheque.ChequeDate, cheque.DueDate, string(cheque.Status),
		cheque.ImagePath, cheque.Notes, cheque.CreatedByID,
	).Scan(&cheque.ID, &cheque.CreatedAt, &cheque.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert cheque: %v", err)
	}
	return nil
}

// UpdateCheque edits a cheque, including re-pointing its payee union.
func UpdateCheque(db *sql.DB, cheque *models.Cheque) error {
	if _, err := cheque.ResolvePayee(); err != nil {
		return err
	}
	query := `UPDATE cheques
	          SET payee_type = $1, payee_id = $2, tenant_id = $3, manual_payee_name = $4, bank_id = $5,
	              cheque_number = $6, amount = $7, cheque_date = $8, due_date = $9, status = $10,
	              image_path = $11, notes = $12, updated_at = NOW()
	          WHERE id = $13`
	res, err := db.Exec(query,
		string(cheque.PayeeType), cheque.PayeeID, cheque.TenantID, cheque.ManualPayeeName, cheque.BankID,
		cheque.ChequeNumber, cheque.Amount, cheque.ChequeDate, cheque.DueDate, string(cheque.Status),
		cheque.ImagePath, cheque.Notes, cheque.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cheque: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("cheque %s not found", cheque.ID)
	}
	return nil
}

// DeleteCheque removes a cheque and its settlement transactions.
func DeleteCheque(db *sql.DB, chequeID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM cheque_transactions WHERE cheque_id = $1`, chequeID); err != nil {
		return fmt.Errorf("failed to delete cheque transactions: %v", err)
	}
	res, err := tx.Exec(`DELETE FROM cheques WHERE id = $1`, chequeID)
	if err != nil {
		return fmt.Errorf("failed to delete cheque: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("cheque %s not found", chequeID)
	}
	return tx.Commit()
}

// GetChequeWithDetails returns one cheque with resolved payee/bank names and
// the settled total.
func GetChequeWithDetails(db *sql.DB, chequeID string) (*models.ChequeWithDetails, error) {
	return scanChequeDetails(db.QueryRow(chequeDetailsSelect+` WHERE c.id = $1`, chequeID))
}

// GetCheques lists cheques, optionally filtered by creator and/or by an
// employee's assigned-property scope. The scope filter follows the chain
// cheque tenant -> lease -> unit -> employee_properties.
func GetCheques(db *sql.DB, filters ChequeFilters) []*models.ChequeWithDetails {
	query := chequeDetailsSelect
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.CreatedByID != "" {
		conditions = append(conditions, fmt.Sprintf("c.created_by_id = $%d", argIndex))
		args = append(args, filters.CreatedByID)
		argIndex++
	}
	if filters.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf(`c.tenant_id IN (
			SELECT l.tenant_id
			FROM leases l
			JOIN units u ON l.unit_id = u.id
			JOIN employee_properties ep ON u.property_id = ep.property_id
			WHERE ep.employee_id = $%d
		)`, argIndex))
		args = append(args, filters.EmployeeID)
		argIndex++
	}

	if len(conditions) > 0 {
		query += " WHERE " + conditions[0]
		for i := 1; i < len(conditions); i++ {
			query += " AND " + conditions[i]
		}
	}
	query += " ORDER BY c.due_date ASC, c.created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		log.Printf("Failed to fetch cheques: %v", err)
		return []*models.ChequeWithDetails{}
	}
	defer rows.Close()

	cheques := []*models.ChequeWithDetails{}
	for rows.Next() {
		c, err := scanChequeDetails(rows)
		if err != nil {
			log.Printf("Failed to scan cheque row: %v", err)
			continue
		}
		cheques = append(cheques, c)
	}
	return cheques
}

// AddChequeTransaction records one settlement event against a cheque. As
// with payment transactions, the parent row is left alone.
func AddChequeTransaction(db *sql.DB, txn *models.ChequeTransaction) error {
	query := `INSERT INTO cheque_transactions (cheque_id, amount_paid, payment_date, payment_method, document_path, notes)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		txn.ChequeID, txn.AmountPaid, txn.PaymentDate, txn.PaymentMethod, txn.DocumentPath, txn.Notes,
	).Scan(&txn.ID, &txn.CreatedAt, &txn.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert cheque transaction: %v", err)
	}
	return nil
}

// UpdateChequeTransaction edits a settlement event.
func UpdateChequeTransaction(db *sql.DB, txn *models.ChequeTransaction) error {
	query := `UPDATE cheque_transactions
	          SET amount_paid = $1, payment_date = $2, payment_method = $3, document_path = $4, notes = $5, updated_at = NOW()
	          WHERE id = $6`
	res, err := db.Exec(query,
		txn.AmountPaid, txn.PaymentDate, txn.PaymentMethod, txn.DocumentPath, txn.Notes, txn.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cheque transaction: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("cheque transaction %s not found", txn.ID)
	}
	return nil
}

// DeleteChequeTransaction removes a settlement event.
func DeleteChequeTransaction(db *sql.DB, txnID string) error {
	res, err := db.Exec(`DELETE FROM cheque_transactions WHERE id = $1`, txnID)
	if err != nil {
		return fmt.Errorf("failed to delete cheque transaction: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("cheque transaction %s not found", txnID)
	}
	return nil
}

// GetChequeTransactions returns a cheque's settlement events oldest first.
func GetChequeTransactions(db *sql.DB, chequeID string) []*models.ChequeTransaction {
	query := `SELECT id, cheque_id, amount_paid, payment_date, payment_method,
	                 document_path, notes, created_at, updated_at
	          FROM cheque_transactions
	          WHERE cheque_id = $1
	          ORDER BY payment_date ASC, created_at ASC`
	rows, err := db.Query(query, chequeID)
	if err != nil {
		log.Printf("Failed to fetch cheque transactions: %v", err)
		return []*models.ChequeTransaction{}
	}
	defer rows.Close()

	txns := []*models.ChequeTransaction{}
	for rows.Next() {
		t := &models.ChequeTransaction{}
		err := rows.Scan(
			&t.ID, &t.ChequeID, &t.AmountPaid, &t.PaymentDate, &t.PaymentMethod,
			&t.DocumentPath, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			log.Printf("Failed to scan cheque transaction: %v", err)
			continue
		}
		txns = append(txns, t)
	}
	return txns
}
