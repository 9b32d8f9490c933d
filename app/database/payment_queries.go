package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"rakeen-properties/app/models"

	"github.com/lib/pq"
)

// AddLeasePayment inserts one scheduled installment. No balance validation
// happens here; the schedule is whatever the caller says it is.
func AddLeasePayment(db *sql.DB, payment *models.LeasePayment) error {
	query := `INSERT INTO lease_payments (lease_id, due_date, amount, status, cheque_number, cheque_bank)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		payment.LeaseID,
		payment.DueDate,
		payment.Amount,
		string(payment.Status),
		payment.ChequeNumber,
		payment.ChequeBank,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert lease payment: %v", err)
	}
	return nil
}

// UpdateLeasePayment edits a scheduled installment.
func UpdateLeasePayment(db *sql.DB, payment *models.LeasePayment) error {
	query := `UPDATE lease_payments
	          SET due_date = $1, amount = $2, status = $3, cheque_number = $4, cheque_bank = $5, updated_at = NOW()
	          WHERE id = $6`
	res, err := db.Exec(query,
		payment.DueDate, payment.Amount, string(payment.Status),
		payment.ChequeNumber, payment.ChequeBank, payment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lease payment: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("lease payment %s not found", payment.ID)
	}
	return nil
}

// DeleteLeasePayment removes an installment and its transactions. Orphaned
// transactions are deleted explicitly since the schema does not cascade.
func DeleteLeasePayment(db *sql.DB, paymentID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM payment_transactions WHERE lease_payment_id = $1`, paymentID); err != nil {
		return fmt.Errorf("failed to delete payment transactions: %v", err)
	}
	res, err := tx.Exec(`DELETE FROM lease_payments WHERE id = $1`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete lease payment: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("lease payment %s not found", paymentID)
	}
	return tx.Commit()
}

// AddPaymentTransaction records one payment event against an installment.
// The parent row is not touched; callers re-fetch to see the new aggregate.
// Nothing rejects a transaction that pushes the paid sum above the scheduled
// amount: overpayment is permitted.
func AddPaymentTransaction(db *sql.DB, txn *models.PaymentTransaction) error {
	query := `INSERT INTO payment_transactions (lease_payment_id, amount_paid, payment_date, payment_method, document_path, notes)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		txn.LeasePaymentID,
		txn.AmountPaid,
		txn.PaymentDate,
		txn.PaymentMethod,
		txn.DocumentPath,
		txn.Notes,
	).Scan(&txn.ID, &txn.CreatedAt, &txn.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert payment transaction: %v", err)
	}
	return nil
}

// UpdatePaymentTransaction edits a recorded payment event.
func UpdatePaymentTransaction(db *sql.DB, txn *models.PaymentTransaction) error {
	query := `UPDATE payment_transactions
	          SET amount_paid = $1, payment_date = $2, payment_method = $3, document_path = $4, notes = $5, updated_at = NOW()
	          WHERE id = $6`
	res, err := db.Exec(query,
		txn.AmountPaid, txn.PaymentDate, txn.PaymentMethod, txn.DocumentPath, txn.Notes, txn.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment transaction: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("payment transaction %s not found", txn.ID)
	}
	return nil
}

// DeletePaymentTransaction removes a recorded payment event.
func DeletePaymentTransaction(db *sql.DB, txnID string) error {
	res, err := db.Exec(`DELETE FROM payment_transactions WHERE id = $1`, txnID)
	if err != nil {
		return fmt.Errorf("failed to delete payment transaction: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("payment transaction %s not found", txnID)
	}
	return nil
}

// GetLeasePayments returns a lease's installments ordered by due date, each
// carrying its transactions and summed paid total. Transactions for all
// installments are fetched in one batched query and distributed onto their
// parents in memory, avoiding a per-payment round trip.
func GetLeasePayments(db *sql.DB, leaseID string) ([]*models.LeasePayment, error) {
	query := `SELECT id, lease_id, due_date, amount, status, cheque_number, cheque_bank,
	                 extension_status, requested_due_date, extension_reason, manager_notes,
	                 created_at, updated_at
	          FROM lease_payments
	          WHERE lease_id = $1
	          ORDER BY due_date ASC`
	rows, err := db.Query(query, leaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lease payments: %v", err)
	}
	defer rows.Close()

	payments := []*models.LeasePayment{}
	byID := map[string]*models.LeasePayment{}
	ids := []string{}
	for rows.Next() {
		p := &models.LeasePayment{}
		var status string
		var extStatus *string
		err := rows.Scan(
			&p.ID, &p.LeaseID, &p.DueDate, &p.Amount, &status, &p.ChequeNumber, &p.ChequeBank,
			&extStatus, &p.RequestedDueDate, &p.ExtensionReason, &p.ManagerNotes,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lease payment: %v", err)
		}
		p.Status = models.PaymentStatus(status)
		if extStatus != nil {
			es := models.ExtensionStatus(*extStatus)
			p.ExtensionStatus = &es
		}
		p.Transactions = []*models.PaymentTransaction{}
		payments = append(payments, p)
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}
	if len(ids) == 0 {
		return payments, nil
	}

	txQuery := `SELECT id, lease_payment_id, amount_paid, payment_date, payment_method,
	                   document_path, notes, created_at, updated_at
	            FROM payment_transactions
	            WHERE lease_payment_id = ANY($1)
	            ORDER BY payment_date ASC, created_at ASC`
	txRows, err := db.Query(txQuery, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment transactions: %v", err)
	}
	defer txRows.Close()

	for txRows.Next() {
		t := &models.PaymentTransaction{}
		err := txRows.Scan(
			&t.ID, &t.LeasePaymentID, &t.AmountPaid, &t.PaymentDate, &t.PaymentMethod,
			&t.DocumentPath, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment transaction: %v", err)
		}
		parent, ok := byID[t.LeasePaymentID]
		if !ok {
			log.Printf("Transaction %s references unknown payment %s", t.ID, t.LeasePaymentID)
			continue
		}
		parent.Transactions = append(parent.Transactions, t)
		parent.TotalPaidAmount = parent.TotalPaidAmount.Add(t.AmountPaid)
	}
	return payments, nil
}

// RequestPaymentExtension stores a tenant's request to move an installment's
// due date. A new request always resets the flow to Pending, even over a
// prior Approved/Rejected resolution.
func RequestPaymentExtension(db *sql.DB, paymentID string, requestedDueDate time.Time, reason string) error {
	query := `UPDATE lease_payments
	          SET extension_status = 'Pending', requested_due_date = $1, extension_reason = $2,
	              manager_notes = NULL, updated_at = NOW()
	          WHERE id = $3`
	res, err := db.Exec(query, requestedDueDate, reason, paymentID)
	if err != nil {
		return fmt.Errorf("failed to request extension: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("lease payment %s not found", paymentID)
	}
	return nil
}

// ReviewPaymentExtension resolves a pending extension. Approval copies the
// requested date into due_date; rejection leaves due_date untouched.
func ReviewPaymentExtension(db *sql.DB, paymentID string, approved bool, managerNotes string) error {
	var query string
	if approved {
		query = `UPDATE lease_payments
		         SET extension_status = 'Approved', due_date = requested_due_date,
		             manager_notes = $1, updated_at = NOW()
		         WHERE id = $2 AND extension_status = 'Pending' AND requested_due_date IS NOT NULL`
	} else {
		query = `UPDATE lease_payments
		         SET extension_status = 'Rejected', manager_notes = $1, updated_at = NOW()
		         WHERE id = $2 AND extension_status = 'Pending'`
	}
	res, err := db.Exec(query, managerNotes, paymentID)
	if err != nil {
		return fmt.Errorf("failed to review extension: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no pending extension on payment %s", paymentID)
	}
	return nil
}
