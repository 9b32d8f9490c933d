package database

import (
	"regexp"
	"testing"
	"time"

	"rakeen-properties/app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paymentColumns = []string{
	"id", "lease_id", "due_date", "amount", "status", "cheque_number", "cheque_bank",
	"extension_status", "requested_due_date", "extension_reason", "manager_notes",
	"created_at", "updated_at",
}

var transactionColumns = []string{
	"id", "lease_payment_id", "amount_paid", "payment_date", "payment_method",
	"document_path", "notes", "created_at", "updated_at",
}

func TestGetLeasePaymentsDistributesBatchedTransactions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	due1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	due2 := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM lease_payments`)).
		WithArgs("lease-1").
		WillReturnRows(sqlmock.NewRows(paymentColumns).
			AddRow("pay-1", "lease-1", due1, "6000.00", "Pending", nil, nil, nil, nil, nil, nil, now, now).
			AddRow("pay-2", "lease-1", due2, "6000.00", "Pending", nil, nil, nil, nil, nil, nil, now, now))

	// One batched query for every installment's transactions.
	mock.ExpectQuery(regexp.QuoteMeta(`FROM payment_transactions`)).
		WithArgs(pq.Array([]string{"pay-1", "pay-2"})).
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow("txn-1", "pay-1", "2500.00", due1, "Cash", nil, nil, now, now).
			AddRow("txn-2", "pay-1", "1500.00", due1.AddDate(0, 0, 7), "Transfer", nil, nil, now, now).
			AddRow("txn-3", "pay-2", "6000.00", due2, "Cheque", nil, nil, now, now))

	payments, err := GetLeasePayments(db, "lease-1")
	require.NoError(t, err)
	require.Len(t, payments, 2)

	// Due-date order, transactions on the right parent, totals summed.
	assert.Equal(t, "pay-1", payments[0].ID)
	require.Len(t, payments[0].Transactions, 2)
	assert.True(t, payments[0].TotalPaidAmount.Equal(decimal.RequireFromString("4000")))
	assert.True(t, payments[0].Balance().Equal(decimal.RequireFromString("2000")))

	require.Len(t, payments[1].Transactions, 1)
	assert.True(t, payments[1].TotalPaidAmount.Equal(decimal.RequireFromString("6000")))
	assert.True(t, payments[1].Balance().IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLeasePaymentsEmptyScheduleSkipsTransactionQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM lease_payments`)).
		WithArgs("lease-1").
		WillReturnRows(sqlmock.NewRows(paymentColumns))

	payments, err := GetLeasePayments(db, "lease-1")
	require.NoError(t, err)
	assert.Empty(t, payments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddPaymentTransactionLeavesParentAlone(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	txn := &models.PaymentTransaction{
		LeasePaymentID: "pay-1",
		AmountPaid:     decimal.RequireFromString("2500"),
		PaymentDate:    time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		PaymentMethod:  "Cash",
	}

	// Exactly one INSERT; no UPDATE of lease_payments follows.
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payment_transactions`)).
		WithArgs("pay-1", txn.AmountPaid, txn.PaymentDate, "Cash", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("txn-1", now, now))

	require.NoError(t, AddPaymentTransaction(db, txn))
	assert.Equal(t, "txn-1", txn.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestPaymentExtensionResetsToPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	requested := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`extension_status = 'Pending'`).
		WithArgs(requested, "need more time", "pay-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, RequestPaymentExtension(db, "pay-1", requested, "need more time"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewPaymentExtensionApprovalCopiesRequestedDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Approval moves due_date to the requested date in the same statement.
	mock.ExpectExec(regexp.QuoteMeta(`due_date = requested_due_date`)).
		WithArgs("ok", "pay-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, ReviewPaymentExtension(db, "pay-1", true, "ok"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewPaymentExtensionRejectionLeavesDueDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`extension_status = 'Rejected'`)).
		WithArgs("no", "pay-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, ReviewPaymentExtension(db, "pay-1", false, "no"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewPaymentExtensionWithoutPendingRequestFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`due_date = requested_due_date`)).
		WithArgs("ok", "pay-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = ReviewPaymentExtension(db, "pay-1", true, "ok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pending extension")
	assert.NoError(t, mock.ExpectationsWereMet())
}
