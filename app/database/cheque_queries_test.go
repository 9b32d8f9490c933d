package database

import (
	"regexp"
	"testing"
	"time"

	"rakeen-properties/app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chequeColumns = []string{
	"id", "payee_type", "payee_id", "tenant_id", "manual_payee_name", "bank_id",
	"cheque_number", "amount", "cheque_date", "due_date", "status",
	"image_path", "notes", "created_by_id", "created_at", "updated_at",
	"payee_name", "bank_name", "total_paid_amount",
}

func chequeRow(rows *sqlmock.Rows, id, amount, paid string) *sqlmock.Rows {
	now := time.Now()
	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	name := "Ahmed Trading LLC"
	return rows.AddRow(
		id, "manual", nil, nil, name, nil,
		"100234", amount, date, date.AddDate(0, 1, 0), "Pending",
		nil, nil, nil, now, now,
		name, "", paid,
	)
}

func TestGetChequesAppliesBothFiltersWithAnd(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Creator filter binds $1, employee scope binds $2, joined with AND.
	mock.ExpectQuery(`c\.created_by_id = \$1 AND c\.tenant_id IN \((?s).*ep\.employee_id = \$2`).
		WithArgs("emp-creator", "emp-scope").
		WillReturnRows(chequeRow(sqlmock.NewRows(chequeColumns), "chq-1", "5000.00", "0"))

	cheques := GetCheques(db, ChequeFilters{CreatedByID: "emp-creator", EmployeeID: "emp-scope"})
	require.Len(t, cheques, 1)
	assert.Equal(t, "chq-1", cheques[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetChequesNoFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(chequeColumns)
	chequeRow(rows, "chq-1", "5000.00", "2000.00")
	chequeRow(rows, "chq-2", "3000.00", "3000.00")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM cheques c`)).WillReturnRows(rows)

	cheques := GetCheques(db, ChequeFilters{})
	require.Len(t, cheques, 2)
	assert.True(t, cheques[0].Balance().Equal(decimal.RequireFromString("3000")))
	assert.True(t, cheques[1].Balance().IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetChequesReturnsEmptyOnQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM cheques c`)).
		WillReturnError(assert.AnError)

	cheques := GetCheques(db, ChequeFilters{})
	assert.Empty(t, cheques)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddChequeRejectsInconsistentPayee(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Discriminator says tenant but no tenant id is set; no SQL should run.
	cheque := &models.Cheque{
		PayeeType:    models.PayeeTenant,
		ChequeNumber: "100234",
		Amount:       decimal.RequireFromString("5000"),
	}
	err = AddCheque(db, cheque)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inconsistent payee fields")
}

func TestAddChequeTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	txn := &models.ChequeTransaction{
		ChequeID:      "chq-1",
		AmountPaid:    decimal.RequireFromString("1500"),
		PaymentDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PaymentMethod: "Bank Transfer",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO cheque_transactions`)).
		WithArgs("chq-1", txn.AmountPaid, txn.PaymentDate, "Bank Transfer", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("ctx-1", now, now))

	require.NoError(t, AddChequeTransaction(db, txn))
	assert.Equal(t, "ctx-1", txn.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
