package database

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"rakeen-properties/app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLease() *models.Lease {
	return &models.Lease{
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.RequireFromString("45000"),
	}
}

func TestAssignTenantToUnitCommitsAllThreeSteps(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	lease := newLease()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE units SET status = 'Rented'`)).
		WithArgs("unit-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE leases SET status = 'Completed'`)).
		WithArgs("unit-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO leases`)).
		WithArgs("unit-1", "tenant-1", lease.StartDate, lease.EndDate, lease.TotalAmount, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("lease-1", now, now))
	mock.ExpectCommit()

	err = AssignTenantToUnit(db, "unit-1", "tenant-1", lease)
	require.NoError(t, err)
	assert.Equal(t, "lease-1", lease.ID)
	assert.Equal(t, models.LeaseActive, lease.Status)
	assert.Equal(t, "unit-1", lease.UnitID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignTenantToUnitRollsBackOnInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE units SET status = 'Rented'`)).
		WithArgs("unit-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE leases SET status = 'Completed'`)).
		WithArgs("unit-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO leases`)).
		WillReturnError(fmt.Errorf("duplicate key value violates unique index"))
	mock.ExpectRollback()

	err = AssignTenantToUnit(db, "unit-1", "tenant-1", newLease())
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignTenantToUnitRejectsMissingUnit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE units SET status = 'Rented'`)).
		WithArgs("ghost-unit").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = AssignTenantToUnit(db, "ghost-unit", "tenant-1", newLease())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveTenantFromUnit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE leases SET status = 'Completed'`)).
		WithArgs("lease-1", "unit-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE units SET status = 'Available'`)).
		WithArgs("unit-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, RemoveTenantFromUnit(db, "unit-1", "lease-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveTenantFromUnitUnknownLeaseRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE leases SET status = 'Completed'`)).
		WithArgs("ghost", "unit-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = RemoveTenantFromUnit(db, "unit-1", "ghost")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelLeaseWithDues(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE leases SET status = $1`)).
		WithArgs("Cancelled with Dues", "lease-1").
		WillReturnRows(sqlmock.NewRows([]string{"unit_id"}).AddRow("unit-1"))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE units SET status = 'Available'`)).
		WithArgs("unit-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, CancelLease(db, "lease-1", true))
	assert.NoError(t, mock.ExpectationsWereMet())
}
