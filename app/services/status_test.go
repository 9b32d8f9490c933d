package services

import (
	"testing"
	"time"

	"rakeen-properties/app/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func cheque(status models.ChequeStatus, amount string, dueDate time.Time) *models.ChequeWithDetails {
	return &models.ChequeWithDetails{
		Cheque: models.Cheque{
			Status:  status,
			Amount:  decimal.RequireFromString(amount),
			DueDate: dueDate,
		},
	}
}

func TestChequeDisplayStatusOverdue(t *testing.T) {
	past := now.AddDate(0, 0, -3)
	future := now.AddDate(0, 0, 3)

	c := &models.Cheque{Status: models.ChequePending, DueDate: past}
	assert.Equal(t, "Overdue", ChequeDisplayStatus(c, now))

	// Only Pending cheques read as Overdue; the stored status wins otherwise.
	c = &models.Cheque{Status: models.ChequeCleared, DueDate: past}
	assert.Equal(t, "Cleared", ChequeDisplayStatus(c, now))

	c = &models.Cheque{Status: models.ChequePending, DueDate: future}
	assert.Equal(t, "Pending", ChequeDisplayStatus(c, now))

	// Due today is not overdue yet.
	c = &models.Cheque{Status: models.ChequePending, DueDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Pending", ChequeDisplayStatus(c, now))
}

func TestPaymentDisplayStatusOverdue(t *testing.T) {
	p := &models.LeasePayment{Status: models.PaymentPending, DueDate: now.AddDate(0, 0, -1)}
	assert.Equal(t, "Overdue", PaymentDisplayStatus(p, now))

	p = &models.LeasePayment{Status: models.PaymentPaid, DueDate: now.AddDate(0, 0, -1)}
	assert.Equal(t, "Paid", PaymentDisplayStatus(p, now))
}

func TestLeaseDisplayStatusExpired(t *testing.T) {
	l := &models.Lease{Status: models.LeaseActive, EndDate: now.AddDate(0, -1, 0)}
	assert.Equal(t, "Expired", LeaseDisplayStatus(l, now))

	l = &models.Lease{Status: models.LeaseCompleted, EndDate: now.AddDate(0, -1, 0)}
	assert.Equal(t, "Completed", LeaseDisplayStatus(l, now))

	l = &models.Lease{Status: models.LeaseActive, EndDate: now.AddDate(0, 1, 0)}
	assert.Equal(t, "Active", LeaseDisplayStatus(l, now))
}

func TestBalancePartialPayments(t *testing.T) {
	// A 6000 installment with transactions of 2500 and 1500 leaves 2000 due.
	amount := decimal.RequireFromString("6000")
	paid := decimal.RequireFromString("2500").Add(decimal.RequireFromString("1500"))
	assert.True(t, Balance(amount, paid).Equal(decimal.RequireFromString("2000")))

	// Overpayment goes negative rather than being rejected.
	overpaid := decimal.RequireFromString("6500")
	assert.True(t, Balance(amount, overpaid).IsNegative())
}

func TestComputeChequeDashboard(t *testing.T) {
	cheques := []*models.ChequeWithDetails{
		cheque(models.ChequePending, "1000", now.AddDate(0, 0, -10)),  // overdue
		cheque(models.ChequePending, "2000", now.AddDate(0, 0, -1)),   // overdue
		cheque(models.ChequePending, "500", now.AddDate(0, 0, 10)),    // due soon
		cheque(models.ChequePending, "700", now.AddDate(0, 0, 45)),    // neither
		cheque(models.ChequeBounced, "3000", now.AddDate(0, 0, -20)),  // bounced, uncleared
		cheque(models.ChequeCleared, "4000", now.AddDate(0, 0, -15)),  // cleared within window
		cheque(models.ChequeCleared, "9000", now.AddDate(0, 0, -60)),  // cleared outside window
		cheque(models.ChequeCancelled, "100", now.AddDate(0, 0, -5)),  // uncleared, not pending
	}

	d := ComputeChequeDashboard(cheques, now)

	assert.Equal(t, 2, d.OverdueCount)
	assert.True(t, d.OverdueAmount.Equal(decimal.RequireFromString("3000")))
	assert.Equal(t, 1, d.DueSoonCount)
	assert.True(t, d.BouncedValue.Equal(decimal.RequireFromString("3000")))
	// Everything except the two cleared cheques counts as uncleared.
	assert.True(t, d.UnclearedValue.Equal(decimal.RequireFromString("7300")))
	assert.True(t, d.ClearedLast30.Equal(decimal.RequireFromString("4000")))
}

func TestOverdueChequeLeavesSetWhenCleared(t *testing.T) {
	c := cheque(models.ChequePending, "1000", now.AddDate(0, 0, -10))
	d := ComputeChequeDashboard([]*models.ChequeWithDetails{c}, now)
	require.Equal(t, 1, d.OverdueCount)

	c.Status = models.ChequeCleared
	d = ComputeChequeDashboard([]*models.ChequeWithDetails{c}, now)
	assert.Equal(t, 0, d.OverdueCount)
	assert.True(t, d.OverdueAmount.IsZero())
}

func TestEmptyDashboardIsZeroValued(t *testing.T) {
	d := ComputeChequeDashboard(nil, now)
	assert.True(t, d.UnclearedValue.IsZero())
	assert.True(t, d.BouncedValue.IsZero())
	assert.Equal(t, 0, d.OverdueCount)
	assert.Equal(t, 0, d.DueSoonCount)
}
