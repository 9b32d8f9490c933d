package services

import (
	"testing"
	"time"

	"rakeen-properties/app/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yearLease(total string) *models.Lease {
	return &models.Lease{
		ID:          "lease-1",
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.RequireFromString(total),
	}
}

func TestGenerateScheduleSumsToLeaseTotal(t *testing.T) {
	lease := yearLease("10000")
	payments, err := GenerateSchedule(lease, 3)
	require.NoError(t, err)
	require.Len(t, payments, 3)

	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
		assert.Equal(t, "lease-1", p.LeaseID)
		assert.Equal(t, models.PaymentPending, p.Status)
	}
	// 10000/3 rounds to 3333.33; the remainder lands on the first installment.
	assert.True(t, sum.Equal(lease.TotalAmount))
	assert.True(t, payments[0].Amount.Equal(decimal.RequireFromString("3333.34")))
	assert.True(t, payments[1].Amount.Equal(decimal.RequireFromString("3333.33")))
}

func TestGenerateScheduleDueDates(t *testing.T) {
	lease := yearLease("12000")
	payments, err := GenerateSchedule(lease, 4)
	require.NoError(t, err)

	// 11 months over 4 installments spaces them 2 months apart from the start.
	assert.Equal(t, lease.StartDate, payments[0].DueDate)
	assert.Equal(t, lease.StartDate.AddDate(0, 2, 0), payments[1].DueDate)
	assert.Equal(t, lease.StartDate.AddDate(0, 4, 0), payments[2].DueDate)
}

func TestGenerateScheduleSingleInstallment(t *testing.T) {
	lease := yearLease("45000")
	payments, err := GenerateSchedule(lease, 1)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.True(t, payments[0].Amount.Equal(lease.TotalAmount))
	assert.Equal(t, lease.StartDate, payments[0].DueDate)
}

func TestGenerateScheduleRejectsBadInput(t *testing.T) {
	lease := yearLease("10000")
	_, err := GenerateSchedule(lease, 0)
	assert.Error(t, err)

	lease.EndDate = lease.StartDate.AddDate(-1, 0, 0)
	_, err = GenerateSchedule(lease, 2)
	assert.Error(t, err)
}
