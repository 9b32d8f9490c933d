package services

import (
	"fmt"
	"time"

	"rakeen-properties/app/models"

	"github.com/shopspring/decimal"
)

// GenerateSchedule splits a lease's total amount into n equally spaced
// installments starting at the lease start date. Amounts are rounded to
// fils; the rounding remainder lands on the first installment so the
// schedule always sums exactly to the lease total.
func GenerateSchedule(lease *models.Lease, installments int) ([]*models.LeasePayment, error) {
	if installments < 1 {
		return nil, fmt.Errorf("installment count must be at least 1, got %d", installments)
	}
	if lease.EndDate.Before(lease.StartDate) {
		return nil, fmt.Errorf("lease end date %s is before start date %s",
			lease.EndDate.Format("2006-01-02"), lease.StartDate.Format("2006-01-02"))
	}

	n := decimal.NewFromInt(int64(installments))
	base := lease.TotalAmount.Div(n).Round(2)
	first := lease.TotalAmount.Sub(base.Mul(n.Sub(decimal.NewFromInt(1))))

	monthsBetween := monthSpan(lease.StartDate, lease.EndDate)
	step := monthsBetween / installments
	if step < 1 {
		step = 1
	}

	payments := make([]*models.LeasePayment, 0, installments)
	for i := 0; i < installments; i++ {
		amount := base
		if i == 0 {
			amount = first
		}
		payments = append(payments, &models.LeasePayment{
			LeaseID: lease.ID,
			DueDate: lease.StartDate.AddDate(0, i*step, 0),
			Amount:  amount,
			Status:  models.PaymentPending,
		})
	}
	return payments, nil
}

func monthSpan(start, end time.Time) int {
	months := int(end.Month()) - int(start.Month()) + 12*(end.Year()-start.Year())
	if months < 1 {
		return 1
	}
	return months
}
