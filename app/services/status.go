package services

import (
	"time"

	"rakeen-properties/app/models"

	"github.com/shopspring/decimal"
)

// Display statuses are derived, never written back: a Pending cheque or
// payment past its due date reads as Overdue for that render only, and the
// stored status column is left alone.
const StatusOverdue = "Overdue"

// ChequeDisplayStatus returns the label to show for a cheque.
func ChequeDisplayStatus(c *models.Cheque, now time.Time) string {
	if c.Status == models.ChequePending && c.DueDate.Before(truncateToDay(now)) {
		return StatusOverdue
	}
	return string(c.Status)
}

// PaymentDisplayStatus returns the label to show for a scheduled payment.
func PaymentDisplayStatus(p *models.LeasePayment, now time.Time) string {
	if p.Status == models.PaymentPending && p.DueDate.Before(truncateToDay(now)) {
		return StatusOverdue
	}
	return string(p.Status)
}

// LeaseDisplayStatus returns the label to show for a lease: an Active lease
// past its end date reads as Expired.
func LeaseDisplayStatus(l *models.Lease, now time.Time) string {
	if l.Status == models.LeaseActive && l.EndDate.Before(truncateToDay(now)) {
		return "Expired"
	}
	return string(l.Status)
}

// Balance returns amount minus paid; negative means overpayment, which is
// shown as credit rather than rejected.
func Balance(amount, totalPaid decimal.Decimal) decimal.Decimal {
	return amount.Sub(totalPaid)
}

// ComputeChequeDashboard derives the dashboard cards from the in-memory
// cheque list in a single pass. Nothing here is stored; the caller recomputes
// on every request.
func ComputeChequeDashboard(cheques []*models.ChequeWithDetails, now time.Time) *models.ChequeDashboard {
	today := truncateToDay(now)
	soonCutoff := today.AddDate(0, 0, 30)
	clearedWindowStart := today.AddDate(0, 0, -30)

	d := &models.ChequeDashboard{
		UnclearedValue: decimal.Zero,
		BouncedValue:   decimal.Zero,
		OverdueAmount:  decimal.Zero,
		ClearedLast30:  decimal.Zero,
	}

	for _, c := range cheques {
		if c.Status != models.ChequeCleared {
			d.UnclearedValue = d.UnclearedValue.Add(c.Amount)
		}
		if c.Status == models.ChequeBounced {
			d.BouncedValue = d.BouncedValue.Add(c.Amount)
		}
		if c.Status == models.ChequePending {
			if c.DueDate.Before(today) {
				d.OverdueCount++
				d.OverdueAmount = d.OverdueAmount.Add(c.Amount)
			} else if !c.DueDate.After(soonCutoff) {
				d.DueSoonCount++
			}
		}
		if c.Status == models.ChequeCleared && !c.DueDate.Before(clearedWindowStart) && !c.DueDate.After(today) {
			d.ClearedLast30 = d.ClearedLast30.Add(c.Amount)
		}
	}
	return d
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
