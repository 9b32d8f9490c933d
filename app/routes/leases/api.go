package leases

import (
	"database/sql"
	"fmt"
	"time"

	"rakeen-properties/app/config"
	"rakeen-properties/app/database"
	"rakeen-properties/app/models"
	"rakeen-properties/app/routes/auth"
	"rakeen-properties/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// GetLeasesAPI returns all leases with their denormalized details, ended
// leases first.
func GetLeasesAPI(c *fiber.Ctx) error {
	leases := database.GetLeasesWithDetails(config.GetDB())
	return c.JSON(fiber.Map{"success": true, "leases": leases})
}

func GetLeaseAPI(c *fiber.Ctx) error {
	lease, err := database.GetLeaseWithDetails(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Lease not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch lease")
	}
	return c.JSON(fiber.Map{"success": true, "lease": lease})
}

type assignRequest struct {
	UnitID       string  `json:"unit_id"`
	TenantID     string  `json:"tenant_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalAmount  string  `json:"total_amount"`
	BusinessName *string `json:"business_name,omitempty"`
	TradeLicense *string `json:"trade_license,omitempty"`
	Installments int     `json:"installments"`
}

// AssignTenantAPI creates an active lease on a unit, optionally generating
// its payment schedule in the same request.
func AssignTenantAPI(c *fiber.Ctx) error {
	var req assignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid start date"})
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid end date"})
	}
	amount, err := decimal.NewFromString(req.TotalAmount)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid total amount"})
	}

	lease := &models.Lease{
		StartDate:    startDate,
		EndDate:      endDate,
		TotalAmount:  amount,
		BusinessName: req.BusinessName,
		TradeLicense: req.TradeLicense,
	}
	if err := database.AssignTenantToUnit(config.GetDB(), req.UnitID, req.TenantID, lease); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if req.Installments > 0 {
		payments, err := services.GenerateSchedule(lease, req.Installments)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		for _, p := range payments {
			if err := database.AddLeasePayment(config.GetDB(), p); err != nil {
				return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
			}
		}
	}

	database.LogActivity(config.GetDB(), auth.EmployeeIDRef(c), "assign", "lease", &lease.ID,
		fmt.Sprintf("Assigned tenant %s to unit %s", req.TenantID, req.UnitID))
	return c.JSON(fiber.Map{"success": true, "message": "Tenant assigned", "lease": lease})
}

// RemoveTenantAPI completes a lease and frees its unit.
func RemoveTenantAPI(c *fiber.Ctx) error {
	type removeRequest struct {
		UnitID string `json:"unit_id"`
	}
	var req removeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	leaseID := c.Params("id")
	if err := database.RemoveTenantFromUnit(config.GetDB(), req.UnitID, leaseID); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	database.LogActivity(config.GetDB(), auth.EmployeeIDRef(c), "remove", "lease", &leaseID,
		fmt.Sprintf("Removed tenant from unit %s", req.UnitID))
	return c.JSON(fiber.Map{"success": true, "message": "Tenant removed"})
}

// CancelLeaseAPI cancels an active lease; outstanding dues select the
// 'Cancelled with Dues' terminal status.
func CancelLeaseAPI(c *fiber.Ctx) error {
	leaseID := c.Params("id")

	payments, err := database.GetLeasePayments(config.GetDB(), leaseID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	withDues := false
	for _, p := range payments {
		if p.Status != models.PaymentCancelled && p.Balance().IsPositive() {
			withDues = true
			break
		}
	}

	if err := database.CancelLease(config.GetDB(), leaseID, withDues); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	database.LogActivity(config.GetDB(), auth.EmployeeIDRef(c), "cancel", "lease", &leaseID, "Lease cancelled")
	return c.JSON(fiber.Map{"success": true, "message": "Lease cancelled"})
}

func UpdateLeaseAPI(c *fiber.Ctx) error {
	var req assignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	lease, err := database.GetLeaseWithDetails(config.GetDB(), c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Lease not found")
	}

	if req.StartDate != "" {
		if lease.StartDate, err = time.Parse("2006-01-02", req.StartDate); err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid start date"})
		}
	}
	if req.EndDate != "" {
		if lease.EndDate, err = time.Parse("2006-01-02", req.EndDate); err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid end date"})
		}
	}
	if req.TotalAmount != "" {
		if lease.TotalAmount, err = decimal.NewFromString(req.TotalAmount); err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid total amount"})
		}
	}
	if req.BusinessName != nil {
		lease.BusinessName = req.BusinessName
	}
	if req.TradeLicense != nil {
		lease.TradeLicense = req.TradeLicense
	}

	if err := database.UpdateLease(config.GetDB(), &lease.Lease); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Lease updated"})
}

// GetLeasePaymentsAPI returns the schedule with transactions, paid totals,
// balances and display statuses.
func GetLeasePaymentsAPI(c *fiber.Ctx) error {
	payments, err := database.GetLeasePayments(config.GetDB(), c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	now := time.Now()
	type paymentView struct {
		*models.LeasePayment
		Balance       decimal.Decimal `json:"balance"`
		DisplayStatus string          `json:"display_status"`
	}
	views := make([]paymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, paymentView{
			LeasePayment:  p,
			Balance:       p.Balance(),
			DisplayStatus: services.PaymentDisplayStatus(p, now),
		})
	}
	return c.JSON(fiber.Map{"success": true, "payments": views})
}

type paymentRequest struct {
	DueDate      string  `json:"due_date"`
	Amount       string  `json:"amount"`
	Status       string  `json:"status"`
	ChequeNumber *string `json:"cheque_number,omitempty"`
	ChequeBank   *string `json:"cheque_bank,omitempty"`
}

func parsePaymentRequest(c *fiber.Ctx, payment *models.LeasePayment) error {
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("invalid request")
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return fmt.Errorf("invalid due date")
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount")
	}
	payment.DueDate = dueDate
	payment.Amount = amount
	payment.Status = models.PaymentPending
	if req.Status != "" {
		payment.Status = models.PaymentStatus(req.Status)
	}
	payment.ChequeNumber = req.ChequeNumber
	payment.ChequeBank = req.ChequeBank
	return nil
}

func AddLeasePaymentAPI(c *fiber.Ctx) error {
	payment := &models.LeasePayment{LeaseID: c.Params("id")}
	if err := parsePaymentRequest(c, payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if err := database.AddLeasePayment(config.GetDB(), payment); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Payment added", "payment": payment})
}

// GenerateScheduleAPI creates the installment schedule for an existing lease.
func GenerateScheduleAPI(c *fiber.Ctx) error {
	type generateRequest struct {
		Installments int `json:"installments"`
	}
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	lease, err := database.GetLeaseWithDetails(config.GetDB(), c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Lease not found")
	}

	payments, err := services.GenerateSchedule(&lease.Lease, req.Installments)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	for _, p := range payments {
		if err := database.AddLeasePayment(config.GetDB(), p); err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"success": true, "message": "Schedule generated", "payments": payments})
}

func UpdateLeasePaymentAPI(c *fiber.Ctx) error {
	payment := &models.LeasePayment{ID: c.Params("id")}
	if err := parsePaymentRequest(c, payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if err := database.UpdateLeasePayment(config.GetDB(), payment); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Payment updated"})
}

func DeleteLeasePaymentAPI(c *fiber.Ctx) error {
	if err := database.DeleteLeasePayment(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Payment deleted"})
}

type transactionRequest struct {
	AmountPaid    string  `json:"amount_paid"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	DocumentPath  *string `json:"document_path,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

func parseTransactionRequest(c *fiber.Ctx, txn *models.PaymentTransaction) error {
	var req transactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("invalid request")
	}
	amount, err := decimal.NewFromString(req.AmountPaid)
	if err != nil {
		return fmt.Errorf("invalid amount")
	}
	date, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		return fmt.Errorf("invalid payment date")
	}
	txn.AmountPaid = amount
	txn.PaymentDate = date
	txn.PaymentMethod = req.PaymentMethod
	txn.DocumentPath = req.DocumentPath
	txn.Notes = req.Notes
	return nil
}

func AddPaymentTransactionAPI(c *fiber.Ctx) error {
	txn := &models.PaymentTransaction{LeasePaymentID: c.Params("id")}
	if err := parseTransactionRequest(c, txn); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if err := database.AddPaymentTransaction(config.GetDB(), txn); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	database.LogActivity(config.GetDB(), auth.EmployeeIDRef(c), "create", "payment_transaction", &txn.ID,
		fmt.Sprintf("Recorded payment of %s", txn.AmountPaid.StringFixed(2)))
	return c.JSON(fiber.Map{"success": true, "message": "Transaction recorded", "transaction": txn})
}

func UpdatePaymentTransactionAPI(c *fiber.Ctx) error {
	txn := &models.PaymentTransaction{ID: c.Params("id")}
	if err := parseTransactionRequest(c, txn); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if err := database.UpdatePaymentTransaction(config.GetDB(), txn); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Transaction updated"})
}

func DeletePaymentTransactionAPI(c *fiber.Ctx) error {
	if err := database.DeletePaymentTransaction(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Transaction deleted"})
}

// RequestExtensionAPI files a due-date extension request on a payment.
func RequestExtensionAPI(c *fiber.Ctx) error {
	type extensionRequest struct {
		RequestedDueDate string `json:"requested_due_date"`
		Reason           string `json:"reason"`
	}
	var req extensionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}
	requestedDate, err := time.Parse("2006-01-02", req.RequestedDueDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid requested date"})
	}

	paymentID := c.Params("id")
	if err := database.RequestPaymentExtension(config.GetDB(), paymentID, requestedDate, req.Reason); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Extension requested"})
}

// ReviewExtensionAPI approves or rejects a pending extension.
func ReviewExtensionAPI(c *fiber.Ctx) error {
	type reviewRequest struct {
		Approved     bool   `json:"approved"`
		ManagerNotes string `json:"manager_notes"`
	}
	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	paymentID := c.Params("id")
	if err := database.ReviewPaymentExtension(config.GetDB(), paymentID, req.Approved, req.ManagerNotes); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	verdict := "rejected"
	if req.Approved {
		verdict = "approved"
	}
	database.LogActivity(config.GetDB(), auth.EmployeeIDRef(c), "review", "payment_extension", &paymentID,
		"Extension "+verdict)
	return c.JSON(fiber.Map{"success": true, "message": "Extension " + verdict})
}
