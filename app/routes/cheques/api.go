package cheques

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

// chequeView wraps a cheque with its derived fields. display_status is
// recomputed on every request; the stored status is never rewritten.
type chequeView struct {
	*models.ChequeWithDetails
	Balance       decimal.Decimal `json:"balance"`
	DisplayStatus string          `json:"display_status"`
}

func viewCheques(cheques []*models.ChequeWithDetails, now time.Time) []chequeView {
	views := make([]chequeView, 0, len(cheques))
	for _, c := range cheques {
		views = append(views, chequeView{
			ChequeWithDetails: c,
			Balance:           c.Balance(),
			DisplayStatus:     services.ChequeDisplayStatus(&c.Cheque, now),
		})
	}
	return views
}

func currentFilters(c *fiber.Ctx) database.ChequeFilters {
	filters := database.ChequeFilters{CreatedByID: c.Query("created_by")}
	// Staff only see cheques within their assigned-property scope.
	employee := auth.CurrentEmployee(c)
	if employee != nil && employee.Role == models.RoleStaff {
		filters.EmployeeID = employee.ID
	}
	return filters
}

// GetChequesAPI lists cheques, optionally filtered by creator, scoped to the
// caller's properties for staff.
func GetChequesAPI(c *fiber.Ctx) error {
	cheques := database.GetCheques(config.GetDB(), currentFilters(c))
	return c.JSON(fiber.Map{"success": true, "cheques": viewCheques(cheques, time.Now())})
}

// GetChequeDashboardAPI returns the aggregate cards for the cheque list.
func GetChequeDashboardAPI(c *fiber.Ctx) error {
	cheques := database.GetCheques(config.GetDB(), currentFilters(c))
	dashboard := services.ComputeChequeDashboard(cheques, time.Now())
	return c.JSON(fiber.Map{"success": true, "dashboard": dashboard})
}

func GetChequeAPI(c *fiber.Ctx) error {
	cheque, err := database.GetChequeWithDetails(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Cheque not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch cheque")
	}
	views := viewCheques([]*models.ChequeWithDetails{cheque}, time.Now())
	return c.JSON(fiber.Map{"success": true, "cheque": views[0]})
}

type chequeRequest struct {
	PayeeType       string  `json:"payee_type"`
	PayeeID         *string `json:"payee_id,omitempty"`
	TenantID        *string `json:"tenant_id,omitempty"`
	ManualPayeeName *string `json:"manual_payee_name,omitempty"`
	BankID          *string `json:"bank_id,omitempty"`
	ChequeNumber    string  `json:"cheque_number"`
	Amount          string  `json:"amount"`
	ChequeDate      string  `json:"cheque_date"`
	DueDate         string  `json:"due_date"`
	Status          string  `json:"status"`
	ImagePath       *string `json:"image_path,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func (req *chequeRequest) payee() (models.Payee, error) {
	switch models.PayeeType(req.PayeeType) {
	case models.PayeeSaved:
		if req.PayeeID == nil {
			return nil, fmt.Errorf("payee_id is required for a saved payee")
		}
		return models.SavedPayee{PayeeID: *req.PayeeID}, nil
	case models.PayeeTenant:
		if req.TenantID == nil {
			return nil, fmt.Errorf("tenant_id is required for a tenant payee")
		}
		return models.TenantPayee{TenantID: *req.TenantID}, nil
	case models.PayeeManual:
		if req.ManualPayeeName == nil {
			return nil, fmt.Errorf("manual_payee_name is required for a manual payee")
		}
		return models.ManualPayee{Name: *req.ManualPayeeName}, nil
	default:
		return nil, fmt.Errorf("unknown payee type %q", req.PayeeType)
	}
}

func (req *chequeRequest) apply(cheque *models.Cheque) error {
	payee, err := req.payee()
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount")
	}
	chequeDate, err := time.Parse("2006-01-02", req.ChequeDate)
	if err != nil {
		return fmt.Errorf("invalid cheque date")
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return fmt.Errorf("invalid due date")
	}

	cheque.SetPayee(payee)
	cheque.BankID = req.BankID
	cheque.ChequeNumber = req.ChequeNumber
	cheque.Amount = amount
	cheque.ChequeDate = chequeDate
	cheque.DueDate = dueDate
	cheque.Status = models.ChequePending
	if req.Status != "" {
		cheque.Status = models.ChequeStatus(req.Status)
	}
	cheque.ImagePath = req.ImagePath
	cheque.Notes = req.Notes
	return nil
}

func CreateChequeAPI(c *fiber.Ctx) error {
	var req chequeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	cheque := &models.Cheque{CreatedByID: auth.EmployeeIDRef(c)}
	if err := req.apply(cheque); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if err := database.AddCheque(config.GetDB(), cheque); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	database.LogActivity(config.GetDB(), auth.EmployeeIDRef(c), "create", "cheque", &cheque.ID,
		fmt.Sprintf("Cheque %s for %s", cheque.ChequeNumber, cheque.Amount.StringFixed(2)))
	return c.JSON(fiber.Map{"success": true, "message": "Cheque created", "cheque": cheque})
}

func UpdateChequeAPI(c *fiber.Ctx) error {
	var req chequeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	cheque := &models.Cheque{ID: c.Params("id")}
	if err := req.apply(cheque); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if err := database.UpdateCheque(config.GetDB(), cheque); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Cheque updated"})
}

func DeleteChequeAPI(c *fiber.Ctx) error {
	chequeID := c.Params("id")
	if err := database.DeleteCheque(config.GetDB(), chequeID); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	database.LogActivity(config.GetDB(), auth.EmployeeIDRef(c), "delete", "cheque", &chequeID, "Cheque deleted")
	return c.JSON(fiber.Map{"success": true, "message": "Cheque deleted"})
}

func GetChequeTransactionsAPI(c *fiber.Ctx) error {
	txns := database.GetChequeTransactions(config.GetDB(), c.Params("id"))
	return c.JSON(fiber.Map{"success": true, "transactions": txns})
}

type chequeTxnRequest struct {
	AmountPaid    string  `json:"amount_paid"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	DocumentPath  *string `json:"document_path,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

func (req *chequeTxnRequest) apply(txn *models.ChequeTransaction) error {
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

func AddChequeTransactionAPI(c *fiber.Ctx) error {
	var req chequeTxnRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	txn := &models.ChequeTransaction{ChequeID: c.Params("id")}
	if err := req.apply(txn); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if err := database.AddChequeTransaction(config.GetDB(), txn); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	database.LogActivity(config.GetDB(), auth.EmployeeIDRef(c), "create", "cheque_transaction", &txn.ID,
		fmt.Sprintf("Settlement of %s", txn.AmountPaid.StringFixed(2)))
	return c.JSON(fiber.Map{"success": true, "message": "Settlement recorded", "transaction": txn})
}

func UpdateChequeTransactionAPI(c *fiber.Ctx) error {
	var req chequeTxnRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	txn := &models.ChequeTransaction{ID: c.Params("id")}
	if err := req.apply(txn); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if err := database.UpdateChequeTransaction(config.GetDB(), txn); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Settlement updated"})
}

func DeleteChequeTransactionAPI(c *fiber.Ctx) error {
	if err := database.DeleteChequeTransaction(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Settlement deleted"})
}

func ChequesPageHandler(c *fiber.Ctx) error {
	cheques := database.GetCheques(config.GetDB(), currentFilters(c))
	now := time.Now()
	return c.Render("cheques/index", fiber.Map{
		"Title":       "Cheques - Rakeen Properties",
		"CurrentPage": "cheques",
		"Cheques":     viewCheques(cheques, now),
		"Dashboard":   services.ComputeChequeDashboard(cheques, now),
		"Employee":    auth.CurrentEmployee(c),
	}, "")
}
