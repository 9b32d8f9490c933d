package expenses

import (
	"fmt"
	"time"

	"rakeen-properties/app/config"
	"rakeen-properties/app/database"
	"rakeen-properties/app/models"
	"rakeen-properties/app/routes/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type expenseRequest struct {
	Category   string  `json:"category"`
	PropertyID *string `json:"property_id,omitempty"`
	Title      string  `json:"title"`
	Amount     string  `json:"amount"`
	Date       string  `json:"date"`
	Notes      *string `json:"notes,omitempty"`
}

func (req *expenseRequest) apply(expense *models.Expense) error {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return fmt.Errorf("invalid date")
	}
	categoryID, err := database.GetOrCreateExpenseCategory(config.GetDB(), req.Category)
	if err != nil {
		return err
	}
	expense.CategoryID = categoryID
	expense.PropertyID = req.PropertyID
	expense.Title = req.Title
	expense.Amount = amount
	expense.Date = date
	expense.Notes = req.Notes
	return nil
}

func GetExpensesAPI(c *fiber.Ctx) error {
	expenses := database.GetExpenses(config.GetDB(), c.Query("property_id"))
	return c.JSON(fiber.Map{"success": true, "expenses": expenses})
}

func CreateExpenseAPI(c *fiber.Ctx) error {
	var req expenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}
	expense := &models.Expense{}
	if err := req.apply(expense); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if err := database.CreateExpense(config.GetDB(), expense); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	database.LogActivity(config.GetDB(), auth.EmployeeIDRef(c), "create", "expense", &expense.ID, expense.Title)
	return c.JSON(fiber.Map{"success": true, "message": "Expense created", "expense": expense})
}

func UpdateExpenseAPI(c *fiber.Ctx) error {
	var req expenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}
	expense := &models.Expense{ID: c.Params("id")}
	if err := req.apply(expense); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if err := database.UpdateExpense(config.GetDB(), expense); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Expense updated"})
}

func DeleteExpenseAPI(c *fiber.Ctx) error {
	if err := database.DeleteExpense(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Expense deleted"})
}

func GetCategoriesAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "categories": database.GetExpenseCategories(config.GetDB())})
}

func ExpensesPageHandler(c *fiber.Ctx) error {
	return c.Render("expenses/index", fiber.Map{
		"Title":       "Expenses - Rakeen Properties",
		"CurrentPage": "expenses",
		"Expenses":    database.GetExpenses(config.GetDB(), ""),
		"Categories":  database.GetExpenseCategories(config.GetDB()),
		"Employee":    auth.CurrentEmployee(c),
	}, "")
}
