package expenses

import (
	"rakeen-properties/app/models"
	"rakeen-properties/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupExpenseRoutes(app *fiber.App) {
	// Web Routes
	web := app.Group("/expenses")
	web.Use(auth.AuthMiddleware)
	web.Get("/", ExpensesPageHandler)

	// API Routes
	api := app.Group("/api/expenses")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetExpensesAPI)
	api.Post("/", CreateExpenseAPI)
	api.Put("/:id", UpdateExpenseAPI)
	api.Delete("/:id", auth.RequireRole(models.RoleManager), DeleteExpenseAPI)

	categories := app.Group("/api/expense-categories")
	categories.Use(auth.AuthMiddleware)
	categories.Get("/", GetCategoriesAPI)
}
