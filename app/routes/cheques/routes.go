package cheques

import (
	"rakeen-properties/app/models"
	"rakeen-properties/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupChequeRoutes(app *fiber.App) {
	// Web Routes
	web := app.Group("/cheques")
	web.Use(auth.AuthMiddleware)
	web.Get("/", ChequesPageHandler)

	// API Routes
	api := app.Group("/api/cheques")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetChequesAPI)
	api.Get("/dashboard", GetChequeDashboardAPI)
	api.Get("/:id", GetChequeAPI)
	api.Post("/", CreateChequeAPI)
	api.Put("/:id", UpdateChequeAPI)
	api.Delete("/:id", auth.RequireRole(models.RoleManager), DeleteChequeAPI)
	api.Get("/:id/transactions", GetChequeTransactionsAPI)
	api.Post("/:id/transactions", AddChequeTransactionAPI)

	transactions := app.Group("/api/cheque-transactions")
	transactions.Use(auth.AuthMiddleware)
	transactions.Put("/:id", UpdateChequeTransactionAPI)
	transactions.Delete("/:id", auth.RequireRole(models.RoleManager), DeleteChequeTransactionAPI)
}
