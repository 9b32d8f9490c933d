package leases

import (
	"rakeen-properties/app/models"
	"rakeen-properties/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupLeaseRoutes(app *fiber.App) {
	// Web Routes
	web := app.Group("/leases")
	web.Use(auth.AuthMiddleware)
	web.Get("/", LeasesPageHandler)
	web.Get("/:id", LeaseDetailPageHandler)

	// API Routes
	api := app.Group("/api/leases")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetLeasesAPI)
	api.Get("/:id", GetLeaseAPI)
	api.Post("/assign", AssignTenantAPI)
	api.Post("/:id/remove", RemoveTenantAPI)
	api.Post("/:id/cancel", auth.RequireRole(models.RoleManager), CancelLeaseAPI)
	api.Put("/:id", UpdateLeaseAPI)

	// Payment schedule
	api.Get("/:id/payments", GetLeasePaymentsAPI)
	api.Post("/:id/payments", AddLeasePaymentAPI)
	api.Post("/:id/payments/generate", GenerateScheduleAPI)

	payments := app.Group("/api/lease-payments")
	payments.Use(auth.AuthMiddleware)
	payments.Put("/:id", UpdateLeasePaymentAPI)
	payments.Delete("/:id", auth.RequireRole(models.RoleManager), DeleteLeasePaymentAPI)
	payments.Post("/:id/transactions", AddPaymentTransactionAPI)
	payments.Post("/:id/extension", RequestExtensionAPI)
	payments.Post("/:id/extension/review", auth.RequireRole(models.RoleManager), ReviewExtensionAPI)

	transactions := app.Group("/api/payment-transactions")
	transactions.Use(auth.AuthMiddleware)
	transactions.Put("/:id", UpdatePaymentTransactionAPI)
	transactions.Delete("/:id", auth.RequireRole(models.RoleManager), DeletePaymentTransactionAPI)
}
