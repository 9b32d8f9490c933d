package payees

import (
	"rakeen-properties/app/models"
	"rakeen-properties/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupPayeeRoutes(app *fiber.App) {
	api := app.Group("/api/payees")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetPayeesAPI)
	api.Post("/", CreatePayeeAPI)
	api.Put("/:id", UpdatePayeeAPI)
	api.Delete("/:id", auth.RequireRole(models.RoleManager), DeletePayeeAPI)

	banks := app.Group("/api/banks")
	banks.Use(auth.AuthMiddleware)
	banks.Get("/", GetBanksAPI)
	banks.Post("/", auth.RequireRole(models.RoleManager), CreateBankAPI)
}
