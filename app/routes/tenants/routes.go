package tenants

import (
	"rakeen-properties/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTenantRoutes(app *fiber.App) {
	// Web Routes
	web := app.Group("/tenants")
	web.Use(auth.AuthMiddleware)
	web.Get("/", TenantsPageHandler)

	// API Routes
	api := app.Group("/api/tenants")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTenantsAPI)
	api.Get("/:id", GetTenantAPI)
	api.Post("/", CreateTenantAPI)
	api.Put("/:id", UpdateTenantAPI)
}
