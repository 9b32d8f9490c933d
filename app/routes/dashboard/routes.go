package dashboard

import (
	"rakeen-properties/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	web := app.Group("/dashboard")
	web.Use(auth.AuthMiddleware)
	web.Get("/", DashboardPageHandler)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetDashboardAPI)
}
