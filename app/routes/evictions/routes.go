package evictions

import (
	"rakeen-properties/app/models"
	"rakeen-properties/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupEvictionRoutes(app *fiber.App) {
	api := app.Group("/api/evictions")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetEvictionRequestsAPI)
	api.Post("/", CreateEvictionRequestAPI)
	api.Post("/:id/review", auth.RequireRole(models.RoleManager), ReviewEvictionRequestAPI)
}
