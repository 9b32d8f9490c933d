package properties

import (
	"rakeen-properties/app/models"
	"rakeen-properties/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupPropertyRoutes(app *fiber.App) {
	// Web Routes
	web := app.Group("/properties")
	web.Use(auth.AuthMiddleware)
	web.Get("/", PropertiesPageHandler)

	// API Routes
	api := app.Group("/api/properties")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetPropertiesAPI)
	api.Post("/", auth.RequireRole(models.RoleManager), CreatePropertyAPI)
	api.Put("/:id", auth.RequireRole(models.RoleManager), UpdatePropertyAPI)
	api.Delete("/:id", auth.RequireRole(models.RoleManager), DeletePropertyAPI)
	api.Get("/:id/units", GetUnitsAPI)
	api.Post("/:id/units", auth.RequireRole(models.RoleManager), CreateUnitAPI)

	units := app.Group("/api/units")
	units.Use(auth.AuthMiddleware)
	units.Put("/:id", auth.RequireRole(models.RoleManager), UpdateUnitAPI)
	units.Delete("/:id", auth.RequireRole(models.RoleManager), DeleteUnitAPI)

	owners := app.Group("/api/owners")
	owners.Use(auth.AuthMiddleware)
	owners.Get("/", GetOwnersAPI)
	owners.Post("/", auth.RequireRole(models.RoleManager), CreateOwnerAPI)
}
