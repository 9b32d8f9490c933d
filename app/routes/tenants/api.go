package tenants

import (
	"database/sql"

	"rakeen-properties/app/config"
	"rakeen-properties/app/database"
	"rakeen-properties/app/models"
	"rakeen-properties/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func GetTenantsAPI(c *fiber.Ctx) error {
	tenants := database.GetTenants(config.GetDB())
	return c.JSON(fiber.Map{"success": true, "tenants": tenants})
}

func GetTenantAPI(c *fiber.Ctx) error {
	tenant, err := database.GetTenant(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Tenant not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch tenant")
	}
	return c.JSON(fiber.Map{"success": true, "tenant": tenant})
}

func CreateTenantAPI(c *fiber.Ctx) error {
	tenant := &models.Tenant{IsActive: true}
	if err := c.BodyParser(tenant); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}
	if err := database.CreateTenant(config.GetDB(), tenant); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	database.LogActivity(config.GetDB(), auth.EmployeeIDRef(c), "create", "tenant", &tenant.ID, tenant.FullName())
	return c.JSON(fiber.Map{"success": true, "message": "Tenant created", "tenant": tenant})
}

func UpdateTenantAPI(c *fiber.Ctx) error {
	tenant := &models.Tenant{IsActive: true}
	if err := c.BodyParser(tenant); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}
	tenant.ID = c.Params("id")
	if err := database.UpdateTenant(config.GetDB(), tenant); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Tenant updated"})
}

func TenantsPageHandler(c *fiber.Ctx) error {
	return c.Render("tenants/index", fiber.Map{
		"Title":       "Tenants - Rakeen Properties",
		"CurrentPage": "tenants",
		"Tenants":     database.GetTenants(config.GetDB()),
		"Employee":    auth.CurrentEmployee(c),
	}, "")
}
