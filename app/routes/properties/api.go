package properties

import (
	"rakeen-properties/app/config"
	"rakeen-properties/app/database"
	"rakeen-properties/app/models"
	"rakeen-properties/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// GetPropertiesAPI lists properties; staff only see their assigned ones.
func GetPropertiesAPI(c *fiber.Ctx) error {
	employeeID := ""
	if employee := auth.CurrentEmployee(c); employee != nil && employee.Role == models.RoleStaff {
		employeeID = employee.ID
	}
	properties := database.GetProperties(config.GetDB(), employeeID)
	return c.JSON(fiber.Map{"success": true, "properties": properties})
}

func CreatePropertyAPI(c *fiber.Ctx) error {
	property := &models.Property{}
	if err := c.BodyParser(property); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}
	if err := database.CreateProperty(config.GetDB(), property); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	database.LogActivity(config.GetDB(), auth.EmployeeIDRef(c), "create", "property", &property.ID, property.Name)
	return c.JSON(fiber.Map{"success": true, "message": "Property created", "property": property})
}

func UpdatePropertyAPI(c *fiber.Ctx) error {
	property := &models.Property{}
	if err := c.BodyParser(property); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}
	property.ID = c.Params("id")
	if err := database.UpdateProperty(config.GetDB(), property); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Property updated"})
}

func DeletePropertyAPI(c *fiber.Ctx) error {
	propertyID := c.Params("id")
	if err := database.DeleteProperty(config.GetDB(), propertyID); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	database.LogActivity(config.GetDB(), auth.EmployeeIDRef(c), "delete", "property", &propertyID, "Property deleted")
	return c.JSON(fiber.Map{"success": true, "message": "Property deleted"})
}

// GetUnitsAPI lists a property's units with active lease info.
func GetUnitsAPI(c *fiber.Ctx) error {
	units := database.GetUnitsForProperty(config.GetDB(), c.Params("id"))
	return c.JSON(fiber.Map{"success": true, "units": units})
}

func CreateUnitAPI(c *fiber.Ctx) error {
	unit := &models.Unit{}
	if err := c.BodyParser(unit); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}
	unit.PropertyID = c.Params("id")
	if unit.Status == "" {
		unit.Status = models.UnitAvailable
	}
	if err := database.CreateUnit(config.GetDB(), unit); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Unit created", "unit": unit})
}

func UpdateUnitAPI(c *fiber.Ctx) error {
	unit := &models.Unit{}
	if err := c.BodyParser(unit); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}
	unit.ID = c.Params("id")
	if err := database.UpdateUnit(config.GetDB(), unit); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Unit updated"})
}

func DeleteUnitAPI(c *fiber.Ctx) error {
	if err := database.DeleteUnit(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Unit deleted"})
}

func GetOwnersAPI(c *fiber.Ctx) error {
	owners := database.GetOwners(config.GetDB())
	return c.JSON(fiber.Map{"success": true, "owners": owners})
}

func CreateOwnerAPI(c *fiber.Ctx) error {
	owner := &models.Owner{}
	if err := c.BodyParser(owner); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}
	if err := database.CreateOwner(config.GetDB(), owner); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Owner created", "owner": owner})
}

func PropertiesPageHandler(c *fiber.Ctx) error {
	employeeID := ""
	if employee := auth.CurrentEmployee(c); employee != nil && employee.Role == models.RoleStaff {
		employeeID = employee.ID
	}
	properties := database.GetProperties(config.GetDB(), employeeID)
	return c.Render("properties/index", fiber.Map{
		"Title":       "Properties - Rakeen Properties",
		"CurrentPage": "properties",
		"Properties":  properties,
		"Owners":      database.GetOwners(config.GetDB()),
		"Employee":    auth.CurrentEmployee(c),
	}, "")
}
