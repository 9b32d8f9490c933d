package evictions

import (
	"rakeen-properties/app/config"
	"rakeen-properties/app/database"
	"rakeen-properties/app/models"
	"rakeen-properties/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func GetEvictionRequestsAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "requests": database.GetEvictionRequests(config.GetDB())})
}

func CreateEvictionRequestAPI(c *fiber.Ctx) error {
	type createRequest struct {
		LeaseID string `json:"lease_id"`
		Reason  string `json:"reason"`
	}
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	eviction := &models.EvictionRequest{
		LeaseID:     req.LeaseID,
		RequestedBy: auth.EmployeeIDRef(c),
		Reason:      req.Reason,
	}
	if err := database.CreateEvictionRequest(config.GetDB(), eviction); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	database.LogActivity(config.GetDB(), auth.EmployeeIDRef(c), "create", "eviction_request", &eviction.ID, req.Reason)
	return c.JSON(fiber.Map{"success": true, "message": "Eviction request filed", "request": eviction})
}

func ReviewEvictionRequestAPI(c *fiber.Ctx) error {
	type reviewRequest struct {
		Approved     bool   `json:"approved"`
		ManagerNotes string `json:"manager_notes"`
	}
	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	requestID := c.Params("id")
	if err := database.ReviewEvictionRequest(config.GetDB(), requestID, req.Approved, req.ManagerNotes); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Eviction request reviewed"})
}
