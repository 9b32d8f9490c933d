package payees

import (
	"rakeen-properties/app/config"
	"rakeen-properties/app/database"
	"rakeen-properties/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetPayeesAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "payees": database.GetPayees(config.GetDB())})
}

func CreatePayeeAPI(c *fiber.Ctx) error {
	payee := &models.PayeeContact{}
	if err := c.BodyParser(payee); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}
	if err := database.CreatePayee(config.GetDB(), payee); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Payee created", "payee": payee})
}

func UpdatePayeeAPI(c *fiber.Ctx) error {
	payee := &models.PayeeContact{}
	if err := c.BodyParser(payee); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}
	payee.ID = c.Params("id")
	if err := database.UpdatePayee(config.GetDB(), payee); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Payee updated"})
}

func DeletePayeeAPI(c *fiber.Ctx) error {
	if err := database.DeletePayee(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Payee deleted"})
}

func GetBanksAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "banks": database.GetBanks(config.GetDB())})
}

func CreateBankAPI(c *fiber.Ctx) error {
	bank := &models.Bank{}
	if err := c.BodyParser(bank); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}
	if err := database.CreateBank(config.GetDB(), bank); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Bank created", "bank": bank})
}
