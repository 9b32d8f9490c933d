package auth

import (
	"database/sql"
	"time"

	"rakeen-properties/app/config"
	"rakeen-properties/app/database"

	"github.com/gofiber/fiber/v2"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	employee, err := database.GetEmployeeByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Database error"})
	}

	if !CheckPasswordHash(req.Password, employee.Password) {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
	}

	token, err := GenerateJWT(employee.ID, employee.Email, employee.FirstName, employee.LastName, string(employee.Role))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	employee.Password = ""
	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Login successful",
		"employee": employee,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/auth/login")
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	employee := CurrentEmployee(c)
	stored, err := database.GetEmployeeByID(config.GetDB(), employee.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Database error"})
	}

	if !CheckPasswordHash(req.CurrentPassword, stored.Password) {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Current password is incorrect"})
	}

	hashedPassword, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Failed to hash password"})
	}

	if err := database.UpdateEmployeePassword(config.GetDB(), employee.ID, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Password changed successfully"})
}
