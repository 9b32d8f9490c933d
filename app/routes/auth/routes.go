package auth

import (
	"strings"

	"rakeen-properties/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Post("/change-password", ChangePasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}
	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Rakeen Properties",
	}, "")
}

// AuthMiddleware validates the session token from the cookie or the
// Authorization header and stores the employee on the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	employee := &models.Employee{
		ID:        claims.EmployeeID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      models.EmployeeRole(claims.Role),
		IsActive:  true,
	}
	c.Locals("employee", employee)
	c.Locals("employee_id", claims.EmployeeID)
	c.Locals("employee_role", claims.Role)

	return c.Next()
}

// RequireRole gates a route to the given roles. Admin always passes.
func RequireRole(roles ...models.EmployeeRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := models.EmployeeRole(c.Locals("employee_role").(string))
		if role == models.RoleAdmin {
			return c.Next()
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Insufficient permissions")
	}
}

// CurrentEmployee returns the authenticated employee from the context.
func CurrentEmployee(c *fiber.Ctx) *models.Employee {
	if e, ok := c.Locals("employee").(*models.Employee); ok {
		return e
	}
	return nil
}

// EmployeeIDRef returns the authenticated employee's id for audit logging.
func EmployeeIDRef(c *fiber.Ctx) *string {
	if e := CurrentEmployee(c); e != nil {
		id := e.ID
		return &id
	}
	return nil
}
