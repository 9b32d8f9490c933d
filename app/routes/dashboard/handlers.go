package dashboard

import (
	"time"

	"rakeen-properties/app/config"
	"rakeen-properties/app/database"
	"rakeen-properties/app/routes/auth"
	"rakeen-properties/app/services"

	"github.com/gofiber/fiber/v2"
)

func GetDashboardAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}
	cheques := database.GetCheques(config.GetDB(), database.ChequeFilters{})
	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
		"cheques": services.ComputeChequeDashboard(cheques, time.Now()),
	})
}

func DashboardPageHandler(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}
	cheques := database.GetCheques(config.GetDB(), database.ChequeFilters{})
	return c.Render("dashboard/index", fiber.Map{
		"Title":           "Dashboard - Rakeen Properties",
		"CurrentPage":     "dashboard",
		"Stats":           stats,
		"ChequeDashboard": services.ComputeChequeDashboard(cheques, time.Now()),
		"Employee":        auth.CurrentEmployee(c),
	}, "")
}
