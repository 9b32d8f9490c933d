package leases

import (
	"time"

	"rakeen-properties/app/config"
	"rakeen-properties/app/database"
	"rakeen-properties/app/routes/auth"
	"rakeen-properties/app/services"

	"github.com/gofiber/fiber/v2"
)

func LeasesPageHandler(c *fiber.Ctx) error {
	leases := database.GetLeasesWithDetails(config.GetDB())
	return c.Render("leases/index", fiber.Map{
		"Title":       "Leases - Rakeen Properties",
		"CurrentPage": "leases",
		"Leases":      leases,
		"Employee":    auth.CurrentEmployee(c),
	}, "")
}

func LeaseDetailPageHandler(c *fiber.Ctx) error {
	lease, err := database.GetLeaseWithDetails(config.GetDB(), c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Lease not found")
	}
	payments, err := database.GetLeasePayments(config.GetDB(), lease.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return c.Render("leases/detail", fiber.Map{
		"Title":         "Lease - Rakeen Properties",
		"CurrentPage":   "leases",
		"Lease":         lease,
		"Payments":      payments,
		"DisplayStatus": services.LeaseDisplayStatus(&lease.Lease, time.Now()),
		"Balance":       services.Balance(lease.TotalAmount, lease.TotalPaidAmount),
		"Employee":      auth.CurrentEmployee(c),
	}, "")
}
