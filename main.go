package main

import (
	"encoding/json"
	"log"
	"time"

	"rakeen-properties/app/config"
	"rakeen-properties/app/database"
	"rakeen-properties/app/routes/auth"
	"rakeen-properties/app/routes/cheques"
	"rakeen-properties/app/routes/dashboard"
	"rakeen-properties/app/routes/evictions"
	"rakeen-properties/app/routes/expenses"
	"rakeen-properties/app/routes/leases"
	"rakeen-properties/app/routes/payees"
	"rakeen-properties/app/routes/properties"
	"rakeen-properties/app/routes/tenants"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
)

// customErrorHandler returns JSON for API requests and rendered pages for
// everything else.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - Rakeen Properties",
			"CurrentPage": "",
		})
	case 401:
		return c.Redirect("/auth/login")
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Rakeen Properties",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Gulf Standard Time for all due-date comparisons.
	loc, err := time.LoadLocation("Asia/Dubai")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Dubai location, falling back to UTC+4: %v", err)
		time.Local = time.FixedZone("GST", 4*60*60)
	} else {
		time.Local = loc
	}

	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		Views:        engine,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	properties.SetupPropertyRoutes(app)
	tenants.SetupTenantRoutes(app)
	leases.SetupLeaseRoutes(app)
	cheques.SetupChequeRoutes(app)
	payees.SetupPayeeRoutes(app)
	expenses.SetupExpenseRoutes(app)
	evictions.SetupEvictionRoutes(app)

	log.Println("Starting server on :3000")
	log.Fatal(app.Listen(":3000"))
}
