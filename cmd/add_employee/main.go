package main

import (
	"flag"
	"log"

	"rakeen-properties/app/config"
	"rakeen-properties/app/database"
	"rakeen-properties/app/models"
	"rakeen-properties/app/routes/auth"

	"github.com/joho/godotenv"
)

// Bootstraps an employee account from the command line, e.g. the first admin.
func main() {
	email := flag.String("email", "", "employee email")
	password := flag.String("password", "", "employee password")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	role := flag.String("role", "staff", "role: admin, manager or staff")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" {
		log.Fatal("email, password and first name are required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	employee := &models.Employee{
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      models.EmployeeRole(*role),
	}
	if err := database.CreateEmployee(config.GetDB(), employee); err != nil {
		log.Fatal("Failed to create employee:", err)
	}
	log.Printf("Created employee %s (%s) with role %s", employee.FullName(), employee.Email, employee.Role)
}
