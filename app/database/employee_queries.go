package database

import (
	"database/sql"
	"fmt"
	"log"

	"rakeen-properties/app/models"
)

// GetEmployeeByEmail returns an active employee for login.
func GetEmployeeByEmail(db *sql.DB, email string) (*models.Employee, error) {
	e := &models.Employee{}
	var role string
	query := `SELECT id, email, password, first_name, last_name, phone, role, is_active, created_at, updated_at
	          FROM employees WHERE email = $1 AND is_active = true`
	err := db.QueryRow(query, email).Scan(
		&e.ID, &e.Email, &e.Password, &e.FirstName, &e.LastName, &e.Phone,
		&role, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Role = models.EmployeeRole(role)
	return e, nil
}

// GetEmployeeByID returns an active employee.
func GetEmployeeByID(db *sql.DB, employeeID string) (*models.Employee, error) {
	e := &models.Employee{}
	var role string
	query := `SELECT id, email, password, first_name, last_name, phone, role, is_active, created_at, updated_at
	          FROM employees WHERE id = $1 AND is_active = true`
	err := db.QueryRow(query, employeeID).Scan(
		&e.ID, &e.Email, &e.Password, &e.FirstName, &e.LastName, &e.Phone,
		&role, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Role = models.EmployeeRole(role)
	return e, nil
}

// CreateEmployee adds an employee with an already-hashed password.
func CreateEmployee(db *sql.DB, employee *models.Employee) error {
	query := `INSERT INTO employees (email, password, first_name, last_name, phone, role)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		employee.Email, employee.Password, employee.FirstName, employee.LastName,
		employee.Phone, string(employee.Role),
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %v", err)
	}
	return nil
}

// UpdateEmployeePassword replaces an employee's password hash.
func UpdateEmployeePassword(db *sql.DB, employeeID, hashedPassword string) error {
	res, err := db.Exec(`UPDATE employees SET password = $1, updated_at = NOW() WHERE id = $2`,
		hashedPassword, employeeID)
	if err != nil {
		return fmt.Errorf("failed to update password: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("employee %s not found", employeeID)
	}
	return nil
}

// AssignEmployeeToProperty scopes an employee to a property.
func AssignEmployeeToProperty(db *sql.DB, employeeID, propertyID string) error {
	_, err := db.Exec(`INSERT INTO employee_properties (employee_id, property_id)
	                   VALUES ($1, $2) ON CONFLICT DO NOTHING`, employeeID, propertyID)
	if err != nil {
		return fmt.Errorf("failed to assign employee to property: %v", err)
	}
	return nil
}

// RemoveEmployeeFromProperty removes a property assignment.
func RemoveEmployeeFromProperty(db *sql.DB, employeeID, propertyID string) error {
	_, err := db.Exec(`DELETE FROM employee_properties WHERE employee_id = $1 AND property_id = $2`,
		employeeID, propertyID)
	if err != nil {
		return fmt.Errorf("failed to remove property assignment: %v", err)
	}
	return nil
}

// GetEmployees lists all employees.
func GetEmployees(db *sql.DB) []*models.Employee {
	query := `SELECT id, email, password, first_name, last_name, phone, role, is_active, created_at, updated_at
	          FROM employees ORDER BY first_name ASC, last_name ASC`
	rows, err := db.Query(query)
	if err != nil {
		log.Printf("Failed to fetch employees: %v", err)
		return []*models.Employee{}
	}
	defer rows.Close()

	employees := []*models.Employee{}
	for rows.Next() {
		e := &models.Employee{}
		var role string
		err := rows.Scan(
			&e.ID, &e.Email, &e.Password, &e.FirstName, &e.LastName, &e.Phone,
			&role, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			log.Printf("Failed to scan employee row: %v", err)
			continue
		}
		e.Role = models.EmployeeRole(role)
		employees = append(employees, e)
	}
	return employees
}
