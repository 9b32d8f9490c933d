package database

import (
	"database/sql"
	"fmt"
	"log"

	"rakeen-properties/app/models"
)

// GetOrCreateExpenseCategory returns the id of the named category, creating
// it when missing.
func GetOrCreateExpenseCategory(db *sql.DB, name string) (string, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM expense_categories WHERE name = $1`, name).Scan(&id)
	if err == sql.ErrNoRows {
		err = db.QueryRow(`INSERT INTO expense_categories (name, is_active) VALUES ($1, true) RETURNING id`, name).Scan(&id)
		if err != nil {
			return "", fmt.Errorf("failed to create category: %v", err)
		}
		return id, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to find category: %v", err)
	}
	return id, nil
}

// GetExpenseCategories lists active categories.
func GetExpenseCategories(db *sql.DB) []*models.ExpenseCategory {
	rows, err := db.Query(`SELECT id, name, is_active FROM expense_categories WHERE is_active = true ORDER BY name ASC`)
	if err != nil {
		log.Printf("Failed to fetch expense categories: %v", err)
		return []*models.ExpenseCategory{}
	}
	defer rows.Close()

	categories := []*models.ExpenseCategory{}
	for rows.Next() {
		c := &models.ExpenseCategory{}
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive); err != nil {
			log.Printf("Failed to scan category row: %v", err)
			continue
		}
		categories = append(categories, c)
	}
	return categories
}

// CreateExpense books a cost.
func CreateExpense(db *sql.DB, expense *models.Expense) error {
	query := `INSERT INTO expenses (category_id, property_id, title, amount, date, notes)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		expense.CategoryID, expense.PropertyID, expense.Title, expense.Amount, expense.Date, expense.Notes,
	).Scan(&expense.ID, &expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %v", err)
	}
	return nil
}

// UpdateExpense edits a booked cost.
func UpdateExpense(db *sql.DB, expense *models.Expense) error {
	query := `UPDATE expenses
	          SET category_id = $1, property_id = $2, title = $3, amount = $4, date = $5, notes = $6, updated_at = NOW()
	          WHERE id = $7`
	res, err := db.Exec(query,
		expense.CategoryID, expense.PropertyID, expense.Title, expense.Amount, expense.Date, expense.Notes, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("expense %s not found", expense.ID)
	}
	return nil
}

// DeleteExpense removes a booked cost.
func DeleteExpense(db *sql.DB, expenseID string) error {
	res, err := db.Exec(`DELETE FROM expenses WHERE id = $1`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("expense %s not found", expenseID)
	}
	return nil
}

// GetExpenses lists expenses newest first, optionally scoped to a property.
func GetExpenses(db *sql.DB, propertyID string) []*models.Expense {
	query := `SELECT e.id, e.category_id, e.property_id, e.title, e.amount, e.date, e.notes, e.created_at, e.updated_at
	          FROM expenses e`
	var args []interface{}
	if propertyID != "" {
		query += ` WHERE e.property_id = $1`
		args = append(args, propertyID)
	}
	query += ` ORDER BY e.date DESC, e.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		log.Printf("Failed to fetch expenses: %v", err)
		return []*models.Expense{}
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		e := &models.Expense{}
		err := rows.Scan(
			&e.ID, &e.CategoryID, &e.PropertyID, &e.Title, &e.Amount, &e.Date, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			log.Printf("Failed to scan expense row: %v", err)
			continue
		}
		expenses = append(expenses, e)
	}
	return expenses
}
