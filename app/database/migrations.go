package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates missing tables and indexes. All statements are
// idempotent so the app can run them on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone TEXT,
			role VARCHAR(20) NOT NULL DEFAULT 'staff',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS owners (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			email TEXT,
			phone TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS properties (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			owner_id UUID REFERENCES owners(id),
			name TEXT NOT NULL,
			location TEXT NOT NULL,
			type VARCHAR(50),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS employee_properties (
			employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			property_id UUID NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
			PRIMARY KEY (employee_id, property_id)
		)`,

		`CREATE TABLE IF NOT EXISTS units (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			property_id UUID NOT NULL REFERENCES properties(id),
			unit_number TEXT NOT NULL,
			type VARCHAR(50),
			status VARCHAR(20) NOT NULL DEFAULT 'Available',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (property_id, unit_number)
		)`,

		`CREATE TABLE IF NOT EXISTS tenants (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT,
			phone TEXT,
			emirates_id VARCHAR(50),
			is_commercial BOOLEAN NOT NULL DEFAULT false,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS leases (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			unit_id UUID NOT NULL REFERENCES units(id),
			tenant_id UUID NOT NULL REFERENCES tenants(id),
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			status VARCHAR(30) NOT NULL DEFAULT 'Active',
			total_amount NUMERIC(12,2) NOT NULL,
			business_name TEXT,
			trade_license TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// One active lease per unit, enforced at the storage layer so two
		// concurrent assignments cannot both commit.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_leases_one_active_per_unit
			ON leases (unit_id) WHERE status = 'Active'`,

		`CREATE TABLE IF NOT EXISTS lease_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			lease_id UUID NOT NULL REFERENCES leases(id),
			due_date DATE NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Pending',
			cheque_number VARCHAR(50),
			cheque_bank TEXT,
			extension_status VARCHAR(20),
			requested_due_date DATE,
			extension_reason TEXT,
			manager_notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_lease_payments_lease ON lease_payments (lease_id, due_date)`,

		`CREATE TABLE IF NOT EXISTS payment_transactions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			lease_payment_id UUID NOT NULL REFERENCES lease_payments(id),
			amount_paid NUMERIC(12,2) NOT NULL,
			payment_date DATE NOT NULL,
			payment_method VARCHAR(50),
			document_path TEXT,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_payment_transactions_payment ON payment_transactions (lease_payment_id)`,

		`CREATE TABLE IF NOT EXISTS banks (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			branch TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS payees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			phone TEXT,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS cheques (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			payee_type VARCHAR(10) NOT NULL,
			payee_id UUID REFERENCES payees(id),
			tenant_id UUID REFERENCES tenants(id),
			manual_payee_name TEXT,
			bank_id UUID REFERENCES banks(id),
			cheque_number VARCHAR(50) NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			cheque_date DATE NOT NULL,
			due_date DATE NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Pending',
			image_path TEXT,
			notes TEXT,
			created_by_id UUID REFERENCES employees(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT cheques_payee_variant CHECK (
				(payee_type = 'saved'  AND payee_id IS NOT NULL AND tenant_id IS NULL AND manual_payee_name IS NULL) OR
				(payee_type = 'tenant' AND tenant_id IS NOT NULL AND payee_id IS NULL AND manual_payee_name IS NULL) OR
				(payee_type = 'manual' AND manual_payee_name IS NOT NULL AND payee_id IS NULL AND tenant_id IS NULL)
			)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_cheques_due_date ON cheques (due_date)`,

		`CREATE TABLE IF NOT EXISTS cheque_transactions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			cheque_id UUID NOT NULL REFERENCES cheques(id),
			amount_paid NUMERIC(12,2) NOT NULL,
			payment_date DATE NOT NULL,
			payment_method VARCHAR(50),
			document_path TEXT,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_cheque_transactions_cheque ON cheque_transactions (cheque_id)`,

		`CREATE TABLE IF NOT EXISTS expense_categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			is_active BOOLEAN NOT NULL DEFAULT true
		)`,

		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			category_id UUID NOT NULL REFERENCES expense_categories(id),
			property_id UUID REFERENCES properties(id),
			title TEXT NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			date DATE NOT NULL,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS activity_logs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_id UUID REFERENCES employees(id),
			action VARCHAR(50) NOT NULL,
			entity_type VARCHAR(50) NOT NULL,
			entity_id UUID,
			detail TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS eviction_requests (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			lease_id UUID NOT NULL REFERENCES leases(id),
			requested_by UUID REFERENCES employees(id),
			reason TEXT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Pending',
			manager_notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
