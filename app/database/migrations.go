package database

import (
	"database/sql"
	"log"
)

// Bootstrap ensures every table the console uses exists. All statements are
// idempotent so this runs on every start.
func Bootstrap(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS schools (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			address VARCHAR(255),
			phone VARCHAR(20),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			school_id INTEGER REFERENCES schools(id),
			group_label VARCHAR(50),
			monthly_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			guardian_name VARCHAR(255),
			email VARCHAR(255),
			phone VARCHAR(20),
			school_name VARCHAR(255),
			course_id INTEGER REFERENCES courses(id),
			is_active BOOLEAN DEFAULT true,
			enrolled_at DATE NOT NULL DEFAULT CURRENT_DATE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS suppliers (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id INTEGER PRIMARY KEY,
			reason VARCHAR(100) NOT NULL,
			amount BIGINT NOT NULL,
			note TEXT,
			spent_at TIMESTAMP WITH TIME ZONE NOT NULL,
			school_name VARCHAR(255),
			supplier_id INTEGER REFERENCES suppliers(id),
			group_label VARCHAR(50),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			receipt_number INTEGER PRIMARY KEY,
			control_number VARCHAR(50),
			amount NUMERIC(10,2) NOT NULL,
			month_paid VARCHAR(7) NOT NULL,
			paid_at TIMESTAMP WITH TIME ZONE NOT NULL,
			payment_method VARCHAR(50) NOT NULL,
			note TEXT,
			notified BOOLEAN DEFAULT false,
			settled BOOLEAN DEFAULT false,
			course_id INTEGER REFERENCES courses(id),
			student_id INTEGER REFERENCES students(id),
			has_scholarship BOOLEAN DEFAULT false,
			scholarship_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			scholarship_percentage NUMERIC(5,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS user_types (
			id SERIAL PRIMARY KEY,
			function VARCHAR(100) UNIQUE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			username VARCHAR(100) PRIMARY KEY,
			password VARCHAR(255) NOT NULL,
			user_type VARCHAR(100) NOT NULL,
			avatar_url VARCHAR(500),
			is_active BOOLEAN DEFAULT true,
			perm_students BOOLEAN DEFAULT false,
			perm_payments BOOLEAN DEFAULT false,
			perm_expenses BOOLEAN DEFAULT false,
			perm_suppliers BOOLEAN DEFAULT false,
			perm_schools BOOLEAN DEFAULT false,
			perm_courses BOOLEAN DEFAULT false,
			perm_users BOOLEAN DEFAULT false,
			perm_mail BOOLEAN DEFAULT false,
			perm_reports BOOLEAN DEFAULT false,
			perm_exports BOOLEAN DEFAULT false,
			perm_settings BOOLEAN DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS mail_templates (
			id SERIAL PRIMARY KEY,
			key VARCHAR(50) UNIQUE NOT NULL,
			subject VARCHAR(200) NOT NULL,
			body TEXT NOT NULL,
			enabled BOOLEAN DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_expenses_supplier_id ON expenses(supplier_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_spent_at ON expenses(spent_at)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_deleted_at ON expenses(deleted_at)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_month_paid ON payments(month_paid)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_student_id ON payments(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_deleted_at ON payments(deleted_at)`,
		`CREATE INDEX IF NOT EXISTS idx_students_course_id ON students(course_id)`,
		`CREATE INDEX IF NOT EXISTS idx_students_deleted_at ON students(deleted_at)`,
		`CREATE INDEX IF NOT EXISTS idx_courses_school_id ON courses(school_id)`,
	}

	for _, m := range indexes {
		if _, err := db.Exec(m); err != nil {
			log.Printf("Error creating index: %v", err)
			// Continue as some might be duplicate index errors depending on PG version
		}
	}

	seeds := []string{
		`INSERT INTO user_types (function) VALUES ('ADMINISTRADOR') ON CONFLICT (function) DO NOTHING`,
		`INSERT INTO user_types (function) VALUES ('PROFESOR') ON CONFLICT (function) DO NOTHING`,
		`INSERT INTO user_types (function) VALUES ('CAPTURISTA') ON CONFLICT (function) DO NOTHING`,
		`INSERT INTO mail_templates (key, subject, body, enabled)
		 VALUES ('payment_reminder', 'Recordatorio de pago', 'Le recordamos que tiene un pago pendiente del mes {{month}}.', false)
		 ON CONFLICT (key) DO NOTHING`,
		`INSERT INTO mail_templates (key, subject, body, enabled)
		 VALUES ('payment_receipt', 'Comprobante de pago', 'Hemos recibido su pago del mes {{month}}. Gracias.', false)
		 ON CONFLICT (key) DO NOTHING`,
		`INSERT INTO mail_templates (key, subject, body, enabled)
		 VALUES ('welcome', 'Bienvenido a Think Chess', 'Su inscripcion ha quedado registrada.', false)
		 ON CONFLICT (key) DO NOTHING`,
	}

	for _, s := range seeds {
		if _, err := db.Exec(s); err != nil {
			log.Printf("Error seeding data: %v", err)
		}
	}

	return nil
}

// RunMigrations applies schema updates for databases created before the
// column existed.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := addScholarshipPercentageColumn(db); err != nil {
		return err
	}
	if err := addAvatarURLColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func addScholarshipPercentageColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'payments'
				AND column_name = 'scholarship_percentage'
			) THEN
				ALTER TABLE payments ADD COLUMN scholarship_percentage NUMERIC(5,2) NOT NULL DEFAULT 0;
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for scholarship_percentage column: %v", err)
		return err
	}
	return nil
}

func addAvatarURLColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'users'
				AND column_name = 'avatar_url'
			) THEN
				ALTER TABLE users ADD COLUMN avatar_url VARCHAR(500);
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for avatar_url column: %v", err)
		return err
	}
	return nil
}
